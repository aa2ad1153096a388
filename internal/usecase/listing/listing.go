package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/saguier/boda-gallery/internal/dto"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/internal/repo"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

const DefaultPageLimit = 20

type ListingUseCase struct {
	mediaRepo repo.MediaRepo
	tagRepo   repo.TagRepo
}

func New(mediaRepo repo.MediaRepo, tagRepo repo.TagRepo) *ListingUseCase {
	return &ListingUseCase{
		mediaRepo: mediaRepo,
		tagRepo:   tagRepo,
	}
}

// List pages through media with the limit+1 trick: the extra row only signals
// hasMore and is never returned. The cursor is the previous page's last media
// id, resolved back to its row so the keyset predicate can anchor on
// (uploaded_at, id).
func (uc *ListingUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.MediaPage, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultPageLimit
	}

	var anchor *entity.MediaItem
	if q.Cursor != nil {
		item, err := uc.mediaRepo.GetByID(ctx, *q.Cursor)
		if err != nil {
			if errors.Is(err, errs.ErrRecordNotFound) {
				return nil, fmt.Errorf("ListingUseCase - List: %w", errs.ErrInvalidCursor)
			}
			return nil, fmt.Errorf("ListingUseCase - List - uc.mediaRepo.GetByID: %w", err)
		}
		anchor = item
	}

	items, err := uc.mediaRepo.List(ctx, q, anchor)
	if err != nil {
		return nil, fmt.Errorf("ListingUseCase - List - uc.mediaRepo.List: %w", err)
	}

	hasMore := len(items) > q.Limit
	if hasMore {
		items = items[:q.Limit]
	}

	page := &dto.MediaPage{
		Items:   make([]dto.MediaWithTags, 0, len(items)),
		HasMore: hasMore,
	}

	// one tag lookup per item; fine at event-gallery scale
	for _, item := range items {
		tags, err := uc.tagRepo.ListForMedia(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("ListingUseCase - List - uc.tagRepo.ListForMedia: %w", err)
		}
		if tags == nil {
			tags = []entity.Tag{}
		}
		page.Items = append(page.Items, dto.MediaWithTags{MediaItem: item, Tags: tags})
	}

	page.Total = len(page.Items)

	if hasMore && len(items) > 0 {
		last := items[len(items)-1].ID
		page.NextCursor = &last
	}

	return page, nil
}
