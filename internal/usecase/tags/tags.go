package tags

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/internal/repo"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

type TagUseCase struct {
	tagRepo repo.TagRepo
}

func New(tagRepo repo.TagRepo) *TagUseCase {
	return &TagUseCase{tagRepo: tagRepo}
}

func (uc *TagUseCase) List(ctx context.Context) ([]entity.TagUsage, error) {
	usages, err := uc.tagRepo.ListWithUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("TagUseCase - List - uc.tagRepo.ListWithUsage: %w", err)
	}

	return usages, nil
}

// Create is idempotent over casing: "fiesta" and "Fiesta" land on the same
// row. The upsert keeps it race-safe; a second caller gets existing=true
// instead of an error.
func (uc *TagUseCase) Create(ctx context.Context, name string) (*entity.TagUsage, bool, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, false, errs.ErrEmptyTagName
	}
	if len(trimmed) > entity.MaxTagNameLen {
		return nil, false, errs.ErrTagNameTooLong
	}

	candidate := &entity.Tag{
		ID:        uuid.New(),
		Name:      trimmed,
		IsDefault: false,
		CreatedAt: time.Now(),
	}

	tag, err := uc.tagRepo.Upsert(ctx, candidate)
	if err != nil {
		return nil, false, fmt.Errorf("TagUseCase - Create - uc.tagRepo.Upsert: %w", err)
	}

	// a returned id different from the candidate's means the name was taken
	existing := tag.ID != candidate.ID

	return &entity.TagUsage{Tag: *tag, Count: 0}, existing, nil
}
