package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/dto"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/internal/repo"
	"github.com/saguier/boda-gallery/pkg/logger"
)

type MediaUseCase struct {
	objectRepo repo.ObjectRepo
	mediaRepo  repo.MediaRepo
	tagRepo    repo.TagRepo
	transactor repo.Transactor

	publicBaseURL string
	presignTTL    time.Duration

	logger logger.Interface
}

func New(
	objectRepo repo.ObjectRepo,
	mediaRepo repo.MediaRepo,
	tagRepo repo.TagRepo,
	transactor repo.Transactor,
	publicBaseURL string,
	presignTTL time.Duration,
	l logger.Interface,
) *MediaUseCase {
	return &MediaUseCase{
		objectRepo:    objectRepo,
		mediaRepo:     mediaRepo,
		tagRepo:       tagRepo,
		transactor:    transactor,
		publicBaseURL: publicBaseURL,
		presignTTL:    presignTTL,
		logger:        l,
	}
}

func (uc *MediaUseCase) UploadNewMedia(
	ctx context.Context,
	data io.Reader,
	originalName string,
	contentType string,
	size int64,
	tagNames []string,
) (*dto.MediaWithTags, error) {
	// tag names are checked before any byte or row is written
	names, err := normalizeTagNames(tagNames)
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - UploadNewMedia - normalizeTagNames: %w", err)
	}

	mediaID := uuid.New()
	key := storageKey(time.Now(), mediaID, originalName)

	// 1. bytes go to the bucket first
	err = uc.objectRepo.Put(ctx, key, data, contentType, size)
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - UploadNewMedia - uc.objectRepo.Put: %w", err)
	}

	item := &entity.MediaItem{
		ID:           mediaID,
		StorageKey:   key,
		OriginalName: sanitizeFilename(originalName),
		URL:          uc.publicURL(key),
		Kind:         entity.KindOf(contentType),
		ContentType:  contentType,
		Size:         size,
		UploadedAt:   time.Now(),
	}

	// 2. media row + tag upserts + links as one transaction
	tags, err := uc.persistWithTags(ctx, item, names)
	if err != nil {
		// compensate: the blob must not outlive a failed metadata write
		deleteErr := uc.objectRepo.Delete(ctx, key)
		if deleteErr != nil {
			uc.logger.Error(deleteErr, "MediaUseCase - UploadNewMedia - uc.objectRepo.Delete")
		}
		return nil, fmt.Errorf("MediaUseCase - UploadNewMedia - uc.persistWithTags: %w", err)
	}

	return &dto.MediaWithTags{MediaItem: item, Tags: tags}, nil
}

func (uc *MediaUseCase) PresignUpload(ctx context.Context, filename, contentType string, size int64) (*dto.PresignedUpload, error) {
	fileID := uuid.New()
	key := storageKey(time.Now(), fileID, filename)

	uploadURL, err := uc.objectRepo.PresignPut(ctx, key, contentType, uc.presignTTL)
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - PresignUpload - uc.objectRepo.PresignPut: %w", err)
	}

	return &dto.PresignedUpload{
		FileID:    fileID,
		Key:       key,
		UploadURL: uploadURL,
		PublicURL: uc.publicURL(key),
	}, nil
}

// ConfirmUpload writes only metadata; the client already placed the bytes via
// a presigned URL. No blob compensation on failure here - the client owns the
// object it uploaded and can retry the confirmation.
func (uc *MediaUseCase) ConfirmUpload(ctx context.Context, in dto.ConfirmUpload) (*dto.MediaWithTags, error) {
	names, err := normalizeTagNames(in.Tags)
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - ConfirmUpload - normalizeTagNames: %w", err)
	}

	item := &entity.MediaItem{
		ID:           in.FileID,
		StorageKey:   in.Key,
		OriginalName: sanitizeFilename(in.OriginalName),
		URL:          in.PublicURL,
		Kind:         entity.KindOf(in.ContentType),
		ContentType:  in.ContentType,
		Size:         in.Size,
		UploadedAt:   time.Now(),
	}

	tags, err := uc.persistWithTags(ctx, item, names)
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - ConfirmUpload - uc.persistWithTags: %w", err)
	}

	return &dto.MediaWithTags{MediaItem: item, Tags: tags}, nil
}

func (uc *MediaUseCase) DownloadMedia(ctx context.Context, id uuid.UUID) (*entity.MediaItem, io.ReadCloser, error) {
	item, err := uc.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("MediaUseCase - DownloadMedia - uc.mediaRepo.GetByID: %w", err)
	}

	body, err := uc.objectRepo.Get(ctx, item.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("MediaUseCase - DownloadMedia - uc.objectRepo.Get: %w", err)
	}

	return item, body, nil
}

// persistWithTags runs the media insert and the whole tag loop inside a single
// transaction, so a failure anywhere rolls back every row. Tag resolution is
// order-preserving; duplicate links collapse on the composite primary key.
func (uc *MediaUseCase) persistWithTags(ctx context.Context, item *entity.MediaItem, names []string) ([]entity.Tag, error) {
	tags := make([]entity.Tag, 0, len(names))

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.mediaRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("uc.mediaRepo.Create: %w", err)
		}

		for _, name := range names {
			tag, err := uc.tagRepo.Upsert(ctx, &entity.Tag{
				ID:        uuid.New(),
				Name:      name,
				IsDefault: false,
				CreatedAt: time.Now(),
			})
			if err != nil {
				return fmt.Errorf("uc.tagRepo.Upsert: %w", err)
			}

			if err := uc.tagRepo.Link(ctx, item.ID, tag.ID); err != nil {
				return fmt.Errorf("uc.tagRepo.Link: %w", err)
			}

			tags = append(tags, *tag)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tags, nil
}

func (uc *MediaUseCase) publicURL(key string) string {
	return joinURL(uc.publicBaseURL, key)
}
