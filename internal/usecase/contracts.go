package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/dto"
	"github.com/saguier/boda-gallery/internal/entity"
)

type (
	// AccessUseCase validates the shared event code. Stateless; the client
	// keeps its own authenticated flag.
	AccessUseCase interface {
		Validate(submitted string) error
	}

	MediaUseCase interface {
		UploadNewMedia(
			ctx context.Context,
			data io.Reader,
			originalName string,
			contentType string,
			size int64,
			tagNames []string,
		) (*dto.MediaWithTags, error)
		PresignUpload(ctx context.Context, filename, contentType string, size int64) (*dto.PresignedUpload, error)
		ConfirmUpload(ctx context.Context, in dto.ConfirmUpload) (*dto.MediaWithTags, error)
		DownloadMedia(ctx context.Context, id uuid.UUID) (*entity.MediaItem, io.ReadCloser, error)
	}

	ListingUseCase interface {
		List(ctx context.Context, q dto.ListQuery) (*dto.MediaPage, error)
	}

	TagUseCase interface {
		List(ctx context.Context) ([]entity.TagUsage, error)
		// Create returns the tag and whether a same-named tag already existed.
		Create(ctx context.Context, name string) (*entity.TagUsage, bool, error)
	}
)
