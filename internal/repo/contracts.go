package repo

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/dto"
	"github.com/saguier/boda-gallery/internal/entity"
)

type (
	// ObjectRepo owns the bytes in the bucket.
	ObjectRepo interface {
		Put(ctx context.Context, key string, data io.Reader, contentType string, size int64) error
		PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error)
		Get(ctx context.Context, key string) (io.ReadCloser, error)
		Delete(ctx context.Context, key string) error
	}

	// MediaRepo owns the media table. List applies the anchor row as a keyset
	// cursor when non-nil.
	MediaRepo interface {
		Create(ctx context.Context, item *entity.MediaItem) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.MediaItem, error)
		List(ctx context.Context, q dto.ListQuery, anchor *entity.MediaItem) ([]*entity.MediaItem, error)
	}

	// TagRepo owns the tags and media_tags tables. Upsert converges concurrent
	// creators of the same (case-insensitive) name onto a single row; the
	// returned tag keeps the stored casing.
	TagRepo interface {
		Upsert(ctx context.Context, candidate *entity.Tag) (*entity.Tag, error)
		Link(ctx context.Context, mediaID, tagID uuid.UUID) error
		ListForMedia(ctx context.Context, mediaID uuid.UUID) ([]entity.Tag, error)
		ListWithUsage(ctx context.Context) ([]entity.TagUsage, error)
	}

	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
