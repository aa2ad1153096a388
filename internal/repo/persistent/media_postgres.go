package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/saguier/boda-gallery/internal/dto"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/pkg/postgres"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

const (
	// Table
	mediaTable = "media"

	// Columns
	idColumn           = "id"
	storageKeyColumn   = "storage_key"
	originalNameColumn = "original_name"
	urlColumn          = "url"
	kindColumn         = "kind"
	mimeTypeColumn     = "mime_type"
	sizeColumn         = "size"
	widthColumn        = "width"
	heightColumn       = "height"
	durationColumn     = "duration"
	uploadedAtColumn   = "uploaded_at"
)

type MediaRepo struct {
	*postgres.Postgres
}

func NewMediaRepo(pg *postgres.Postgres) *MediaRepo {
	return &MediaRepo{pg}
}

func (r *MediaRepo) Create(ctx context.Context, item *entity.MediaItem) error {
	sql, args, err := r.Builder.
		Insert(mediaTable).
		Columns(
			idColumn,
			storageKeyColumn,
			originalNameColumn,
			urlColumn,
			kindColumn,
			mimeTypeColumn,
			sizeColumn,
			widthColumn,
			heightColumn,
			durationColumn,
			uploadedAtColumn,
		).
		Values(
			item.ID,
			item.StorageKey,
			item.OriginalName,
			item.URL,
			item.Kind,
			item.ContentType,
			item.Size,
			item.Width,
			item.Height,
			item.Duration,
			item.UploadedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("MediaRepo - Create - r.Builder.ToSql: %w", err)
	}

	// Pool / Tx
	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("MediaRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *MediaRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MediaItem, error) {
	sql, args, err := r.selectMedia().
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("MediaRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	item, err := scanMedia(executor.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("MediaRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("MediaRepo - GetByID - executor.QueryRow: %w", err)
	}

	return item, nil
}

// List fetches q.Limit+1 ordered rows so callers can detect a next page.
// The anchor row, when present, is the keyset position of the previous page's
// last item; ordering always carries the id tiebreak for stable pagination.
func (r *MediaRepo) List(ctx context.Context, q dto.ListQuery, anchor *entity.MediaItem) ([]*entity.MediaItem, error) {
	builder := r.selectMedia()

	if q.Kind != "" {
		builder = builder.Where(squirrel.Eq{kindColumn: q.Kind})
	}

	if len(q.TagIDs) > 0 {
		builder = builder.Where(
			squirrel.Expr(idColumn+" IN (SELECT media_id FROM media_tags WHERE tag_id = ANY(?))", q.TagIDs),
		)
	}

	if q.Sort == dto.Oldest {
		if anchor != nil {
			builder = builder.Where(
				squirrel.Expr("("+uploadedAtColumn+", "+idColumn+") > (?, ?)", anchor.UploadedAt, anchor.ID),
			)
		}
		builder = builder.OrderBy(uploadedAtColumn+" ASC", idColumn+" ASC")
	} else {
		if anchor != nil {
			builder = builder.Where(
				squirrel.Expr("("+uploadedAtColumn+", "+idColumn+") < (?, ?)", anchor.UploadedAt, anchor.ID),
			)
		}
		builder = builder.OrderBy(uploadedAtColumn+" DESC", idColumn+" DESC")
	}

	sql, args, err := builder.Limit(uint64(q.Limit + 1)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("MediaRepo - List - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("MediaRepo - List - executor.Query: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.MediaItem, 0, q.Limit+1)
	for rows.Next() {
		item, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("MediaRepo - List - scanMedia: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("MediaRepo - List - rows.Err: %w", err)
	}

	return items, nil
}

func (r *MediaRepo) selectMedia() squirrel.SelectBuilder {
	return r.Builder.
		Select(
			idColumn,
			storageKeyColumn,
			originalNameColumn,
			urlColumn,
			kindColumn,
			mimeTypeColumn,
			sizeColumn,
			widthColumn,
			heightColumn,
			durationColumn,
			uploadedAtColumn,
		).
		From(mediaTable)
}

func scanMedia(row pgx.Row) (*entity.MediaItem, error) {
	var item entity.MediaItem

	err := row.Scan(
		&item.ID,
		&item.StorageKey,
		&item.OriginalName,
		&item.URL,
		&item.Kind,
		&item.ContentType,
		&item.Size,
		&item.Width,
		&item.Height,
		&item.Duration,
		&item.UploadedAt,
	)
	if err != nil {
		return nil, err
	}

	return &item, nil
}
