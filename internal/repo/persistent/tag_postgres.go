package persistent

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/pkg/postgres"
)

const (
	// Tables
	tagsTable      = "tags"
	mediaTagsTable = "media_tags"

	// tags columns
	tagIDColumn        = "id"
	tagNameColumn      = "name"
	tagIsDefaultColumn = "is_default"
	tagCreatedAtColumn = "created_at"

	// media_tags columns
	linkMediaIDColumn = "media_id"
	linkTagIDColumn   = "tag_id"
)

type TagRepo struct {
	*postgres.Postgres
}

func NewTagRepo(pg *postgres.Postgres) *TagRepo {
	return &TagRepo{pg}
}

// Upsert relies on the unique index over lower(name): concurrent creators of
// the same name all land on one row. The no-op DO UPDATE makes RETURNING yield
// the surviving row either way, so callers can tell a hit from an insert by
// comparing ids with the candidate.
func (r *TagRepo) Upsert(ctx context.Context, candidate *entity.Tag) (*entity.Tag, error) {
	sql, args, err := r.Builder.
		Insert(tagsTable).
		Columns(
			tagIDColumn,
			tagNameColumn,
			tagIsDefaultColumn,
			tagCreatedAtColumn,
		).
		Values(
			candidate.ID,
			candidate.Name,
			candidate.IsDefault,
			candidate.CreatedAt,
		).
		Suffix("ON CONFLICT (lower(" + tagNameColumn + ")) DO UPDATE SET " + tagNameColumn + " = " + tagsTable + "." + tagNameColumn +
			" RETURNING " + tagIDColumn + ", " + tagNameColumn + ", " + tagIsDefaultColumn + ", " + tagCreatedAtColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("TagRepo - Upsert - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var tag entity.Tag
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&tag.ID,
		&tag.Name,
		&tag.IsDefault,
		&tag.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("TagRepo - Upsert - executor.QueryRow.Scan: %w", err)
	}

	return &tag, nil
}

func (r *TagRepo) Link(ctx context.Context, mediaID, tagID uuid.UUID) error {
	sql, args, err := r.Builder.
		Insert(mediaTagsTable).
		Columns(linkMediaIDColumn, linkTagIDColumn).
		Values(mediaID, tagID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("TagRepo - Link - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("TagRepo - Link - executor.Exec: %w", err)
	}

	return nil
}

func (r *TagRepo) ListForMedia(ctx context.Context, mediaID uuid.UUID) ([]entity.Tag, error) {
	sql, args, err := r.Builder.
		Select(
			"t."+tagIDColumn,
			"t."+tagNameColumn,
			"t."+tagIsDefaultColumn,
			"t."+tagCreatedAtColumn,
		).
		From(mediaTagsTable + " mt").
		Join(tagsTable + " t ON t." + tagIDColumn + " = mt." + linkTagIDColumn).
		Where(squirrel.Eq{"mt." + linkMediaIDColumn: mediaID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("TagRepo - ListForMedia - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("TagRepo - ListForMedia - executor.Query: %w", err)
	}
	defer rows.Close()

	var tags []entity.Tag
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.IsDefault, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("TagRepo - ListForMedia - rows.Scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TagRepo - ListForMedia - rows.Err: %w", err)
	}

	return tags, nil
}

// ListWithUsage left-joins so zero-usage tags still show up with count 0.
func (r *TagRepo) ListWithUsage(ctx context.Context) ([]entity.TagUsage, error) {
	sql, args, err := r.Builder.
		Select(
			"t."+tagIDColumn,
			"t."+tagNameColumn,
			"t."+tagIsDefaultColumn,
			"t."+tagCreatedAtColumn,
			"count(mt."+linkMediaIDColumn+")",
		).
		From(tagsTable + " t").
		LeftJoin(mediaTagsTable + " mt ON mt." + linkTagIDColumn + " = t." + tagIDColumn).
		GroupBy("t."+tagIDColumn, "t."+tagNameColumn, "t."+tagIsDefaultColumn, "t."+tagCreatedAtColumn).
		OrderBy("t." + tagNameColumn + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("TagRepo - ListWithUsage - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("TagRepo - ListWithUsage - executor.Query: %w", err)
	}
	defer rows.Close()

	var usages []entity.TagUsage
	for rows.Next() {
		var u entity.TagUsage
		if err := rows.Scan(&u.ID, &u.Name, &u.IsDefault, &u.CreatedAt, &u.Count); err != nil {
			return nil, fmt.Errorf("TagRepo - ListWithUsage - rows.Scan: %w", err)
		}
		usages = append(usages, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TagRepo - ListWithUsage - rows.Err: %w", err)
	}

	return usages, nil
}
