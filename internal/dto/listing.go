package dto

import (
	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/entity"
)

type Sort string

const (
	Newest Sort = "newest"
	Oldest Sort = "oldest"
)

// ListQuery - Kind empty means all kinds; TagIDs empty means no tag filter
// (non-empty is OR-across-tags); Cursor nil means first page.
type ListQuery struct {
	TagIDs []uuid.UUID
	Kind   entity.MediaKind
	Sort   Sort
	Cursor *uuid.UUID
	Limit  int
}

type MediaPage struct {
	Items      []MediaWithTags
	Total      int
	HasMore    bool
	NextCursor *uuid.UUID
}
