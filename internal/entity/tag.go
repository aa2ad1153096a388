package entity

import (
	"time"

	"github.com/google/uuid"
)

const MaxTagNameLen = 50

// Tag is a curated or guest-created label, many-to-many with media.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"-"`
}

// TagUsage is a registry row: a tag plus how many media link to it.
type TagUsage struct {
	Tag
	Count int64 `json:"count"`
}
