package entity

import (
	"time"

	"github.com/google/uuid"
)

// MediaItem is one uploaded photo or video. Created exactly once at ingestion,
// never updated; the bytes behind StorageKey live in the object store.
type MediaItem struct {
	ID uuid.UUID `json:"id"`

	StorageKey   string `json:"filename"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`

	Kind        MediaKind `json:"type"`
	ContentType string    `json:"mimeType"`
	Size        int64     `json:"size"`

	Width    *int `json:"width,omitempty"`
	Height   *int `json:"height,omitempty"`
	Duration *int `json:"duration,omitempty"` // seconds, videos only

	UploadedAt time.Time `json:"uploadedAt"`
}
