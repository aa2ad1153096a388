package dto

import (
	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/entity"
)

// MediaWithTags pairs a media row with its resolved tag list.
type MediaWithTags struct {
	*entity.MediaItem
	Tags []entity.Tag `json:"tags"`
}

// ConfirmUpload carries the metadata of a blob the client already placed in
// the bucket via a presigned URL.
type ConfirmUpload struct {
	FileID       uuid.UUID
	Key          string
	PublicURL    string
	OriginalName string
	ContentType  string
	Size         int64
	Tags         []string
}

// PresignedUpload is the result of the presign operation.
type PresignedUpload struct {
	FileID    uuid.UUID
	Key       string
	UploadURL string
	PublicURL string
}
