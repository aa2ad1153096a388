package response

import (
	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/dto"
)

type Error struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type Auth struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Data is the uniform success envelope. Existing is only set by tag creation
// when the name already had a row.
type Data struct {
	Success  bool `json:"success"`
	Data     any  `json:"data"`
	Existing bool `json:"existing,omitempty"`
}

type MediaPage struct {
	Media      []dto.MediaWithTags `json:"media"`
	Total      int                 `json:"total"`
	HasMore    bool                `json:"hasMore"`
	NextCursor *uuid.UUID          `json:"nextCursor,omitempty"`
}

type PresignedUpload struct {
	FileID    uuid.UUID `json:"fileId"`
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	Key       string    `json:"key"`
}
