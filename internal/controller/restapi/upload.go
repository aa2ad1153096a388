package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/controller/restapi/response"
	"github.com/saguier/boda-gallery/internal/controller/restapi/validate"
	"github.com/saguier/boda-gallery/internal/dto"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

type presignRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type confirmRequest struct {
	FileID       string   `json:"fileId"`
	Key          string   `json:"key"`
	PublicURL    string   `json:"publicUrl"`
	OriginalName string   `json:"originalName"`
	ContentType  string   `json:"contentType"`
	Size         int64    `json:"size"`
	SelectedTags []string `json:"selectedTags"`
}

// @Summary  	Upload media
// @Description Uploads bytes to the bucket, writes metadata and tag links in one transaction
// @Tags 		upload
// @Accept 		mpfd
// @Produce 	json
// @Param 		file formData file   true  "Photo or video"
// @Param 		tags formData string false "JSON array of tag names"
// @Success 	200 {object} response.Data
// @Failure 	400 {object} response.Error "Validation failure"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/upload [post]
func (r *Gallery) uploadMedia(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "file is required")
	}

	if file.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "file is empty")
	}

	if file.Size > validate.MaxFileSize {
		return errorResponse(ctx, http.StatusBadRequest, "file exceeds the 100MB limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !validate.AllowedContentTypes[contentType] {
		return errorResponse(ctx, http.StatusBadRequest, "file type not allowed")
	}

	var tagNames []string
	if tagsJSON := ctx.FormValue("tags"); tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &tagNames); err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "tags must be a JSON array of names")
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - uploadMedia")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer fileReader.Close()

	item, err := r.media.UploadNewMedia(ctx.UserContext(), fileReader, file.Filename, contentType, file.Size, tagNames)
	if err != nil {
		if errors.Is(err, errs.ErrTagNameTooLong) {
			return errorResponse(ctx, http.StatusBadRequest, "tag name is too long (max 50 characters)")
		}
		r.logger.Error(err, "restapi - uploadMedia")

		return errorResponse(ctx, http.StatusInternalServerError, "could not upload the file")
	}

	return dataResponse(ctx, item)
}

// @Summary  	Presign upload
// @Description Issues a time-limited URL so the client writes straight to the bucket
// @Tags 		upload
// @Accept 		json
// @Produce 	json
// @Param 		request body presignRequest true "File metadata"
// @Success 	200 {object} response.Data
// @Failure 	400 {object} response.Error "Validation failure"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/upload/presign [post]
func (r *Gallery) presignUpload(ctx *fiber.Ctx) error {
	var req presignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "missing required fields")
	}

	if req.Filename == "" || req.ContentType == "" || req.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "missing required fields")
	}

	if req.Size > validate.MaxFileSize {
		return errorResponse(ctx, http.StatusBadRequest, "file exceeds the 100MB limit")
	}

	if !validate.AllowedContentTypes[req.ContentType] {
		return errorResponse(ctx, http.StatusBadRequest, "file type not allowed")
	}

	presigned, err := r.media.PresignUpload(ctx.UserContext(), req.Filename, req.ContentType, req.Size)
	if err != nil {
		r.logger.Error(err, "restapi - presignUpload")

		return errorResponse(ctx, http.StatusInternalServerError, "could not generate upload URL")
	}

	return dataResponse(ctx, response.PresignedUpload{
		FileID:    presigned.FileID,
		UploadURL: presigned.UploadURL,
		PublicURL: presigned.PublicURL,
		Key:       presigned.Key,
	})
}

// @Summary  	Confirm presigned upload
// @Description Writes metadata for a blob the client already placed in the bucket
// @Tags 		upload
// @Accept 		json
// @Produce 	json
// @Param 		request body confirmRequest true "Uploaded file metadata"
// @Success 	200 {object} response.Data
// @Failure 	400 {object} response.Error "Validation failure"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/upload/confirm [post]
func (r *Gallery) confirmUpload(ctx *fiber.Ctx) error {
	var req confirmRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "missing required fields")
	}

	if req.FileID == "" || req.Key == "" || req.PublicURL == "" || req.OriginalName == "" || req.ContentType == "" || req.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "missing required fields")
	}

	fileID, err := uuid.Parse(req.FileID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid file id")
	}

	if req.Size > validate.MaxFileSize {
		return errorResponse(ctx, http.StatusBadRequest, "file exceeds the 100MB limit")
	}

	if !validate.AllowedContentTypes[req.ContentType] {
		return errorResponse(ctx, http.StatusBadRequest, "file type not allowed")
	}

	item, err := r.media.ConfirmUpload(ctx.UserContext(), dto.ConfirmUpload{
		FileID:       fileID,
		Key:          req.Key,
		PublicURL:    req.PublicURL,
		OriginalName: req.OriginalName,
		ContentType:  req.ContentType,
		Size:         req.Size,
		Tags:         req.SelectedTags,
	})
	if err != nil {
		if errors.Is(err, errs.ErrTagNameTooLong) {
			return errorResponse(ctx, http.StatusBadRequest, "tag name is too long (max 50 characters)")
		}
		r.logger.Error(err, "restapi - confirmUpload")

		return errorResponse(ctx, http.StatusInternalServerError, "could not confirm the upload")
	}

	return dataResponse(ctx, item)
}
