package restapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

// @Summary  	Download media
// @Description Streams the original bytes back with attachment headers
// @Tags 		media
// @Produce 	application/octet-stream
// @Param 		id query string true "Media id (uuid)"
// @Success 	200 {file} 	binary
// @Failure 	400 {object} response.Error "Invalid id"
// @Failure 	404 {object} response.Error "Unknown media or missing blob"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/download [get]
func (r *Gallery) downloadMedia(ctx *fiber.Ctx) error {
	idStr := ctx.Query("id")
	if idStr == "" {
		return errorResponse(ctx, http.StatusBadRequest, "media id is required")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid media id")
	}

	item, body, err := r.media.DownloadMedia(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "file not found")
		}
		r.logger.Error(err, "restapi - downloadMedia")

		return errorResponse(ctx, http.StatusInternalServerError, "could not download the file")
	}

	ctx.Set(fiber.HeaderContentType, item.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", item.OriginalName))
	ctx.Set(fiber.HeaderCacheControl, "private, max-age=3600")

	return ctx.SendStream(body, int(item.Size))
}
