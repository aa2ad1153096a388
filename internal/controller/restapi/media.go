package restapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/controller/restapi/response"
	"github.com/saguier/boda-gallery/internal/dto"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

// @Summary  	List media
// @Description Filtered, sorted, cursor-paginated gallery listing with tags per item
// @Tags 		media
// @Produce 	json
// @Param 		tags 	query string false "Comma-separated tag ids (OR semantics)"
// @Param 		type 	query string false "all | photo | video" default(all)
// @Param 		sortBy 	query string false "newest | oldest" default(newest)
// @Param 		cursor 	query string false "Last media id of the previous page"
// @Success 	200 {object} response.Data
// @Failure 	400 {object} response.Error "Malformed filter or cursor"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/media [get]
func (r *Gallery) listMedia(ctx *fiber.Ctx) error {
	q := dto.ListQuery{Sort: dto.Newest}

	if tagsParam := ctx.Query("tags"); tagsParam != "" {
		for _, raw := range strings.Split(tagsParam, ",") {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				return errorResponse(ctx, http.StatusBadRequest, "invalid tag id")
			}
			q.TagIDs = append(q.TagIDs, id)
		}
	}

	switch ctx.Query("type", "all") {
	case "all":
	case "photo":
		q.Kind = entity.Photo
	case "video":
		q.Kind = entity.Video
	default:
		return errorResponse(ctx, http.StatusBadRequest, "type must be all, photo or video")
	}

	switch ctx.Query("sortBy", "newest") {
	case "newest":
		q.Sort = dto.Newest
	case "oldest":
		q.Sort = dto.Oldest
	default:
		return errorResponse(ctx, http.StatusBadRequest, "sortBy must be newest or oldest")
	}

	if cursorParam := ctx.Query("cursor"); cursorParam != "" {
		id, err := uuid.Parse(cursorParam)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "invalid cursor")
		}
		q.Cursor = &id
	}

	page, err := r.listing.List(ctx.UserContext(), q)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCursor) {
			return errorResponse(ctx, http.StatusBadRequest, "invalid cursor")
		}
		r.logger.Error(err, "restapi - listMedia")

		return errorResponse(ctx, http.StatusInternalServerError, "could not fetch media")
	}

	return dataResponse(ctx, response.MediaPage{
		Media:      page.Items,
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextCursor: page.NextCursor,
	})
}
