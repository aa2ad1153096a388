package restapi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/saguier/boda-gallery/internal/controller/restapi/response"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

type createTagRequest struct {
	Name string `json:"name"`
}

// @Summary  	List tags
// @Description Every tag with its media usage count, name ascending
// @Tags 		tags
// @Produce 	json
// @Success 	200 {object} response.Data
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/tags [get]
func (r *Gallery) listTags(ctx *fiber.Ctx) error {
	usages, err := r.tags.List(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - listTags")

		return errorResponse(ctx, http.StatusInternalServerError, "could not fetch tags")
	}

	if usages == nil {
		usages = []entity.TagUsage{}
	}

	return dataResponse(ctx, usages)
}

// @Summary  	Create tag
// @Description Creates a tag; same-named (any casing) returns the existing one
// @Tags 		tags
// @Accept 		json
// @Produce 	json
// @Param 		request body createTagRequest true "Tag name"
// @Success 	200 {object} response.Data
// @Failure 	400 {object} response.Error "Empty or too long name"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/tags [post]
func (r *Gallery) createTag(ctx *fiber.Ctx) error {
	var req createTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "tag name is required")
	}

	usage, existing, err := r.tags.Create(ctx.UserContext(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyTagName):
			return errorResponse(ctx, http.StatusBadRequest, "tag name is required")
		case errors.Is(err, errs.ErrTagNameTooLong):
			return errorResponse(ctx, http.StatusBadRequest, "tag name is too long (max 50 characters)")
		}
		r.logger.Error(err, "restapi - createTag")

		return errorResponse(ctx, http.StatusInternalServerError, "could not create tag")
	}

	return ctx.JSON(response.Data{Success: true, Data: usage, Existing: existing})
}
