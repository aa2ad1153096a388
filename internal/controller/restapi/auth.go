package restapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/saguier/boda-gallery/internal/controller/restapi/response"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

type authRequest struct {
	Code string `json:"code"`
}

// @Summary  	Validate event access code
// @Description Compares the submitted code against the configured shared secret
// @Tags 		auth
// @Accept 		json
// @Produce 	json
// @Param 		request body authRequest true "Access code"
// @Success 	200 {object} response.Auth
// @Failure 	400 {object} response.Error "Missing code"
// @Failure 	401 {object} response.Error "Wrong code"
// @Failure 	500 {object} response.Error "Server secret unconfigured"
// @Router 		/auth [post]
func (r *Gallery) authenticate(ctx *fiber.Ctx) error {
	var req authRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "please enter a code")
	}

	if strings.TrimSpace(req.Code) == "" {
		return errorResponse(ctx, http.StatusBadRequest, "please enter a code")
	}

	err := r.access.Validate(req.Code)
	if err != nil {
		if errors.Is(err, errs.ErrCodeNotConfigured) {
			r.logger.Error(err, "restapi - authenticate")

			return errorResponse(ctx, http.StatusInternalServerError, "server configuration error")
		}

		return errorResponse(ctx, http.StatusUnauthorized, "wrong code, try again")
	}

	return ctx.JSON(response.Auth{Success: true, Message: "welcome, access granted"})
}
