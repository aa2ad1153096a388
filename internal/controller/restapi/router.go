package restapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/saguier/boda-gallery/config"
	"github.com/saguier/boda-gallery/internal/controller/restapi/response"
	"github.com/saguier/boda-gallery/internal/usecase"
	"github.com/saguier/boda-gallery/pkg/logger"
)

// @title Event gallery
// @version 1.0.0
// @host localhost:8080
// @BasePath /
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	access usecase.AccessUseCase,
	media usecase.MediaUseCase,
	listing usecase.ListingUseCase,
	tags usecase.TagUseCase,
	l logger.Interface,
) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	r := &Gallery{
		access:  access,
		media:   media,
		listing: listing,
		tags:    tags,
		logger:  l,
	}

	{
		app.Post("/auth", r.authenticate)

		app.Get("/media", r.listMedia)

		app.Get("/tags", r.listTags)
		app.Post("/tags", r.createTag)

		app.Post("/upload", r.uploadMedia)
		app.Post("/upload/presign", r.presignUpload)
		app.Post("/upload/confirm", r.confirmUpload)

		app.Get("/download", r.downloadMedia)
	}
}

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Success: false, Error: msg})
}

func dataResponse(ctx *fiber.Ctx, data any) error {
	return ctx.Status(http.StatusOK).JSON(response.Data{Success: true, Data: data})
}
