package restapi

import (
	"github.com/saguier/boda-gallery/internal/usecase"
	"github.com/saguier/boda-gallery/pkg/logger"
)

type Gallery struct {
	access  usecase.AccessUseCase
	media   usecase.MediaUseCase
	listing usecase.ListingUseCase
	tags    usecase.TagUseCase

	logger logger.Interface
}
