package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saguier/boda-gallery/config"
	"github.com/saguier/boda-gallery/internal/controller/restapi"
	"github.com/saguier/boda-gallery/internal/repo/persistent"
	"github.com/saguier/boda-gallery/internal/usecase/access"
	"github.com/saguier/boda-gallery/internal/usecase/listing"
	"github.com/saguier/boda-gallery/internal/usecase/media"
	"github.com/saguier/boda-gallery/internal/usecase/tags"
	"github.com/saguier/boda-gallery/pkg/httpserver"
	"github.com/saguier/boda-gallery/pkg/logger"
	"github.com/saguier/boda-gallery/pkg/postgres"
	"github.com/saguier/boda-gallery/pkg/s3client"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	objectRepo := persistent.NewObjectRepo(s3c, cfg.S3.Bucket)
	mediaRepo := persistent.NewMediaRepo(pg)
	tagRepo := persistent.NewTagRepo(pg)

	// Use-Case

	accessUseCase := access.New(cfg.Event.AccessCode)

	mediaUseCase := media.New(
		objectRepo,
		mediaRepo,
		tagRepo,
		pg,
		cfg.S3.PublicBaseURL,
		cfg.S3.PresignTTL,
		l,
	)

	listingUseCase := listing.New(mediaRepo, tagRepo)

	tagUseCase := tags.New(tagRepo)

	// HTTP Server
	httpServer := httpserver.New(
		l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
	)
	restapi.NewRouter(httpServer.App, cfg, accessUseCase, mediaUseCase, listingUseCase, tagUseCase, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
