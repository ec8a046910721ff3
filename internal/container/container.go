package container

import (
	"fmt"
	"net/http"

	"go-gray-stats/internal/analyzer"
	"go-gray-stats/internal/config"
	"go-gray-stats/internal/repository"
	"go-gray-stats/internal/service"
	"go-gray-stats/internal/storage"
	"go-gray-stats/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config       *config.Config
	imageFetcher storage.ImageFetcher
	grayAnalyzer analyzer.GrayAnalyzer
	imageRepo    repository.ImageRepository
	statsService service.StatsService
	handler      http.Handler
}

// NewContainer builds the dependency graph from configuration
func NewContainer(cfg *config.Config) (*Container, error) {
	imageFetcher, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}

	grayAnalyzer := analyzer.NewGrayAnalyzer()
	imageRepo := repository.NewFetcherImageRepository(imageFetcher)
	statsService := service.NewStatsService(imageRepo, grayAnalyzer, cfg.Workers, cfg.MaxBatchSize)
	handler := transport.NewHandler(statsService, cfg)

	return &Container{
		config:       cfg,
		imageFetcher: imageFetcher,
		grayAnalyzer: grayAnalyzer,
		imageRepo:    imageRepo,
		statsService: statsService,
		handler:      handler,
	}, nil
}

func newFetcher(cfg *config.Config) (storage.ImageFetcher, error) {
	switch cfg.StorageBackend {
	case config.StorageAzure:
		return storage.NewAzureBlobFetcher(cfg.AzureAccountName, cfg.AzureAccountKey)
	case config.StorageHTTP:
		return storage.NewHTTPImageFetcher(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.StorageBackend)
	}
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases service resources
func (c *Container) Close() {
	c.statsService.Close()
}
