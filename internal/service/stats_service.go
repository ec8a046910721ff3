package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-gray-stats/internal/analyzer"
	apperrors "go-gray-stats/internal/errors"
	"go-gray-stats/internal/repository"
	"go-gray-stats/pkg/models"
)

// StatsService defines the interface for grayscale statistics of remote images
type StatsService interface {
	// ComputeStats fetches one image and returns its statistics
	ComputeStats(ctx context.Context, imageURL string, opts analyzer.Options) (*models.StatsResponse, error)

	// ComputeBatchStats fans several images out over the worker pool,
	// capturing per-URL failures instead of aborting the batch
	ComputeBatchStats(ctx context.Context, imageURLs []string, opts analyzer.Options) (*models.BatchStatsResponse, error)

	// ValidateImageURL validates an image URL without fetching it
	ValidateImageURL(imageURL string) error

	// Close releases the worker pool
	Close()
}

type statsService struct {
	imageRepo repository.ImageRepository
	analyzer  analyzer.GrayAnalyzer
	pool      *analyzer.WorkerPool
	maxBatch  int
}

// NewStatsService creates a new statistics service
func NewStatsService(
	imageRepo repository.ImageRepository,
	grayAnalyzer analyzer.GrayAnalyzer,
	workers int,
	maxBatch int,
) StatsService {
	pool := analyzer.NewWorkerPool(workers)
	pool.Start()

	return &statsService{
		imageRepo: imageRepo,
		analyzer:  grayAnalyzer,
		pool:      pool,
		maxBatch:  maxBatch,
	}
}

func (s *statsService) ComputeStats(ctx context.Context, imageURL string, opts analyzer.Options) (*models.StatsResponse, error) {
	start := time.Now()

	if err := s.imageRepo.ValidateImageURL(imageURL); err != nil {
		return nil, apperrors.NewValidationError("invalid image URL", err)
	}

	img, err := s.imageRepo.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to fetch image", err)
	}

	report := s.analyzer.Analyze(img, opts)

	response := &models.StatsResponse{
		ImageURL:          imageURL,
		Timestamp:         start,
		ProcessingTimeSec: time.Since(start).Seconds(),
		Stats: models.GrayStats{
			Mean:   report.Mean,
			StdDev: report.StdDev,
		},
		Issues: report.Issues,
	}
	if report.HasExtended {
		response.Extended = &models.ExtendedMetrics{
			Min:        report.Min,
			Max:        report.Max,
			Entropy:    report.Entropy,
			Resolution: fmt.Sprintf("%dx%d", report.Width, report.Height),
		}
	}
	return response, nil
}

func (s *statsService) ComputeBatchStats(ctx context.Context, imageURLs []string, opts analyzer.Options) (*models.BatchStatsResponse, error) {
	if len(imageURLs) == 0 {
		return nil, apperrors.NewValidationError("batch contains no URLs", nil)
	}
	if len(imageURLs) > s.maxBatch {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("batch size %d exceeds limit %d", len(imageURLs), s.maxBatch), nil)
	}

	items := make([]models.BatchStatsItem, len(imageURLs))

	// Per-batch wait group; the pool is shared between concurrent requests.
	var wg sync.WaitGroup
	for i, imageURL := range imageURLs {
		i, imageURL := i, imageURL
		wg.Add(1)
		s.pool.Submit(func() {
			defer wg.Done()
			item := models.BatchStatsItem{ImageURL: imageURL}
			resp, err := s.ComputeStats(ctx, imageURL, opts)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Result = resp
			}
			items[i] = item
		})
	}
	wg.Wait()

	return &models.BatchStatsResponse{Results: items}, nil
}

func (s *statsService) ValidateImageURL(imageURL string) error {
	return s.imageRepo.ValidateImageURL(imageURL)
}

func (s *statsService) Close() {
	s.pool.Close()
}
