package repository

import (
	"context"
	"fmt"
	"image"

	"go-gray-stats/internal/storage"
	"go-gray-stats/pkg/validation"
)

// FetcherImageRepository implements ImageRepository over any storage fetcher
// (HTTP or Azure Blob), with URL validation in front.
type FetcherImageRepository struct {
	fetcher   storage.ImageFetcher
	validator *validation.URLValidator
}

// NewFetcherImageRepository creates an image repository backed by the given
// fetcher.
func NewFetcherImageRepository(fetcher storage.ImageFetcher) ImageRepository {
	return &FetcherImageRepository{
		fetcher:   fetcher,
		validator: validation.NewURLValidator(),
	}
}

// FetchImage retrieves an image after validating its URL
func (r *FetcherImageRepository) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	if err := r.ValidateImageURL(imageURL); err != nil {
		return nil, err
	}
	img, err := r.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageNotFound, err)
	}
	return img, nil
}

// ValidateImageURL validates if the provided URL is acceptable
func (r *FetcherImageRepository) ValidateImageURL(imageURL string) error {
	if err := r.validator.ValidateImageURL(imageURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImageURL, err)
	}
	return nil
}
