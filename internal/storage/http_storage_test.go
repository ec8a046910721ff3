package storage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func encodeTestPNG(t *testing.T, value uint8) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestFetchImageSuccess(t *testing.T) {
	payload := encodeTestPNG(t, 128)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher()
	img, err := fetcher.FetchImage(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("Expected 8x8 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	r, _, _, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 128 {
		t.Errorf("Expected pixel value 128, got %d", r>>8)
	}
}

func TestFetchImageClientErrorNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher()
	if _, err := fetcher.FetchImage(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
	if attempts != 1 {
		t.Errorf("Expected a single attempt for a 4xx response, got %d", attempts)
	}
}

func TestFetchImageServerErrorRetried(t *testing.T) {
	attempts := 0
	payload := encodeTestPNG(t, 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher()
	img, err := fetcher.FetchImage(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if img == nil {
		t.Fatal("Expected decoded image")
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestFetchImageDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("not an image"))
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher()
	if _, err := fetcher.FetchImage(context.Background(), server.URL); err == nil {
		t.Error("Expected decode error for garbage payload")
	}
}

func TestFetchImageInvalidURL(t *testing.T) {
	fetcher := NewHTTPImageFetcher()
	if _, err := fetcher.FetchImage(context.Background(), "://bad"); err == nil {
		t.Error("Expected error for malformed URL")
	}
}
