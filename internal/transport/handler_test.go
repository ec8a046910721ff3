package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"go-gray-stats/internal/analyzer"
	"go-gray-stats/internal/config"
	apperrors "go-gray-stats/internal/errors"
	"go-gray-stats/pkg/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStatsService returns canned responses without fetching anything.
type fakeStatsService struct {
	failWith error
}

func (f *fakeStatsService) ComputeStats(ctx context.Context, imageURL string, opts analyzer.Options) (*models.StatsResponse, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &models.StatsResponse{
		ImageURL:  imageURL,
		Timestamp: time.Now(),
		Stats:     models.GrayStats{Mean: 127.5, StdDev: 42.0},
	}, nil
}

func (f *fakeStatsService) ComputeBatchStats(ctx context.Context, imageURLs []string, opts analyzer.Options) (*models.BatchStatsResponse, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	items := make([]models.BatchStatsItem, len(imageURLs))
	for i, u := range imageURLs {
		resp, _ := f.ComputeStats(ctx, u, opts)
		items[i] = models.BatchStatsItem{ImageURL: u, Result: resp}
	}
	return &models.BatchStatsResponse{Results: items}, nil
}

func (f *fakeStatsService) ValidateImageURL(imageURL string) error { return nil }

func (f *fakeStatsService) Close() {}

func testConfig() *config.Config {
	return &config.Config{
		RequestTimeout:     5 * time.Second,
		MaxRequestBodySize: 1 << 20,
	}
}

func TestHealthCheck(t *testing.T) {
	handler := NewHandler(&fakeStatsService{}, testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "available") {
		t.Errorf("Unexpected health body: %s", w.Body.String())
	}
}

func TestComputeStatsEndpoint(t *testing.T) {
	handler := NewHandler(&fakeStatsService{}, testConfig())

	body := `{"url": "https://cdn.test/img.png"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stats", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.StatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Stats.Mean != 127.5 || resp.Stats.StdDev != 42.0 {
		t.Errorf("Unexpected stats: %+v", resp.Stats)
	}
}

func TestComputeStatsEndpointBadRequest(t *testing.T) {
	handler := NewHandler(&fakeStatsService{}, testConfig())

	testCases := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "plain text"},
		{"missing url", `{}`},
		{"non-url value", `{"url": "not a url"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/stats", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestComputeStatsEndpointServiceError(t *testing.T) {
	svc := &fakeStatsService{failWith: apperrors.NewNetworkError("failed to fetch image", nil)}
	handler := NewHandler(svc, testConfig())

	body := `{"url": "https://cdn.test/img.png"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stats", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 for network error, got %d", w.Code)
	}
}

func TestComputeBatchStatsEndpoint(t *testing.T) {
	handler := NewHandler(&fakeStatsService{}, testConfig())

	body := `{"urls": ["https://cdn.test/a.png", "https://cdn.test/b.png"], "fast": true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stats/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.BatchStatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Errorf("Expected 2 results, got %d", len(resp.Results))
	}
}

func TestComputeBatchStatsEndpointEmpty(t *testing.T) {
	handler := NewHandler(&fakeStatsService{}, testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stats/batch", strings.NewReader(`{"urls": []}`))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty batch, got %d", w.Code)
	}
}
