package models

import "time"

// GrayStats carries the two-value statistics result of a grayscale region.
type GrayStats struct {
	Mean   float32 `json:"mean"`
	StdDev float32 `json:"stddev"`
}

// ExtendedMetrics holds the optional metrics computed alongside the core
// statistics.
type ExtendedMetrics struct {
	Min        uint8   `json:"min"`
	Max        uint8   `json:"max"`
	Entropy    float64 `json:"entropy"`
	Resolution string  `json:"resolution"`
}

// StatsRequest represents a request for grayscale statistics of one image
type StatsRequest struct {
	URL  string `json:"url" binding:"required,url"`
	Fast bool   `json:"fast,omitempty"`
}

// BatchStatsRequest represents a request for statistics of several images
type BatchStatsRequest struct {
	URLs []string `json:"urls" binding:"required,min=1"`
	Fast bool     `json:"fast,omitempty"`
}

// StatsResponse represents the response for a single image
type StatsResponse struct {
	ImageURL          string           `json:"image_url"`
	Timestamp         time.Time        `json:"timestamp"`
	ProcessingTimeSec float64          `json:"processing_time_sec"`
	Stats             GrayStats        `json:"stats"`
	Extended          *ExtendedMetrics `json:"extended,omitempty"`
	Issues            []string         `json:"issues,omitempty"`
}

// BatchStatsItem represents one image's outcome inside a batch response
type BatchStatsItem struct {
	ImageURL string         `json:"image_url"`
	Error    string         `json:"error,omitempty"`
	Result   *StatsResponse `json:"result,omitempty"`
}

// BatchStatsResponse represents the response for a batch request
type BatchStatsResponse struct {
	Results []BatchStatsItem `json:"results"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
