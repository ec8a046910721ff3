package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-gray-stats/internal/analyzer"
	"go-gray-stats/internal/config"
	apperrors "go-gray-stats/internal/errors"
	"go-gray-stats/internal/logger"
	"go-gray-stats/internal/service"
	"go-gray-stats/pkg/models"
)

// NewHandler wires the HTTP routes for the statistics service
func NewHandler(statsService service.StatsService, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	r.GET("/health", healthCheck)
	r.POST("/stats", computeStats(statsService, cfg))
	r.POST("/stats/batch", computeBatchStats(statsService, cfg))

	return r
}

func computeStats(s service.StatsService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Processing statistics request")

		var req models.StatsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		resp, err := s.ComputeStats(ctx, req.URL, optionsFor(req.Fast))
		if err != nil {
			handleServiceError(c, req.URL, err)
			return
		}

		logger.WithFields(logrus.Fields{
			"url":                req.URL,
			"processing_time_ms": time.Since(startTime).Milliseconds(),
			"mean":               resp.Stats.Mean,
			"stddev":             resp.Stats.StdDev,
		}).Info("Statistics computed")

		c.JSON(http.StatusOK, resp)
	}
}

func computeBatchStats(s service.StatsService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.BatchStatsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).Error("Invalid batch request format")
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		resp, err := s.ComputeBatchStats(ctx, req.URLs, optionsFor(req.Fast))
		if err != nil {
			handleServiceError(c, fmt.Sprintf("batch of %d", len(req.URLs)), err)
			return
		}

		logger.WithFields(logrus.Fields{
			"batch_size": len(req.URLs),
		}).Info("Batch statistics computed")

		c.JSON(http.StatusOK, resp)
	}
}

func optionsFor(fast bool) analyzer.Options {
	if fast {
		return analyzer.FastOptions()
	}
	return analyzer.DefaultOptions()
}

func handleServiceError(c *gin.Context, subject string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"subject": subject,
		"ip":      c.ClientIP(),
	}).Error("Statistics request failed")

	respondError(c, apperrors.GetStatusCode(err), "statistics request failed", err)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
