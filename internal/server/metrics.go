// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pdiddy/assignment-engine/internal/enhance"
)

var (
	// RequestsTotal counts handled requests by route template and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assignment_engine",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration measures request latency by route template.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "assignment_engine",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// AnalysesTotal counts analyses by detected assignment type.
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assignment_engine",
			Name:      "analyses_total",
			Help:      "Total number of assignment analyses",
		},
		[]string{"assignment_type"},
	)

	// DraftsGenerated counts generated drafts by assignment type.
	DraftsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assignment_engine",
			Name:      "drafts_generated_total",
			Help:      "Total number of generated drafts",
		},
		[]string{"assignment_type"},
	)

	// EnhancementsTotal counts enhancements by instruction. Unrecognized
	// instructions share the "other" label.
	EnhancementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assignment_engine",
			Name:      "enhancements_total",
			Help:      "Total number of content enhancements",
		},
		[]string{"instruction"},
	)

	// LinkFetchesTotal counts external link fetches by outcome.
	LinkFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assignment_engine",
			Name:      "link_fetches_total",
			Help:      "Total number of external link fetches",
		},
		[]string{"status"},
	)
)

// RecordEnhancement records an enhancement, folding unknown instructions
// into a single label.
func RecordEnhancement(instruction string) {
	label := "other"
	if known, ok := enhance.Lookup(instruction); ok {
		label = known
	}
	EnhancementsTotal.WithLabelValues(label).Inc()
}

// metricsMiddleware records RequestsTotal and RequestDuration.
func metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			RequestsTotal.WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).Inc()
			RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
