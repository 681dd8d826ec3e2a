package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// Enquiry metrics
	enquirySubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enquiry_submissions_total",
			Help: "Total number of enquiries submitted through the storefront form",
		},
	)

	enquiryDeletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enquiry_deletions_total",
			Help: "Total number of enquiries deleted from the dashboard",
		},
	)

	enquiryExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiry_exports_total",
			Help: "Total number of spreadsheet exports by option",
		},
		[]string{"option"},
	)
)

// RecordEnquirySubmission increments the submission counter
func RecordEnquirySubmission() {
	enquirySubmissionsTotal.Inc()
}

// RecordEnquiryDeletion increments the deletion counter
func RecordEnquiryDeletion() {
	enquiryDeletionsTotal.Inc()
}

// RecordEnquiryExport increments the export counter for the given option
func RecordEnquiryExport(option string) {
	enquiryExportsTotal.WithLabelValues(option).Inc()
}

// Middleware records request count and duration per route
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())

		httpRequestsTotal.WithLabelValues(ctx.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, endpoint, status).Observe(time.Since(start).Seconds())
	}
}
