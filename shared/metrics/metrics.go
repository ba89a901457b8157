package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	videosTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "video_library_videos_total",
		Help: "Number of videos currently held by the store",
	})

	videosCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_library_videos_created_total",
		Help: "Videos created since process start",
	})

	validationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_library_validation_failures_total",
		Help: "Rejected create requests by failing field",
	}, []string{"field"})

	ideaRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_library_idea_requests_total",
		Help: "Idea generation requests by outcome",
	}, []string{"outcome"}) // success|bad_request|not_configured|upstream|empty|malformed

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "video_library_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func SetVideoCount(n int) {
	videosTotal.Set(float64(n))
}

func RecordVideoCreated() {
	videosCreated.Inc()
}

func RecordValidationFailure(field string) {
	validationFailures.WithLabelValues(field).Inc()
}

func RecordIdeaRequest(outcome string) {
	ideaRequests.WithLabelValues(outcome).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request durations labelled by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		httpRequestDuration.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
