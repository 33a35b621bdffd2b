package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_http_requests_total",
			Help: "Total number of HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)

	ratesFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fintrack_rates_fallbacks_total",
			Help: "Total number of rate refreshes served from fallback data",
		},
	)

	telegramEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_telegram_events_total",
			Help: "Total number of telegram auth events by kind",
		},
		[]string{"kind"},
	)
)

func CountRatesFallback() {
	ratesFallbacks.Inc()
}

func CountTelegramEvent(kind string) {
	telegramEvents.WithLabelValues(kind).Inc()
}

// Handler exposes the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware counts every request by method and response status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}
