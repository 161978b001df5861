package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adventurehub_search_requests_total",
		Help: "Total number of stateless adventure searches",
	})
	EmptyResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adventurehub_empty_results_total",
		Help: "Total number of views that matched no adventures",
	})
	DispatchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "adventurehub_dispatch_total",
		Help: "Filter actions dispatched to sessions by action type",
	}, []string{"action"})
	SessionsOpened = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adventurehub_sessions_opened_total",
		Help: "Total number of filter sessions opened",
	})
	SessionsClosed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adventurehub_sessions_closed_total",
		Help: "Total number of filter sessions closed by the client",
	})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adventurehub_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route", "status"})
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(EmptyResultsTotal)
	prometheus.MustRegister(DispatchTotal)
	prometheus.MustRegister(SessionsOpened)
	prometheus.MustRegister(SessionsClosed)
	prometheus.MustRegister(RequestDurationMs)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
