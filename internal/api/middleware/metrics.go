package middleware

import (
	"net/http"
	"sync/atomic"
)

// MetricsCollector counts requests and failed responses.
type MetricsCollector struct {
	requests     atomic.Int64
	clientErrors atomic.Int64
	serverErrors atomic.Int64
	calculations atomic.Int64
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Requests     int64 `json:"request_count"`
	ClientErrors int64 `json:"client_error_count"`
	ServerErrors int64 `json:"server_error_count"`
	Calculations int64 `json:"calculation_count"`
}

func (mc *MetricsCollector) Snapshot() Snapshot {
	return Snapshot{
		Requests:     mc.requests.Load(),
		ClientErrors: mc.clientErrors.Load(),
		ServerErrors: mc.serverErrors.Load(),
		Calculations: mc.calculations.Load(),
	}
}

// Middleware counts every request and classifies 4xx and 5xx responses.
// Successful POSTs to calculatePath count as calculations.
func (mc *MetricsCollector) Middleware(calculatePath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mc.requests.Add(1)

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			switch {
			case rw.statusCode >= 500:
				mc.serverErrors.Add(1)
			case rw.statusCode >= 400:
				mc.clientErrors.Add(1)
			case r.Method == http.MethodPost && r.URL.Path == calculatePath:
				mc.calculations.Add(1)
			}
		})
	}
}
