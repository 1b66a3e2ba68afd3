package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OTP workflow

	OTPIssuedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "otp_issued_total",
		Help:      "Total OTP codes issued (including re-issues).",
	})

	OTPVerifiedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "otp_verify_total",
		Help:      "OTP verification attempts, by outcome.",
	}, []string{"outcome"})

	// Payment workflow

	OrdersCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "orders_created_total",
		Help:      "Gateway order creation attempts, by outcome.",
	}, []string{"outcome"})

	PaymentsVerifiedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "payments_verified_total",
		Help:      "Payment callback verifications, by outcome.",
	}, []string{"outcome"})

	// HTTP

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "checkout",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		OTPIssuedTotal,
		OTPVerifiedTotal,
		OrdersCreatedTotal,
		PaymentsVerifiedTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// Handler exposes the Prometheus endpoint, mounted at /metrics by the router.
func Handler() http.Handler {
	return promhttp.Handler()
}
