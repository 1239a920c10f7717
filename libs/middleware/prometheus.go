package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	latencyBuckets = []float64{.25, .5, 1, 2.5, 5, 10}

	inFlightGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "in_flight_requests",
		Help: "A gauge of requests currently being served by the wrapped handler.",
	})

	handlerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Number of requests per handler.",
		},
		[]string{"handler", "code", "method"},
	)

	handlerLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "A histogram of latencies for requests.",
			Buckets: latencyBuckets,
		},
		[]string{"handler", "method"},
	)

	clientInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "client_in_flight_requests",
			Help: "A gauge of in-flight requests for the wrapped client.",
		},
		[]string{"service"},
	)

	clientRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_api_requests_total",
			Help: "A counter for requests from the wrapped client.",
		},
		[]string{"service", "code", "method"},
	)

	// the event label is set by the httptrace hooks below
	clientDNSLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_dns_duration_seconds",
			Help:    "Trace dns latency histogram.",
			Buckets: []float64{.005, .01, .025, .05},
		},
		[]string{"service", "event"},
	)

	clientTLSLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_tls_duration_seconds",
			Help:    "Trace tls latency histogram.",
			Buckets: []float64{.05, .1, .25, .5},
		},
		[]string{"service", "event"},
	)

	clientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "A histogram of request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)
)

func init() {
	prometheus.MustRegister(
		inFlightGauge,
		handlerRequests,
		handlerLatency,
		clientInFlight,
		clientRequests,
		clientDNSLatency,
		clientTLSLatency,
		clientLatency,
	)
}

// InstrumentRoundTripper instruments an http.RoundTripper to capture metrics like the number
// of active requests, the total number of requests made and latency information, all
// labeled with service
func InstrumentRoundTripper(roundTripper http.RoundTripper, service string) http.RoundTripper {
	labels := prometheus.Labels{"service": service}

	trace := &promhttp.InstrumentTrace{
		DNSStart: func(t float64) {
			clientDNSLatency.WithLabelValues(service, "dns_start").Observe(t)
		},
		DNSDone: func(t float64) {
			clientDNSLatency.WithLabelValues(service, "dns_done").Observe(t)
		},
		TLSHandshakeStart: func(t float64) {
			clientTLSLatency.WithLabelValues(service, "tls_handshake_start").Observe(t)
		},
		TLSHandshakeDone: func(t float64) {
			clientTLSLatency.WithLabelValues(service, "tls_handshake_done").Observe(t)
		},
	}

	return promhttp.InstrumentRoundTripperInFlight(clientInFlight.With(labels),
		promhttp.InstrumentRoundTripperCounter(clientRequests.MustCurryWith(labels),
			promhttp.InstrumentRoundTripperTrace(trace,
				promhttp.InstrumentRoundTripperDuration(clientLatency.MustCurryWith(labels), roundTripper),
			),
		),
	)
}

// InstrumentHandler instruments an http.Handler to capture metrics like the number
// the total number of requests served and latency information
func InstrumentHandler(name string, h http.Handler) http.Handler {
	labels := prometheus.Labels{"handler": name}
	return promhttp.InstrumentHandlerInFlight(inFlightGauge,
		promhttp.InstrumentHandlerCounter(handlerRequests.MustCurryWith(labels),
			promhttp.InstrumentHandlerDuration(handlerLatency.MustCurryWith(labels), h),
		),
	)
}

// Metrics returns a http.HandlerFunc for the prometheus /metrics endpoint
func Metrics() http.HandlerFunc {
	return promhttp.Handler().(http.HandlerFunc)
}
