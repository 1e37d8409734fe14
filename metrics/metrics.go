package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeNotFound        = "not_found"
	OutcomeTransportError  = "transport_error"
)

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cepclima_lookups_total",
		Help: "The total number of postal code lookups by outcome",
	}, []string{"outcome"})
	lookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cepclima_lookup_duration_seconds",
		Help:    "Time spent on a full address and weather lookup",
		Buckets: prometheus.DefBuckets,
	})
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cepclima_upstream_requests_total",
		Help: "The total number of requests sent to ViaCEP and WeatherAPI",
	}, []string{"service", "status"})
	ignoredSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cepclima_ignored_submissions_total",
		Help: "Submissions dropped because a lookup was already in flight",
	})
)

func ObserveLookup(outcome string, seconds float64) {
	lookups.WithLabelValues(outcome).Inc()
	if outcome != OutcomeValidationError {
		lookupDuration.Observe(seconds)
	}
}

// ObserveUpstream counts one outbound call. A zero status means the request
// never got a response.
func ObserveUpstream(service string, status int) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	upstreamRequests.WithLabelValues(service, label).Inc()
}

func IgnoredSubmission() {
	ignoredSubmissions.Inc()
}
