// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service's counters so they can be injected where
// the events happen.
type Metrics struct {
	Registry *prometheus.Registry

	Logins           prometheus.Counter
	Registrations    prometheus.Counter
	TokenRefreshes   prometheus.Counter
	OTPIssued        prometheus.Counter
	ProviderRequests prometheus.Counter
	ProviderFailures prometheus.Counter
}

// New builds the metric set on a private registry, keeping the default
// registry free of duplicate registrations in tests.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_logins_total",
			Help: "Successful logins, local and google combined.",
		}),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_registrations_total",
			Help: "Accounts created through registration.",
		}),
		TokenRefreshes: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_token_refreshes_total",
			Help: "Successful refresh token rotations.",
		}),
		OTPIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_otp_issued_total",
			Help: "One-time verification codes mailed out.",
		}),
		ProviderRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_metadata_provider_requests_total",
			Help: "Requests sent to the movie metadata provider.",
		}),
		ProviderFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_metadata_provider_failures_total",
			Help: "Failed requests to the movie metadata provider.",
		}),
	}
}
