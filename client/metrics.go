package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopstyle_client",
			Name:      "requests_total",
			Help:      "API calls issued through the client, by resource and outcome.",
		},
		[]string{"resource", "outcome"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopstyle_client",
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups, by result.",
		},
		[]string{"result"},
	)
)

const (
	outcomeOK             = "ok"
	outcomeHTTPError      = "http_error"
	outcomeTransportError = "transport_error"
)
