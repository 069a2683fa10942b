package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values shared by the client and server metrics.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// CarFetchTotal counts car lookups issued by the client.
	CarFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carview_car_fetch_total",
			Help: "Total number of car telemetry lookups issued by the client.",
		},
		[]string{"outcome"}, // success / not_found / error
	)

	// CarFetchLatency records the round trip of a client lookup.
	CarFetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carview_car_fetch_latency_seconds",
			Help:    "Latency of car telemetry lookups issued by the client.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	// FleetLookupTotal counts lookups answered by the development fleet API.
	FleetLookupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carview_fleet_lookup_total",
			Help: "Total number of car lookups served by the fleet API.",
		},
		[]string{"outcome"},
	)

	// FleetRecords is the number of car records currently served.
	FleetRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "carview_fleet_records",
			Help: "Number of car records loaded into the fleet API.",
		},
	)

	// FixtureReloadTotal counts fixture file reloads by result.
	FixtureReloadTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carview_fleet_fixture_reload_total",
			Help: "Total number of fixture file reloads.",
		},
		[]string{"outcome"},
	)
)

// Registry holds every carview collector and backs the /metrics endpoint.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(CarFetchTotal)
	Registry.MustRegister(CarFetchLatency)
	Registry.MustRegister(FleetLookupTotal)
	Registry.MustRegister(FleetRecords)
	Registry.MustRegister(FixtureReloadTotal)
}
