// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package exporter

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InstrumentTransport wraps an HTTP transport so that every request
// through it is counted and timed, by method and status code.  The
// metrics are registered with reg.  If next is nil, uses
// http.DefaultTransport.
func InstrumentTransport(next http.RoundTripper, reg prometheus.Registerer) (http.RoundTripper, error) {
	if next == nil {
		next = http.DefaultTransport
	}
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "client_requests_total",
			Help:      "REST requests sent to GeoServer",
		},
		[]string{"code", "method"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "client_request_duration_seconds",
			Help:      "Latency of REST requests sent to GeoServer",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "client_requests_in_flight",
		Help:      "REST requests to GeoServer awaiting a response",
	})
	for _, c := range []prometheus.Collector{requests, duration, inFlight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return promhttp.InstrumentRoundTripperInFlight(inFlight,
		promhttp.InstrumentRoundTripperCounter(requests,
			promhttp.InstrumentRoundTripperDuration(duration, next))), nil
}
