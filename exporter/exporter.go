// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package exporter publishes the state of a GeoServer as Prometheus
// metrics.
//
// An Observer periodically asks the server for its version and
// counts its workspaces and layers.  InstrumentTransport wraps the
// client's HTTP transport so that every REST call is counted as well.
package exporter

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-geoserver/restclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Namespace prefixes every metric name.
const Namespace = "geoserver"

// DefaultInterval is the time between observations if none is
// configured.
const DefaultInterval = 30 * time.Second

// Observer periodically records the state of one GeoServer.
type Observer struct {
	// GeoServer is the server being observed.
	GeoServer *restclient.GeoServer

	// Clock defines a time source for the observer.  If nil,
	// uses the system clock.
	Clock clock.Clock

	// Interval is the time between observations.  If zero, uses
	// DefaultInterval.
	Interval time.Duration

	// Logger receives failures to observe.  If nil, uses the
	// logrus standard logger.
	Logger logrus.FieldLogger

	up         prometheus.Gauge
	workspaces prometheus.Gauge
	layers     prometheus.Gauge
	version    *prometheus.GaugeVec
	lastScrape prometheus.Gauge

	// observed, if non-nil, is called after every observation.
	observed func()
}

// NewObserver creates an observer for a GeoServer and registers its
// metrics with reg.
func NewObserver(gs *restclient.GeoServer, reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		GeoServer: gs,
		up: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "up",
			Help:      "Whether the GeoServer REST API answered the last observation",
		}),
		workspaces: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "workspaces",
			Help:      "Number of workspaces",
		}),
		layers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "layers",
			Help:      "Number of published layers",
		}),
		version: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "version_info",
				Help:      "Version of each GeoServer component; always 1",
			},
			[]string{
				"component",
				"version",
			},
		),
		lastScrape: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_observation_timestamp_seconds",
			Help:      "Time of the last observation",
		}),
	}
	for _, c := range []prometheus.Collector{o.up, o.workspaces, o.layers, o.version, o.lastScrape} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Observer) setDefaults() {
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Interval == 0 {
		o.Interval = DefaultInterval
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
}

// Observe records the state of the server once.  A server that
// cannot be reached is recorded as down, and its counts are left
// alone.
func (o *Observer) Observe(ctx context.Context) {
	o.setDefaults()
	defer func() {
		o.lastScrape.Set(float64(o.Clock.Now().UnixNano()) / 1e9)
		if o.observed != nil {
			o.observed()
		}
	}()

	info, err := o.GeoServer.About.Version(ctx)
	if err != nil {
		o.up.Set(0)
		o.Logger.WithFields(logrus.Fields{
			"url": o.GeoServer.URL(),
			"err": err,
		}).Warn("GeoServer is not answering")
		return
	}
	o.up.Set(1)
	o.version.Reset()
	for _, r := range info.About.Resource {
		if r.Version != "" {
			o.version.With(prometheus.Labels{
				"component": r.Name,
				"version":   r.Version,
			}).Set(1)
		}
	}

	workspaces, err := o.GeoServer.Workspaces.GetAll(ctx)
	if err != nil {
		o.Logger.WithField("err", err).Warn("Could not list workspaces")
	} else {
		o.workspaces.Set(float64(len(workspaces)))
	}

	layers, err := o.GeoServer.Layers.GetAll(ctx)
	if err != nil {
		o.Logger.WithField("err", err).Warn("Could not list layers")
	} else {
		o.layers.Set(float64(len(layers)))
	}
}

// Run observes the server immediately and then once per interval,
// until ctx is done.
func (o *Observer) Run(ctx context.Context) {
	o.setDefaults()
	ticker := o.Clock.Ticker(o.Interval)
	defer ticker.Stop()
	o.Observe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.Observe(ctx)
		}
	}
}
