// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/diffeo/go-geoserver/restclient"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter serves the metrics in gatherer at /metrics, and a health
// check at /healthz that passes only while the GeoServer answers.
func newRouter(gs *restclient.GeoServer, gatherer prometheus.Gatherer) http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.HandleFunc("/healthz", func(resp http.ResponseWriter, req *http.Request) {
		if !gs.About.Exists(req.Context()) {
			http.Error(resp, "GeoServer is not answering\n", http.StatusServiceUnavailable)
			return
		}
		_, _ = resp.Write([]byte("ok\n"))
	}).Methods(http.MethodGet)
	return r
}
