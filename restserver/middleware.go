// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"
	"strings"

	"github.com/diffeo/go-geoserver/memory"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// requireAdmin rejects requests that do not carry the Basic
// credentials of an administrator.
func requireAdmin(catalog *memory.Catalog) negroni.Handler {
	return negroni.HandlerFunc(func(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
		user, password, ok := req.BasicAuth()
		if !ok || !catalog.Authenticate(user, password) {
			rw.Header().Set("WWW-Authenticate", `Basic realm="GeoServer Realm"`)
			writeText(rw, http.StatusUnauthorized, "HTTP Status 401 - Unauthorized")
			return
		}
		next(rw, req)
	})
}

// stripJSON removes a ".json" suffix from the request path, so that
// "workspaces/foo.json" and "workspaces/foo" reach the same route.
func stripJSON(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	req.URL.Path = strings.TrimSuffix(req.URL.Path, ".json")
	if req.URL.RawPath != "" {
		req.URL.RawPath = strings.TrimSuffix(req.URL.RawPath, ".json")
	}
	next(rw, req)
}

// requestLogger logs every request at debug level once it is
// answered.
func requestLogger(log logrus.FieldLogger) negroni.Handler {
	return negroni.HandlerFunc(func(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
		path := req.URL.Path
		next(rw, req)
		fields := logrus.Fields{
			"method": req.Method,
			"path":   path,
		}
		if nrw, ok := rw.(negroni.ResponseWriter); ok {
			fields["status"] = nrw.Status()
		}
		log.WithFields(fields).Debug("GeoServer API request")
	})
}
