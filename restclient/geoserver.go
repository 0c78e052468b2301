// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a typed client for the administrative
// REST API of a GeoServer instance.  Call New() with the URL of the
// REST root and the credentials of an administrator; for instance,
//
//     gs := restclient.New("http://localhost:8080/geoserver/rest/", "admin", "geoserver")
//     names, err := gs.Workspaces.GetAll(ctx)
//
// Each resource family (workspaces, data stores, layers, ...) has its
// own client, reached through a field of GeoServer.  All of them share
// one immutable connection and keep no other state, so a GeoServer is
// safe for concurrent use.
//
// Errors
//
// Every failing call returns a *ResponseError whose Kind says what
// went wrong.  Looking up a single item that does not exist is not an
// error: the lookup returns a nil result.  Because GeoServer reports
// missing items inconsistently, a failed lookup is followed by a
// request for the server's version; only if that also fails is the
// lookup reported as an error.
//
// Nothing is retried.  Timeouts and cancellation come from the
// context passed to each call and the configured HTTP client.
package restclient

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Config describes how to reach a GeoServer.
type Config struct {
	// URL is the REST root, such as
	// "http://localhost:8080/geoserver/rest".  A trailing slash
	// is added if missing.
	URL string

	// User and Password are sent with HTTP Basic authentication
	// on every request.
	User     string
	Password string

	// HTTPClient performs requests.  If nil, uses
	// http.DefaultClient.
	HTTPClient Doer

	// Logger receives a debug entry for every request.  If nil,
	// uses the logrus standard logger.
	Logger logrus.FieldLogger

	// Fs is the filesystem uploads are read from.  If nil, uses
	// the operating system's filesystem.
	Fs afero.Fs
}

// GeoServer holds one client per resource family.
type GeoServer struct {
	About        *AboutClient
	Workspaces   *WorkspaceClient
	Namespaces   *NamespaceClient
	DataStores   *DataStoreClient
	Layers       *LayerClient
	Styles       *StyleClient
	ImageMosaics *ImageMosaicClient
	Security     *SecurityClient
	Settings     *SettingsClient
	ResetReload  *ResetReloadClient

	conn *connection
}

// New creates a client for the GeoServer REST root at url.  It does
// not contact the server.
func New(url, user, password string) *GeoServer {
	return NewFromConfig(Config{URL: url, User: user, Password: password})
}

// NewFromConfig creates a client from a complete configuration.  It
// does not contact the server.
func NewFromConfig(cfg Config) *GeoServer {
	conn := newConnection(cfg)
	gs := &GeoServer{
		About:        &AboutClient{conn: conn},
		Workspaces:   &WorkspaceClient{conn: conn},
		Namespaces:   &NamespaceClient{conn: conn},
		DataStores:   &DataStoreClient{conn: conn},
		Layers:       &LayerClient{conn: conn},
		ImageMosaics: &ImageMosaicClient{conn: conn},
		Security:     &SecurityClient{conn: conn},
		Settings:     &SettingsClient{conn: conn},
		ResetReload:  &ResetReloadClient{conn: conn},
		conn:         conn,
	}
	gs.Styles = &StyleClient{conn: conn, workspaces: gs.Workspaces}
	return gs
}

// URL returns the normalized REST root, ending in "/".
func (gs *GeoServer) URL() string {
	return gs.conn.baseURL
}
