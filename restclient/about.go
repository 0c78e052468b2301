// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

// versionPath is always served by a running GeoServer, so it doubles
// as the existence probe.
const versionPath = "about/version.json"

// AboutClient reports on the server itself.
type AboutClient struct {
	conn *connection
}

// Version returns the versions of the server's components.
func (a *AboutClient) Version(ctx context.Context) (*restdata.VersionInfo, error) {
	info := &restdata.VersionInfo{}
	if err := a.conn.getFrom(ctx, versionPath, nil, info); err != nil {
		return nil, err
	}
	return info, nil
}

// Exists says whether the server is reachable and answering.  It
// never fails: any error is reported as false.
func (a *AboutClient) Exists(ctx context.Context) bool {
	return a.conn.probe(ctx)
}

// probe requests the version document and says whether a non-empty
// answer came back.
func (c *connection) probe(ctx context.Context) bool {
	url, err := c.url(versionPath, nil)
	if err != nil {
		return false
	}
	var info restdata.Object
	if err := c.do(ctx, http.MethodGet, url, nil, &info); err != nil {
		return false
	}
	return len(info) > 0
}
