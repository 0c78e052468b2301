// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/diffeo/go-geoserver/restdata"
)

var (
	mosaicErrors = notFoundTable("Coverage store doesn't exist")

	granuleErrors = notFoundTable("Granule doesn't exist")
)

// ImageMosaicClient manages the granules of image mosaic coverage
// stores.
type ImageMosaicClient struct {
	conn *connection
}

// Granules returns the granule index of a mosaic coverage, as a
// GeoJSON feature collection.
func (m *ImageMosaicClient) Granules(ctx context.Context, workspace, store, coverage string) (restdata.Object, error) {
	var granules restdata.Object
	err := m.conn.getFrom(ctx, "workspaces/{workspace}/coveragestores/{store}/coverages/{coverage}/index/granules.json", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"coverage":  coverage,
	}, &granules)
	if err != nil {
		return nil, err
	}
	return granules, nil
}

func (m *ImageMosaicClient) external(ctx context.Context, workspace, store, path string) (string, error) {
	return m.conn.sendText(ctx, http.MethodPost, "workspaces/{workspace}/coveragestores/{store}/external.imagemosaic", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
	}, mosaicErrors, restdata.TextMediaType, path)
}

// HarvestGranules adds every granule found in a directory on the
// server to a mosaic.  Returns the server's response text.
func (m *ImageMosaicClient) HarvestGranules(ctx context.Context, workspace, store, directory string) (string, error) {
	return m.external(ctx, workspace, store, directory)
}

// AddGranuleByServerFile adds one file on the server to a mosaic.
// Returns the server's response text.
func (m *ImageMosaicClient) AddGranuleByServerFile(ctx context.Context, workspace, store, file string) (string, error) {
	return m.external(ctx, workspace, store, file)
}

// DeleteSingleGranule removes the granule at location from a mosaic
// coverage's index.
func (m *ImageMosaicClient) DeleteSingleGranule(ctx context.Context, workspace, store, coverage, location string) error {
	return m.conn.deleteAt(ctx, "workspaces/{workspace}/coveragestores/{store}/coverages/{coverage}/index/granules.xml{?filter}", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"coverage":  coverage,
		"filter":    "location=" + cqlString(location),
	}, granuleErrors)
}

// cqlString quotes s as a CQL string literal.
func cqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
