// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-geoserver/restdata"
)

var (
	layerErrors = notFoundTable("Layer doesn't exist")

	featureTypeErrors = notFoundTable("Feature type doesn't exist")

	coverageErrors = notFoundTable("Coverage doesn't exist")

	publishErrors = conflictTable("Unable to publish the layer as it already exists")
)

// LayerClient manages published layers and the resources (feature
// types, coverages, cascaded layers) behind them.  Layers are named
// by their qualified name, "workspace:layer".
type LayerClient struct {
	conn *connection
}

// Get retrieves a layer, or nil if it does not exist.
func (l *LayerClient) Get(ctx context.Context, qualifiedName string) (restdata.Object, error) {
	return l.conn.getObject(ctx, "layers/{+layer}.json", map[string]interface{}{
		"layer": qualifiedName,
	})
}

// GetAll lists every layer on the server.
func (l *LayerClient) GetAll(ctx context.Context) ([]restdata.NamedLink, error) {
	return l.conn.getLinks(ctx, "layers.json", nil, "layers", "layer")
}

// InWorkspace lists the layers of one workspace.
func (l *LayerClient) InWorkspace(ctx context.Context, workspace string) ([]restdata.NamedLink, error) {
	return l.conn.getLinks(ctx, "workspaces/{workspace}/layers.json", map[string]interface{}{
		"workspace": workspace,
	}, "layers", "layer")
}

// ModifyAttribution changes the attribution title and link of a
// layer, leaving the rest of its configuration alone.
func (l *LayerClient) ModifyAttribution(ctx context.Context, qualifiedName, title, href string) error {
	vars := map[string]interface{}{"layer": qualifiedName}
	var layer restdata.Object
	err := layerErrors.classify(l.conn.getFrom(ctx, "layers/{+layer}.json", vars, &layer))
	if err != nil {
		return err
	}
	if layer == nil {
		layer = restdata.Object{}
	}
	layer.Set(title, "layer", "attribution", "title")
	layer.Set(href, "layer", "attribution", "href")
	return l.conn.putTo(ctx, "layers/{+layer}.json", vars, layerErrors, layer, nil)
}

// Delete deletes a layer.  If recurse is true, the resource behind
// it is deleted too.
func (l *LayerClient) Delete(ctx context.Context, qualifiedName string, recurse bool) error {
	return l.conn.deleteAt(ctx, "layers/{+layer}{?recurse}", map[string]interface{}{
		"layer":   qualifiedName,
		"recurse": recurse,
	}, layerErrors)
}

// FeatureType retrieves a feature type of a data store, or nil if it
// does not exist.
func (l *LayerClient) FeatureType(ctx context.Context, workspace, store, name string) (restdata.Object, error) {
	return l.conn.getObject(ctx, "workspaces/{workspace}/datastores/{store}/featuretypes/{name}.json", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"name":      name,
	})
}

// Coverage retrieves a coverage of a coverage store, or nil if it
// does not exist.
func (l *LayerClient) Coverage(ctx context.Context, workspace, store, name string) (restdata.Object, error) {
	return l.conn.getObject(ctx, "workspaces/{workspace}/coveragestores/{store}/coverages/{name}.json", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"name":      name,
	})
}

// WMSLayer retrieves a cascaded WMS layer, or nil if it does not exist.
func (l *LayerClient) WMSLayer(ctx context.Context, workspace, store, name string) (restdata.Object, error) {
	return l.conn.getObject(ctx, "workspaces/{workspace}/wmsstores/{store}/wmslayers/{name}.json", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"name":      name,
	})
}

// WMTSLayer retrieves a cascaded WMTS layer, or nil if it does not
// exist.
func (l *LayerClient) WMTSLayer(ctx context.Context, workspace, store, name string) (restdata.Object, error) {
	return l.conn.getObject(ctx, "workspaces/{workspace}/wmtsstores/{store}/layers/{name}.json", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"name":      name,
	})
}

// PublishFeatureTypeDefaultDataStore publishes a feature type from
// the default data store of a workspace.
func (l *LayerClient) PublishFeatureTypeDefaultDataStore(ctx context.Context, workspace string, ft restdata.Resource) (string, error) {
	return l.conn.create(ctx, "workspaces/{workspace}/featuretypes", map[string]interface{}{
		"workspace": workspace,
	}, publishErrors, restdata.FeatureTypeBody{FeatureType: ft.WithDefaults()})
}

// PublishFeatureType publishes a feature type from a data store.
func (l *LayerClient) PublishFeatureType(ctx context.Context, workspace, store string, ft restdata.Resource) (string, error) {
	return l.conn.create(ctx, "workspaces/{workspace}/datastores/{store}/featuretypes", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
	}, publishErrors, restdata.FeatureTypeBody{FeatureType: ft.WithDefaults()})
}

// PublishWMSLayer publishes a layer of a cascaded WMS store.
func (l *LayerClient) PublishWMSLayer(ctx context.Context, workspace, store string, layer restdata.Resource) (string, error) {
	return l.conn.create(ctx, "workspaces/{workspace}/wmsstores/{store}/wmslayers", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
	}, publishErrors, restdata.WMSLayerBody{WMSLayer: layer.WithDefaults()})
}

// PublishWMTSLayer publishes a layer of a cascaded WMTS store.
func (l *LayerClient) PublishWMTSLayer(ctx context.Context, workspace, store string, layer restdata.Resource) (string, error) {
	return l.conn.create(ctx, "workspaces/{workspace}/wmtsstores/{store}/layers", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
	}, publishErrors, restdata.WMTSLayerBody{WMTSLayer: layer.WithDefaults()})
}

// PublishDBRaster publishes a coverage from a coverage store backed
// by a database raster.
func (l *LayerClient) PublishDBRaster(ctx context.Context, workspace, store string, coverage restdata.Resource) (string, error) {
	return l.conn.create(ctx, "workspaces/{workspace}/coveragestores/{store}/coverages", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
	}, publishErrors, restdata.CoverageBody{Coverage: coverage.WithDefaults()})
}

// DeleteFeatureType deletes a feature type.  If recurse is true, the
// layers published from it are deleted too.
func (l *LayerClient) DeleteFeatureType(ctx context.Context, workspace, store, name string, recurse bool) error {
	return l.conn.deleteAt(ctx, "workspaces/{workspace}/datastores/{store}/featuretypes/{name}{?recurse}", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"name":      name,
		"recurse":   recurse,
	}, featureTypeErrors)
}

// EnableTimeCoverage turns on the time dimension of a coverage.
func (l *LayerClient) EnableTimeCoverage(ctx context.Context, workspace, store, coverage string, dim restdata.TimeDimension) error {
	return l.conn.putTo(ctx, "workspaces/{workspace}/coveragestores/{store}/coverages/{name}.json", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"name":      coverage,
	}, coverageErrors, dim.CoverageTimeBody(), nil)
}

// EnableTimeFeatureType turns on the time dimension of a feature
// type, using dim.Attribute as the time attribute.
func (l *LayerClient) EnableTimeFeatureType(ctx context.Context, workspace, store, featureType string, dim restdata.TimeDimension) error {
	return l.conn.putTo(ctx, "workspaces/{workspace}/datastores/{store}/featuretypes/{name}.json", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"name":      featureType,
	}, featureTypeErrors, dim.FeatureTypeTimeBody(), nil)
}

// RenameCoverageBands sets the names of the bands of a coverage, in
// order.
func (l *LayerClient) RenameCoverageBands(ctx context.Context, workspace, store, coverage string, bands []string) error {
	return l.conn.putTo(ctx, "workspaces/{workspace}/coveragestores/{store}/coverages/{name}.json", map[string]interface{}{
		"workspace": workspace,
		"store":     store,
		"name":      coverage,
	}, coverageErrors, restdata.CoverageBandsBody(bands), nil)
}
