// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

var (
	storeCreateErrors = conflictTable("Unable to create the store as it already exists")

	dataStoreDeleteErrors = statusTable{
		http.StatusUnauthorized: {KindNotEmpty, "Deletion failed. There might be dependant layers to this store."},
		http.StatusNotFound:     {KindNotFound, "Data store doesn't exist"},
	}

	coverageStoreDeleteErrors = statusTable{
		http.StatusUnauthorized: {KindNotEmpty, "Deletion failed. There might be dependant objects to this store."},
		http.StatusNotFound:     {KindNotFound, "Coverage store doesn't exist"},
	}
)

// Store kinds, as they appear in URL paths and collection listings.
const (
	dataStores     = "datastores"
	coverageStores = "coveragestores"
	wmsStores      = "wmsstores"
	wmtsStores     = "wmtsstores"
)

// storeLists maps a store kind to the outer and inner names of its
// collection listing.
var storeLists = map[string][2]string{
	dataStores:     {"dataStores", "dataStore"},
	coverageStores: {"coverageStores", "coverageStore"},
	wmsStores:      {"wmsStores", "wmsStore"},
	wmtsStores:     {"wmtsStores", "wmtsStore"},
}

// DataStoreClient manages vector data stores, raster coverage stores,
// and cascaded WMS and WMTS stores.
type DataStoreClient struct {
	conn *connection
}

func (d *DataStoreClient) list(ctx context.Context, workspace, kind string) ([]restdata.NamedLink, error) {
	names := storeLists[kind]
	return d.conn.getLinks(ctx, "workspaces/{workspace}/{kind}.json", map[string]interface{}{
		"workspace": workspace,
		"kind":      kind,
	}, names[0], names[1])
}

func (d *DataStoreClient) get(ctx context.Context, workspace, kind, name string) (restdata.Object, error) {
	return d.conn.getObject(ctx, "workspaces/{workspace}/{kind}/{store}.json", map[string]interface{}{
		"workspace": workspace,
		"kind":      kind,
		"store":     name,
	})
}

// DataStores lists the vector data stores in a workspace.
func (d *DataStoreClient) DataStores(ctx context.Context, workspace string) ([]restdata.NamedLink, error) {
	return d.list(ctx, workspace, dataStores)
}

// CoverageStores lists the raster coverage stores in a workspace.
func (d *DataStoreClient) CoverageStores(ctx context.Context, workspace string) ([]restdata.NamedLink, error) {
	return d.list(ctx, workspace, coverageStores)
}

// WMSStores lists the cascaded WMS stores in a workspace.
func (d *DataStoreClient) WMSStores(ctx context.Context, workspace string) ([]restdata.NamedLink, error) {
	return d.list(ctx, workspace, wmsStores)
}

// WMTSStores lists the cascaded WMTS stores in a workspace.
func (d *DataStoreClient) WMTSStores(ctx context.Context, workspace string) ([]restdata.NamedLink, error) {
	return d.list(ctx, workspace, wmtsStores)
}

// DataStore retrieves a vector data store, or nil if it does not exist.
func (d *DataStoreClient) DataStore(ctx context.Context, workspace, name string) (restdata.Object, error) {
	return d.get(ctx, workspace, dataStores, name)
}

// CoverageStore retrieves a coverage store, or nil if it does not exist.
func (d *DataStoreClient) CoverageStore(ctx context.Context, workspace, name string) (restdata.Object, error) {
	return d.get(ctx, workspace, coverageStores, name)
}

// WMSStore retrieves a cascaded WMS store, or nil if it does not exist.
func (d *DataStoreClient) WMSStore(ctx context.Context, workspace, name string) (restdata.Object, error) {
	return d.get(ctx, workspace, wmsStores, name)
}

// WMTSStore retrieves a cascaded WMTS store, or nil if it does not exist.
func (d *DataStoreClient) WMTSStore(ctx context.Context, workspace, name string) (restdata.Object, error) {
	return d.get(ctx, workspace, wmtsStores, name)
}

// CreateGeoTIFFFromFile uploads a local GeoTIFF file into a new
// coverage store, publishing it as a coverage named layerName whose
// file on the server is named layerTitle.  Returns the server's
// response text.
func (d *DataStoreClient) CreateGeoTIFFFromFile(ctx context.Context, workspace, store, layerName, layerTitle, path string) (string, error) {
	return d.conn.sendFile(ctx, http.MethodPut,
		"workspaces/{workspace}/coveragestores/{store}/file.geotiff{?filename,coverageName}",
		map[string]interface{}{
			"workspace":    workspace,
			"store":        store,
			"filename":     layerTitle,
			"coverageName": layerName,
		}, storeCreateErrors, restdata.TIFFMediaType, path)
}

// CreateImageMosaicStore uploads a local zip archive describing an
// image mosaic into a new coverage store.  Returns the server's
// response text.
func (d *DataStoreClient) CreateImageMosaicStore(ctx context.Context, workspace, store, zipPath string) (string, error) {
	return d.conn.sendFile(ctx, http.MethodPut,
		"workspaces/{workspace}/coveragestores/{store}/file.imagemosaic",
		map[string]interface{}{
			"workspace": workspace,
			"store":     store,
		}, storeCreateErrors, restdata.ZipMediaType, zipPath)
}

func (d *DataStoreClient) createDataStore(ctx context.Context, workspace string, body restdata.DataStoreBody) (string, error) {
	return d.conn.create(ctx, "workspaces/{workspace}/datastores", map[string]interface{}{
		"workspace": workspace,
	}, storeCreateErrors, body)
}

// CreatePostGISStore creates a PostGIS data store.
func (d *DataStoreClient) CreatePostGISStore(ctx context.Context, store restdata.PostGISStore) (string, error) {
	return d.createDataStore(ctx, store.Workspace, store.Body())
}

// CreateWFSStore creates a data store cascading a remote WFS.
func (d *DataStoreClient) CreateWFSStore(ctx context.Context, store restdata.WFSStore) (string, error) {
	return d.createDataStore(ctx, store.Workspace, store.Body())
}

// CreateGeoPackageStore creates a data store backed by a GeoPackage
// file on the server.
func (d *DataStoreClient) CreateGeoPackageStore(ctx context.Context, store restdata.GeoPackageStore) (string, error) {
	return d.createDataStore(ctx, store.Workspace, store.Body())
}

// CreateWMSStore creates a store cascading a remote WMS.
func (d *DataStoreClient) CreateWMSStore(ctx context.Context, workspace, name, capabilitiesURL string) (string, error) {
	return d.conn.create(ctx, "workspaces/{workspace}/wmsstores", map[string]interface{}{
		"workspace": workspace,
	}, storeCreateErrors, restdata.NewWMSStoreBody(name, capabilitiesURL))
}

// CreateWMTSStore creates a store cascading a remote WMTS.
func (d *DataStoreClient) CreateWMTSStore(ctx context.Context, workspace, name, capabilitiesURL string) (string, error) {
	return d.conn.create(ctx, "workspaces/{workspace}/wmtsstores", map[string]interface{}{
		"workspace": workspace,
	}, storeCreateErrors, restdata.NewWMTSStoreBody(name, capabilitiesURL))
}

// DeleteDataStore deletes a vector data store.  If recurse is true,
// the layers published from it are deleted too.
func (d *DataStoreClient) DeleteDataStore(ctx context.Context, workspace, name string, recurse bool) error {
	return d.conn.deleteAt(ctx, "workspaces/{workspace}/datastores/{store}{?recurse}", map[string]interface{}{
		"workspace": workspace,
		"store":     name,
		"recurse":   recurse,
	}, dataStoreDeleteErrors)
}

// DeleteCoverageStore deletes a coverage store.  If recurse is true,
// the coverages and layers published from it are deleted too.
func (d *DataStoreClient) DeleteCoverageStore(ctx context.Context, workspace, name string, recurse bool) error {
	return d.conn.deleteAt(ctx, "workspaces/{workspace}/coveragestores/{store}{?recurse}", map[string]interface{}{
		"workspace": workspace,
		"store":     name,
		"recurse":   recurse,
	}, coverageStoreDeleteErrors)
}
