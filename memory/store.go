// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"fmt"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

// Store kinds, named as in URL paths.
const (
	DataStores     = "datastores"
	CoverageStores = "coveragestores"
	WMSStores      = "wmsstores"
	WMTSStores     = "wmtsstores"
)

// storeKind describes the JSON names used for one kind of store and
// the resources published from it.
type storeKind struct {
	Store    string
	Resource string
	Layer    string
	What     string
}

var storeKinds = map[string]storeKind{
	DataStores:     {Store: "dataStore", Resource: "featureType", Layer: "VECTOR", What: "Data store"},
	CoverageStores: {Store: "coverageStore", Resource: "coverage", Layer: "RASTER", What: "Coverage store"},
	WMSStores:      {Store: "wmsStore", Resource: "wmsLayer", Layer: "WMS", What: "WMS store"},
	WMTSStores:     {Store: "wmtsStore", Resource: "wmtsLayer", Layer: "WMTS", What: "WMTS store"},
}

type store struct {
	name      string
	kind      string
	data      restdata.Object
	resources map[string]*resource
	granules  []string
	size      int64
}

type resource struct {
	name string
	data restdata.Object
}

// lookupStore finds a store.  It expects to run within the global
// lock.
func (c *Catalog) lookupStore(wsName, kind, name string) (*workspace, *store, error) {
	ws, err := c.workspace(wsName)
	if err != nil {
		return nil, nil, err
	}
	k, ok := storeKinds[kind]
	if !ok {
		return nil, nil, ErrNotFound{What: "store kind", Name: kind}
	}
	st, present := ws.stores[kind][name]
	if !present {
		return nil, nil, ErrNotFound{What: k.What, Name: name}
	}
	return ws, st, nil
}

// addStore creates a store.  It expects to run within the global
// lock.
func (c *Catalog) addStore(ws *workspace, kind, name string, data restdata.Object) (*store, error) {
	k, ok := storeKinds[kind]
	if !ok {
		return nil, ErrNotFound{What: "store kind", Name: kind}
	}
	if name == "" {
		return nil, errBadRequest("store name is required")
	}
	if _, present := ws.stores[kind][name]; present {
		return nil, ErrAlreadyExists{What: k.What, Name: name}
	}
	if data == nil {
		data = restdata.Object{}
	}
	data["name"] = name
	data["workspace"] = map[string]interface{}{"name": ws.name}
	if _, set := data["enabled"]; !set {
		data["enabled"] = true
	}
	st := &store{
		name:      name,
		kind:      kind,
		data:      data,
		resources: make(map[string]*resource),
	}
	ws.stores[kind][name] = st
	return st, nil
}

// StoreNames returns the names of the stores of one kind in a
// workspace.
func (c *Catalog) StoreNames(wsName, kind string) (names []string, err error) {
	err = c.do(func() error {
		ws, err := c.workspace(wsName)
		if err != nil {
			return err
		}
		names = sortedKeys(ws.stores[kind])
		return nil
	})
	return
}

// Store returns the representation of one store.
func (c *Catalog) Store(wsName, kind, name string) (result restdata.Object, err error) {
	err = c.do(func() error {
		_, st, err := c.lookupStore(wsName, kind, name)
		if err != nil {
			return err
		}
		result = restdata.Object{storeKinds[kind].Store: map[string]interface{}(copyObject(st.data))}
		return nil
	})
	return
}

// CreateStore creates a store from a creation body, such as
// {"dataStore": {"name": ...}}.  Returns the new store's name.
func (c *Catalog) CreateStore(wsName, kind string, body restdata.Object) (name string, err error) {
	err = c.do(func() error {
		ws, err := c.workspace(wsName)
		if err != nil {
			return err
		}
		k, ok := storeKinds[kind]
		if !ok {
			return ErrNotFound{What: "store kind", Name: kind}
		}
		data, ok := asObject(body.Get(k.Store))
		if !ok {
			return errBadRequest(fmt.Sprintf("body must contain %q", k.Store))
		}
		name, _ = data["name"].(string)
		_, err = c.addStore(ws, kind, name, copyObject(data))
		return err
	})
	return
}

// DeleteStore deletes a store.  Unless recurse is true, nothing may
// be published from it.
func (c *Catalog) DeleteStore(wsName, kind, name string, recurse bool) error {
	return c.do(func() error {
		ws, st, err := c.lookupStore(wsName, kind, name)
		if err != nil {
			return err
		}
		if len(st.resources) > 0 && !recurse {
			// GeoServer reports a store with dependants as 401
			return ErrNotEmpty{What: storeKinds[kind].What, Name: name, Status: http.StatusUnauthorized}
		}
		for resName := range st.resources {
			delete(c.layers, qualify(ws.name, resName))
		}
		delete(ws.stores[kind], name)
		return nil
	})
}

// UploadGeoTIFF creates a coverage store holding an uploaded GeoTIFF
// file and publishes it as a coverage.  If coverageName is empty, the
// coverage takes the store's name.
func (c *Catalog) UploadGeoTIFF(wsName, storeName, coverageName, filename string, size int64) error {
	return c.do(func() error {
		ws, err := c.workspace(wsName)
		if err != nil {
			return err
		}
		if filename == "" {
			filename = storeName
		}
		st, err := c.addStore(ws, CoverageStores, storeName, restdata.Object{
			"type": "GeoTIFF",
			"url":  "file:data/" + ws.name + "/" + storeName + "/" + filename + ".geotiff",
		})
		if err != nil {
			return err
		}
		st.size = size
		if coverageName == "" {
			coverageName = storeName
		}
		_, err = c.addResource(ws, st, restdata.Object{"name": coverageName})
		return err
	})
}

// UploadImageMosaic creates an image mosaic coverage store from an
// uploaded archive, publishing one coverage named after the store.
func (c *Catalog) UploadImageMosaic(wsName, storeName string, size int64) error {
	return c.do(func() error {
		ws, err := c.workspace(wsName)
		if err != nil {
			return err
		}
		st, err := c.addStore(ws, CoverageStores, storeName, restdata.Object{
			"type": "ImageMosaic",
			"url":  "file:data/" + ws.name + "/" + storeName,
		})
		if err != nil {
			return err
		}
		st.size = size
		_, err = c.addResource(ws, st, restdata.Object{"name": storeName})
		return err
	})
}

// UploadSize returns the number of bytes uploaded into a coverage
// store.
func (c *Catalog) UploadSize(wsName, storeName string) (size int64, err error) {
	err = c.do(func() error {
		_, st, err := c.lookupStore(wsName, CoverageStores, storeName)
		if err == nil {
			size = st.size
		}
		return err
	})
	return
}

// AddGranules adds a server-side file or directory to the granules
// of an image mosaic.
func (c *Catalog) AddGranules(wsName, storeName, path string) error {
	return c.do(func() error {
		_, st, err := c.lookupStore(wsName, CoverageStores, storeName)
		if err != nil {
			return err
		}
		if path == "" {
			return errBadRequest("granule path is required")
		}
		st.granules = append(st.granules, path)
		return nil
	})
}

// mosaic finds a coverage of a coverage store.  It expects to run
// within the global lock.
func (c *Catalog) mosaic(wsName, storeName, coverage string) (*store, error) {
	_, st, err := c.lookupStore(wsName, CoverageStores, storeName)
	if err != nil {
		return nil, err
	}
	if _, present := st.resources[coverage]; !present {
		return nil, ErrNotFound{What: "coverage", Name: coverage}
	}
	return st, nil
}

// Granules returns the granule index of a mosaic coverage as a
// GeoJSON feature collection.
func (c *Catalog) Granules(wsName, storeName, coverage string) (result restdata.Object, err error) {
	err = c.do(func() error {
		st, err := c.mosaic(wsName, storeName, coverage)
		if err != nil {
			return err
		}
		features := make([]interface{}, len(st.granules))
		for i, location := range st.granules {
			features[i] = map[string]interface{}{
				"type":       "Feature",
				"id":         fmt.Sprintf("%s.%d", coverage, i+1),
				"properties": map[string]interface{}{"location": location},
			}
		}
		result = restdata.Object{
			"type":     "FeatureCollection",
			"features": features,
		}
		return nil
	})
	return
}

// DeleteGranules removes every granule at location from a mosaic
// coverage.
func (c *Catalog) DeleteGranules(wsName, storeName, coverage, location string) error {
	return c.do(func() error {
		st, err := c.mosaic(wsName, storeName, coverage)
		if err != nil {
			return err
		}
		kept := st.granules[:0]
		for _, granule := range st.granules {
			if granule != location {
				kept = append(kept, granule)
			}
		}
		if len(kept) == len(st.granules) {
			return ErrNotFound{What: "granule", Name: location}
		}
		st.granules = kept
		return nil
	})
}
