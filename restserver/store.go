// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/diffeo/go-geoserver/memory"
	"github.com/diffeo/go-geoserver/restdata"
)

// storeLists holds the outer and inner names of each kind of store
// listing.
var storeLists = map[string][2]string{
	memory.DataStores:     {"dataStores", "dataStore"},
	memory.CoverageStores: {"coverageStores", "coverageStore"},
	memory.WMSStores:      {"wmsStores", "wmsStore"},
	memory.WMTSStores:     {"wmtsStores", "wmtsStore"},
}

// errLengthRequired is returned for an upload without a declared
// length.
type errLengthRequired struct{}

func (e errLengthRequired) Error() string {
	return "Content-Length is required"
}

func (e errLengthRequired) HTTPStatus() int {
	return http.StatusLengthRequired
}

// upload returns an uploaded file, which must be exactly as long as
// declared.
func upload(ctx *context, in interface{}) ([]byte, error) {
	b, err := bytesBody(in)
	if err != nil {
		return nil, err
	}
	if ctx.ContentLength < 0 {
		return nil, errLengthRequired{}
	}
	if ctx.ContentLength != int64(len(b)) {
		return nil, restdata.ErrBadRequest{Err: fmt.Errorf("declared %d bytes, got %d", ctx.ContentLength, len(b))}
	}
	return b, nil
}

// StoreList lists the stores of one kind in a workspace.
func (api *restAPI) StoreList(ctx *context) (interface{}, error) {
	names, err := api.Catalog.StoreNames(ctx.Workspace, ctx.Kind)
	if err != nil {
		return nil, err
	}
	list := storeLists[ctx.Kind]
	return api.linkList(list[0], list[1], "store", "store", names, "workspace", ctx.Workspace, "kind", ctx.Kind)
}

// StorePost creates a store.
func (api *restAPI) StorePost(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	name, err := api.Catalog.CreateStore(ctx.Workspace, ctx.Kind, body)
	if err != nil {
		return nil, err
	}
	return api.created(name, "store", "workspace", ctx.Workspace, "kind", ctx.Kind, "store", name)
}

// StoreGet retrieves a store.
func (api *restAPI) StoreGet(ctx *context) (interface{}, error) {
	return api.Catalog.Store(ctx.Workspace, ctx.Kind, ctx.Store)
}

// StoreDelete deletes a store.
func (api *restAPI) StoreDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.DeleteStore(ctx.Workspace, ctx.Kind, ctx.Store, ctx.BoolParam("recurse", false))
}

// GeoTIFFPut creates a coverage store from an uploaded GeoTIFF.
func (api *restAPI) GeoTIFFPut(ctx *context, in interface{}) (interface{}, error) {
	b, err := upload(ctx, in)
	if err != nil {
		return nil, err
	}
	err = api.Catalog.UploadGeoTIFF(ctx.Workspace, ctx.Store,
		ctx.QueryParams.Get("coverageName"), ctx.QueryParams.Get("filename"), int64(len(b)))
	if err != nil {
		return nil, err
	}
	return api.created(ctx.Store, "store", "workspace", ctx.Workspace, "kind", memory.CoverageStores, "store", ctx.Store)
}

// ImageMosaicPut creates a coverage store from an uploaded mosaic
// archive.
func (api *restAPI) ImageMosaicPut(ctx *context, in interface{}) (interface{}, error) {
	b, err := upload(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := api.Catalog.UploadImageMosaic(ctx.Workspace, ctx.Store, int64(len(b))); err != nil {
		return nil, err
	}
	return api.created(ctx.Store, "store", "workspace", ctx.Workspace, "kind", memory.CoverageStores, "store", ctx.Store)
}

// ExternalPost adds granules to a mosaic from a path on the server.
func (api *restAPI) ExternalPost(ctx *context, in interface{}) (interface{}, error) {
	b, err := bytesBody(in)
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(string(b))
	if err := api.Catalog.AddGranules(ctx.Workspace, ctx.Store, path); err != nil {
		return nil, err
	}
	return textResponse(path), nil
}

// GranulesGet retrieves the granule index of a mosaic coverage.
func (api *restAPI) GranulesGet(ctx *context) (interface{}, error) {
	return api.Catalog.Granules(ctx.Workspace, ctx.Store, ctx.Name)
}

// GranulesDelete removes granules matching a filter of the form
// location='...', with quotes inside the literal doubled.
func (api *restAPI) GranulesDelete(ctx *context) (interface{}, error) {
	filter := ctx.QueryParams.Get("filter")
	if !strings.HasPrefix(filter, "location='") || !strings.HasSuffix(filter, "'") || len(filter) < len("location=''") {
		return nil, restdata.ErrBadRequest{Err: errors.New("unsupported granule filter " + filter)}
	}
	location := strings.ReplaceAll(filter[len("location='"):len(filter)-1], "''", "'")
	return nil, api.Catalog.DeleteGranules(ctx.Workspace, ctx.Store, ctx.Name, location)
}

// DefaultFeatureTypePost publishes a feature type from a workspace's
// default data store.
func (api *restAPI) DefaultFeatureTypePost(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	name, err := api.Catalog.PublishResource(ctx.Workspace, memory.DataStores, "", body)
	if err != nil {
		return nil, err
	}
	return responseCreated{Name: name}, nil
}

// ResourcePost publishes a resource from a store.
func (api *restAPI) ResourcePost(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	name, err := api.Catalog.PublishResource(ctx.Workspace, ctx.Kind, ctx.Store, body)
	if err != nil {
		return nil, err
	}
	return api.created(name, "resource",
		"workspace", ctx.Workspace,
		"kind", ctx.Kind,
		"store", ctx.Store,
		"resources", resourcesOf[ctx.Kind],
		"name", name)
}

// ResourceGet retrieves a published resource.
func (api *restAPI) ResourceGet(ctx *context) (interface{}, error) {
	return api.Catalog.Resource(ctx.Workspace, ctx.Kind, ctx.Store, ctx.Name)
}

// ResourcePut updates a published resource.
func (api *restAPI) ResourcePut(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	return nil, api.Catalog.UpdateResource(ctx.Workspace, ctx.Kind, ctx.Store, ctx.Name, body)
}

// ResourceDelete deletes a published resource.
func (api *restAPI) ResourceDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.DeleteResource(ctx.Workspace, ctx.Kind, ctx.Store, ctx.Name, ctx.BoolParam("recurse", false))
}
