// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/diffeo/go-geoserver/memory"
	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

// errUnmarshal is returned if a handler function is passed a body of
// the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// resourcesOf maps each store kind to the path segment of the
// resources published from it.
var resourcesOf = map[string]string{
	memory.DataStores:     "featuretypes",
	memory.CoverageStores: "coverages",
	memory.WMSStores:      "wmslayers",
	memory.WMTSStores:     "layers",
}

// context holds all of the information that can be extracted from
// URL parameters.
type context struct {
	Workspace   string
	Kind        string
	Store       string
	Name        string
	Layer       string
	Style       string
	User        string
	Role        string
	QueryParams url.Values

	// ContentLength is the declared length of the request body,
	// or -1 if unknown.
	ContentLength int64
}

func (api *restAPI) Context(req *http.Request) (ctx *context, err error) {
	vars := mux.Vars(req)
	ctx = &context{
		Workspace:   vars["workspace"],
		Kind:        vars["kind"],
		Store:       vars["store"],
		Name:        vars["name"],
		Layer:       vars["layer"],
		Style:       vars["style"],
		User:        vars["user"],
		Role:        vars["role"],
		QueryParams: req.URL.Query(),

		ContentLength: req.ContentLength,
	}
	if resources, present := vars["resources"]; present && resourcesOf[ctx.Kind] != resources {
		err = memory.ErrNotFound{What: "resource type", Name: ctx.Kind + "/" + resources}
	}
	return
}

// BoolParam looks at ctx.QueryParams for a parameter named name.  If
// it has a normally-truthy value (1, on, false, no, ...) then return
// that value.  Otherwise (empty string, foo, ...) return def.
func (ctx *context) BoolParam(name string, def bool) bool {
	switch strings.ToLower(ctx.QueryParams.Get(name)) {
	case "0", "f", "n", "false", "off", "no":
		return false
	case "1", "t", "y", "true", "on", "yes":
		return true
	default:
		return def
	}
}

// objectBody returns a JSON request body.
func objectBody(in interface{}) (restdata.Object, error) {
	obj, ok := in.(restdata.Object)
	if !ok {
		return nil, errUnmarshal
	}
	return obj, nil
}

// bytesBody returns a non-JSON request body.
func bytesBody(in interface{}) ([]byte, error) {
	b, ok := in.([]byte)
	if !ok {
		return nil, errUnmarshal
	}
	return b, nil
}
