// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains various HTTP-related helpers.

import (
	"fmt"
	"net/url"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

type urlBuilder struct {
	Router *mux.Router
	Params []string
	Error  error
}

func buildURLs(router *mux.Router, params ...string) *urlBuilder {
	return &urlBuilder{Router: router, Params: params}
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

// URL fills out with the path of a route, plus suffix.
func (u *urlBuilder) URL(out *string, route, suffix string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		url, u.Error = r.URL(u.Params...)
	}
	if u.Error == nil {
		*out = url.String() + suffix
	}
	return u
}

// linkList builds a collection listing, such as
// {"workspaces": {"workspace": [{"name": ..., "href": ...}]}}.  Each
// href is the JSON representation of route, with the variable key
// set to the item's name and the remaining variables from params.  An
// empty collection is an empty string.
func (api *restAPI) linkList(outer, inner, route, key string, names []string, params ...string) (interface{}, error) {
	if len(names) == 0 {
		return map[string]interface{}{outer: ""}, nil
	}
	links := make([]restdata.NamedLink, len(names))
	for i, name := range names {
		links[i].Name = name
		vars := append(append([]string{}, params...), key, name)
		err := buildURLs(api.Router, vars...).URL(&links[i].Href, route, ".json").Error
		if err != nil {
			return nil, err
		}
	}
	return map[string]interface{}{
		outer: map[string]interface{}{inner: links},
	}, nil
}

// created builds the response to a creation request for the item
// that route names.
func (api *restAPI) created(name, route string, params ...string) (interface{}, error) {
	result := responseCreated{Name: name}
	err := buildURLs(api.Router, params...).URL(&result.Location, route, "").Error
	return result, err
}
