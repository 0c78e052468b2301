// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory GeoServer catalog.
// There is no persistence and nothing is ever rendered; the catalog
// only tracks the objects the administrative REST API manages, and
// fails the way GeoServer does, down to its choice of HTTP status
// codes.  The entire catalog is behind a single global lock.
//
// This is intended as a test double.  The restserver package serves
// a Catalog over HTTP, so the restclient package can be tested
// end-to-end without a running GeoServer.
package memory

import (
	"sort"
	"sync"

	"github.com/diffeo/go-geoserver/restdata"
)

// Credentials of the administrator a new catalog starts with.  These
// are GeoServer's own defaults.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "geoserver"
	AdminRole            = "ADMIN"
)

// Version is the GeoServer version the catalog reports.
const Version = "2.21.0"

// Catalog is an in-memory GeoServer catalog.
type Catalog struct {
	sem sync.Mutex

	workspaces       map[string]*workspace
	defaultNamespace string
	layers           map[string]*layer
	styles           map[string]*style
	users            map[string]*user
	roles            map[string]map[string]bool
	settings         restdata.Object
	contact          restdata.Contact
	resets           int
	reloads          int
}

// New creates an empty catalog with a single administrator.
func New() *Catalog {
	c := &Catalog{
		workspaces: make(map[string]*workspace),
		layers:     make(map[string]*layer),
		styles:     make(map[string]*style),
		users:      make(map[string]*user),
		roles:      make(map[string]map[string]bool),
		settings: restdata.Object{
			"global": map[string]interface{}{
				"settings": map[string]interface{}{
					"charset":      "UTF-8",
					"numDecimals":  int64(8),
					"proxyBaseUrl": "",
					"verbose":      false,
				},
			},
		},
	}
	for _, name := range []string{"generic", "line", "point", "polygon", "raster"} {
		c.styles[name] = &style{name: name}
	}
	c.users[DefaultAdminUser] = &user{
		name:     DefaultAdminUser,
		password: DefaultAdminPassword,
		enabled:  true,
	}
	c.roles[AdminRole] = map[string]bool{DefaultAdminUser: true}
	c.roles["GROUP_ADMIN"] = map[string]bool{}
	return c
}

// do runs f within the global lock.
func (c *Catalog) do(f func() error) error {
	c.sem.Lock()
	defer c.sem.Unlock()
	return f()
}

// VersionInfo returns the component versions the catalog reports.
func (c *Catalog) VersionInfo() restdata.VersionInfo {
	return restdata.VersionInfo{About: restdata.About{
		Resource: []restdata.VersionResource{
			{Name: "GeoServer", Version: Version},
			{Name: "GeoTools", Version: "27.0"},
			{Name: "GeoWebCache", Version: "1.21.0"},
		},
	}}
}

// Settings returns a copy of the global settings.
func (c *Catalog) Settings() restdata.Object {
	var result restdata.Object
	_ = c.do(func() error {
		result = copyObject(c.settings)
		return nil
	})
	return result
}

// SetSettings replaces the global settings.  The new settings must
// include a "global" object.
func (c *Catalog) SetSettings(settings restdata.Object) error {
	return c.do(func() error {
		settings = copyObject(settings)
		if _, ok := asObject(settings["global"]); !ok {
			return errBadRequest("settings must include global settings")
		}
		c.settings = settings
		return nil
	})
}

// Contact returns the contact information.
func (c *Catalog) Contact() restdata.Contact {
	var result restdata.Contact
	_ = c.do(func() error {
		result = c.contact
		return nil
	})
	return result
}

// SetContact replaces the contact information.
func (c *Catalog) SetContact(contact restdata.Contact) {
	_ = c.do(func() error {
		c.contact = contact
		return nil
	})
}

// Reset records a request to drop cached resources.
func (c *Catalog) Reset() {
	_ = c.do(func() error {
		c.resets++
		return nil
	})
}

// Reload records a request to reload the configuration.  This
// implies a reset.
func (c *Catalog) Reload() {
	_ = c.do(func() error {
		c.reloads++
		c.resets++
		return nil
	})
}

// Resets returns the number of resets so far.
func (c *Catalog) Resets() int {
	var n int
	_ = c.do(func() error {
		n = c.resets
		return nil
	})
	return n
}

// Reloads returns the number of reloads so far.
func (c *Catalog) Reloads() int {
	var n int
	_ = c.do(func() error {
		n = c.reloads
		return nil
	})
	return n
}

// sortedKeys returns the keys of a map in order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asObject returns v as an Object, if it is a JSON object.
func asObject(v interface{}) (restdata.Object, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return restdata.Object(m), true
	case restdata.Object:
		return m, true
	}
	return nil, false
}

// copyObject deeply copies decoded JSON, so callers never share
// state with the catalog.
func copyObject(o restdata.Object) restdata.Object {
	if o == nil {
		return nil
	}
	return restdata.Object(copyValue(map[string]interface{}(o)).(map[string]interface{}))
}

func copyValue(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(vv))
		for k, item := range vv {
			m[k] = copyValue(item)
		}
		return m
	case restdata.Object:
		return copyValue(map[string]interface{}(vv))
	case []interface{}:
		s := make([]interface{}, len(vv))
		for i, item := range vv {
			s[i] = copyValue(item)
		}
		return s
	}
	return v
}
