// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectSet(t *testing.T) {
	obj := Object{"layer": map[string]interface{}{"name": "roads"}}
	obj.Set("Map data", "layer", "attribution", "title")
	obj.Set("replaced", "other")
	assert.Equal(t, "Map data", obj.Get("layer", "attribution", "title"))
	assert.Equal(t, "roads", obj.Get("layer", "name"))
	assert.Equal(t, "replaced", obj.Get("other"))

	// Setting through a scalar replaces it with an object
	obj.Set(1, "other", "inner")
	assert.Equal(t, 1, obj.Get("other", "inner"))
}

func TestLinks(t *testing.T) {
	tests := []struct {
		Name   string
		Object Object
		Names  []string
	}{
		{
			Name:   "empty string",
			Object: Object{"workspaces": ""},
			Names:  []string{},
		},
		{
			Name:   "missing",
			Object: Object{},
			Names:  []string{},
		},
		{
			Name: "list",
			Object: Object{"workspaces": map[string]interface{}{
				"workspace": []interface{}{
					map[string]interface{}{"name": "a", "href": "http://x/a.json"},
					map[string]interface{}{"name": "b"},
				},
			}},
			Names: []string{"a", "b"},
		},
		{
			Name: "single",
			Object: Object{"workspaces": map[string]interface{}{
				"workspace": map[string]interface{}{"name": "only"},
			}},
			Names: []string{"only"},
		},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			links, err := test.Object.Links("workspaces", "workspace")
			require.NoError(t, err)
			assert.Equal(t, test.Names, Names(links))
		})
	}
}

func TestLinksHref(t *testing.T) {
	obj := Object{"styles": map[string]interface{}{
		"style": []interface{}{
			map[string]interface{}{"name": "point", "href": "http://x/styles/point.json"},
		},
	}}
	links, err := obj.Links("styles", "style")
	require.NoError(t, err)
	assert.Equal(t, []NamedLink{{Name: "point", Href: "http://x/styles/point.json"}}, links)
}

func TestDecodeObjectWeak(t *testing.T) {
	var body UserBody
	err := DecodeObject(map[string]interface{}{
		"user": map[string]interface{}{
			"userName": "alice",
			"enabled":  "true",
		},
	}, &body)
	require.NoError(t, err)
	assert.Equal(t, "alice", body.User.UserName)
	assert.True(t, body.User.Enabled)
}

func TestEntriesLookup(t *testing.T) {
	e := Entries{Entry: []Entry{{Key: "dbtype", Value: "postgis"}}}
	v, ok := e.Lookup("dbtype")
	assert.True(t, ok)
	assert.Equal(t, "postgis", v)
	_, ok = e.Lookup("host")
	assert.False(t, ok)
}

func TestVersionComponent(t *testing.T) {
	info := VersionInfo{About: About{Resource: []VersionResource{
		{Name: "GeoServer", Version: "2.21.0"},
		{Name: "GeoTools", Version: "27.0"},
	}}}
	gs, ok := info.Component("GeoServer")
	assert.True(t, ok)
	assert.Equal(t, "2.21.0", gs.Version)
	_, ok = info.Component("GeoWebCache")
	assert.False(t, ok)
}
