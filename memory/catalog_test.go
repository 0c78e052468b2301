// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"net/http"
	"sync"
	"testing"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionInfo(t *testing.T) {
	info := New().VersionInfo()
	gs, ok := info.Component("GeoServer")
	if assert.True(t, ok) {
		assert.Equal(t, Version, gs.Version)
	}
}

func TestSettings(t *testing.T) {
	c := New()
	settings := c.Settings()
	settings.Set("https://maps.example.com", "global", "settings", "proxyBaseUrl")
	assert.Equal(t, "", c.Settings().Get("global", "settings", "proxyBaseUrl"),
		"settings are returned by copy")

	require.NoError(t, c.SetSettings(settings))
	assert.Equal(t, "https://maps.example.com", c.Settings().Get("global", "settings", "proxyBaseUrl"))

	err := c.SetSettings(restdata.Object{"other": true})
	if assert.Error(t, err) {
		assert.Equal(t, http.StatusBadRequest, restdata.StatusOf(err))
	}
}

func TestContact(t *testing.T) {
	c := New()
	assert.Equal(t, restdata.Contact{}, c.Contact())
	c.SetContact(restdata.Contact{Person: "Jo", City: "Boston"})
	assert.Equal(t, "Jo", c.Contact().Person)
	assert.Equal(t, "Boston", c.Contact().City)
}

func TestResetReload(t *testing.T) {
	c := New()
	c.Reset()
	c.Reload()
	assert.Equal(t, 2, c.Resets())
	assert.Equal(t, 1, c.Reloads())
}

func TestConcurrentWorkspaces(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.CreateWorkspace(string(rune('a'+i)), "")
			_ = c.WorkspaceNames()
		}(i)
	}
	wg.Wait()
	assert.Len(t, c.WorkspaceNames(), 20)
}

func TestCopyValue(t *testing.T) {
	orig := restdata.Object{"a": map[string]interface{}{
		"list": []interface{}{map[string]interface{}{"x": 1}},
	}}
	dup := copyObject(orig)
	dup.Set(2, "a", "y")
	dup.Get("a", "list").([]interface{})[0].(map[string]interface{})["x"] = 3
	assert.Nil(t, orig.Get("a", "y"))
	assert.Equal(t, 1, orig.Get("a", "list").([]interface{})[0].(map[string]interface{})["x"])
}
