// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/diffeo/go-geoserver/profile"
	"github.com/diffeo/go-geoserver/restclient"
	"github.com/diffeo/go-geoserver/restserver"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	Catalog *memory.Catalog
	Server  *httptest.Server
	Clock   *clock.Mock
	Fs      afero.Fs
	Out     bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	log, _ := test.NewNullLogger()
	f := &fixture{
		Catalog: memory.New(),
		Clock:   clock.NewMock(),
		Fs:      afero.NewMemMapFs(),
	}
	f.Server = httptest.NewServer(http.StripPrefix(profile.DefaultPath, restserver.NewServer(f.Catalog, log)))
	t.Cleanup(f.Server.Close)
	return f
}

// runRaw runs gsadmin with exactly the given flags and arguments.
func (f *fixture) runRaw(args ...string) error {
	log, _ := test.NewNullLogger()
	f.Out.Reset()
	a := &admin{
		Clock: f.Clock,
		Fs:    f.Fs,
		Out:   &f.Out,
		Log:   log,
	}
	return newApp(a).Run(append([]string{"gsadmin"}, args...))
}

// run runs gsadmin against the test server.
func (f *fixture) run(args ...string) error {
	return f.runRaw(append([]string{"--url", f.Server.URL}, args...)...)
}

func TestVersion(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run("version"))
	assert.Contains(t, f.Out.String(), "GeoServer: "+memory.Version+"\n")

	require.NoError(t, f.run("exists"))
	assert.Equal(t, "exists: true\n", f.Out.String())
}

func TestWrongPassword(t *testing.T) {
	f := newFixture(t)
	err := f.run("--password", "wrong", "workspace", "list")
	assert.True(t, restclient.IsCommunication(err), "%v", err)

	err = f.run("--password", "wrong", "exists")
	assert.Error(t, err)
	assert.Equal(t, "exists: false\n", f.Out.String())
}

func TestEnvironment(t *testing.T) {
	f := newFixture(t)
	t.Setenv("GEOSERVER_URL", f.Server.URL)
	t.Setenv("GEOSERVER_USER", "admin")
	t.Setenv("GEOSERVER_PASSWORD", "geoserver")
	require.NoError(t, f.runRaw("exists"))
	assert.Equal(t, "exists: true\n", f.Out.String())
}

func TestProfileFile(t *testing.T) {
	f := newFixture(t)
	contents := "default: test\nprofiles:\n  test:\n    url: " + f.Server.URL + "\n    user: admin\n    password: geoserver\n"
	require.NoError(t, afero.WriteFile(f.Fs, "/etc/gs.yaml", []byte(contents), 0600))

	require.NoError(t, f.runRaw("--profile-file", "/etc/gs.yaml", "exists"))
	assert.Equal(t, "exists: true\n", f.Out.String())

	assert.Error(t, f.runRaw("--profile-file", "/etc/gs.yaml", "--profile", "other", "exists"))
	assert.Error(t, f.runRaw("--profile-file", "/etc/missing.yaml", "exists"))
}

func TestWorkspaces(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run("workspace", "create", "topp"))
	require.NoError(t, f.run("workspace", "list"))
	assert.Equal(t, "- topp\n", f.Out.String())

	require.NoError(t, f.run("workspace", "get", "topp"))
	assert.Contains(t, f.Out.String(), "name: topp")

	err := f.run("workspace", "create", "topp")
	assert.True(t, restclient.IsAlreadyExists(err))

	require.NoError(t, f.run("namespace", "create", "sf", "http://www.openplans.org/sf"))
	require.NoError(t, f.run("namespace", "list"))
	assert.Equal(t, "- sf\n- topp\n", f.Out.String())

	require.NoError(t, f.run("workspace", "delete", "topp"))
	assert.Error(t, f.run("workspace", "get", "topp"))
	assert.True(t, restclient.IsNotFound(f.run("workspace", "delete", "topp")))
}

func TestUsage(t *testing.T) {
	f := newFixture(t)
	err := f.run("workspace", "get")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "usage:")
		assert.Contains(t, err.Error(), "NAME")
	}
}

func TestStores(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Catalog.CreateWorkspace("topp", ""))

	require.NoError(t, f.run("datastore", "create-postgis", "topp", "pg", "postgres://gis:secret@db:5432/osm"))
	require.NoError(t, f.run("datastore", "list", "topp"))
	assert.Equal(t, "- pg\n", f.Out.String())
	require.NoError(t, f.run("datastore", "get", "topp", "pg"))
	assert.Contains(t, f.Out.String(), "type: PostGIS")

	require.NoError(t, f.run("layer", "publish", "--title", "Roads", "topp", "pg", "roads"))
	require.NoError(t, f.run("layer", "list", "topp"))
	assert.Equal(t, "- roads\n", f.Out.String())
	require.NoError(t, f.run("layer", "attribution", "topp:roads", "OSM", "https://osm.org"))
	layer, err := f.Catalog.Layer("topp:roads")
	require.NoError(t, err)
	assert.Equal(t, "OSM", layer.Get("layer", "attribution", "title"))

	assert.True(t, restclient.IsNotEmpty(f.run("datastore", "delete", "topp", "pg")))
	require.NoError(t, f.run("datastore", "delete", "--recurse", "topp", "pg"))
}

func TestUploadGeoTIFF(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Catalog.CreateWorkspace("topp", ""))
	data := []byte("II*\x00fake")
	require.NoError(t, afero.WriteFile(f.Fs, "/data/dem.tif", data, 0644))

	require.NoError(t, f.run("datastore", "upload-geotiff", "--coverage", "elevation", "topp", "dem", "/data/dem.tif"))
	size, err := f.Catalog.UploadSize("topp", "dem")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), size)

	require.NoError(t, f.run("datastore", "list", "--coverage", "topp"))
	assert.Equal(t, "- dem\n", f.Out.String())
	require.NoError(t, f.run("layer", "get", "topp:elevation"))
	assert.Contains(t, f.Out.String(), "type: RASTER")
}

const roadsSLD = `<?xml version="1.0" encoding="UTF-8"?>
<StyledLayerDescriptor version="1.0.0" xmlns="http://www.opengis.net/sld">
  <NamedLayer>
    <Name>roads</Name>
    <UserStyle><Name>roads</Name></UserStyle>
  </NamedLayer>
</StyledLayerDescriptor>
`

func TestStyles(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Catalog.CreateWorkspace("topp", ""))
	require.NoError(t, afero.WriteFile(f.Fs, "/styles/roads.sld", []byte(roadsSLD), 0644))

	require.NoError(t, f.run("style", "publish", "topp", "/styles/roads.sld"))
	assert.Equal(t, "style: roads\n", f.Out.String())
	require.NoError(t, f.run("style", "list", "topp"))
	assert.Equal(t, "- roads\n", f.Out.String())

	assert.Error(t, f.run("style", "publish", "topp", "/styles/missing.sld"))
	require.NoError(t, f.run("style", "delete", "topp", "roads"))
}

func TestSecurity(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run("user", "create", "alice", "pw"))
	assert.True(t, restclient.IsAlreadyExists(f.run("user", "create", "alice", "pw")))
	require.NoError(t, f.run("user", "list"))
	assert.Equal(t, "admin: true\nalice: true\n", f.Out.String())

	require.NoError(t, f.run("role", "create", "EDITOR"))
	require.NoError(t, f.run("role", "grant", "alice", "EDITOR"))
	members, err := f.Catalog.RoleMembers("EDITOR")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, members)

	require.NoError(t, f.run("user", "update", "--disable", "alice", "pw2"))
	require.NoError(t, f.run("user", "list"))
	assert.Equal(t, "admin: true\nalice: false\n", f.Out.String())
	require.NoError(t, f.run("user", "delete", "alice"))
}

func TestSettings(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run("settings", "proxy", "https://maps.example.com/geoserver"))
	require.NoError(t, f.run("settings", "show"))
	assert.Contains(t, f.Out.String(), "proxyBaseUrl: https://maps.example.com/geoserver")

	require.NoError(t, f.run("reset"))
	require.NoError(t, f.run("reload"))
	assert.Equal(t, 2, f.Catalog.Resets())
	assert.Equal(t, 1, f.Catalog.Reloads())
}

func TestWait(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run("wait"))
	assert.Equal(t, "attempts: 1\nwaited: 0s\n", f.Out.String())
}

func TestWaitTimeout(t *testing.T) {
	f := newFixture(t)
	url := f.Server.URL
	f.Server.Close()

	errc := make(chan error)
	go func() {
		errc <- f.runRaw("--url", url, "wait", "--timeout", "5s", "--interval", "1s")
	}()
	for {
		select {
		case err := <-errc:
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), "in time")
			}
			assert.False(t, f.Clock.Now().Before(time.Unix(5, 0)))
			return
		default:
			f.Clock.Add(time.Second)
		}
	}
}

func TestBench(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run("bench", "--count", "5", "--concurrency", "2"))
	assert.Equal(t, "created: 5\ndeleted: 5\nfailed: 0\nseconds: 0\n", f.Out.String())
	assert.Empty(t, f.Catalog.WorkspaceNames())
}
