// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-geoserver/memory"
	"github.com/diffeo/go-geoserver/restdata"
	"github.com/diffeo/go-geoserver/restserver"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

// Suite runs the client against an in-memory catalog served over
// HTTP.
type Suite struct {
	suite.Suite
	Catalog *memory.Catalog
	Server  *httptest.Server
	Fs      afero.Fs
	GS      *GeoServer
	ctx     context.Context
}

func TestGeoServer(t *testing.T) {
	suite.Run(t, &Suite{})
}

func (s *Suite) SetupTest() {
	log, _ := test.NewNullLogger()
	s.Catalog = memory.New()
	s.Server = httptest.NewServer(restserver.NewServer(s.Catalog, log))
	s.Fs = afero.NewMemMapFs()
	s.GS = NewFromConfig(Config{
		URL:        s.Server.URL,
		User:       memory.DefaultAdminUser,
		Password:   memory.DefaultAdminPassword,
		HTTPClient: s.Server.Client(),
		Logger:     log,
		Fs:         s.Fs,
	})
	s.ctx = context.Background()
}

func (s *Suite) TearDownTest() {
	s.Server.Close()
}

// requireKind asserts that err is a *ResponseError of some kind.
func (s *Suite) requireKind(err error, kind ErrorKind) *ResponseError {
	s.Require().Error(err)
	re, ok := err.(*ResponseError)
	s.Require().True(ok, "%T is not a *ResponseError", err)
	s.Equal(kind, re.Kind, "%v", err)
	return re
}

// workspace creates a workspace and a PostGIS store named "pg".
func (s *Suite) workspace(name string) {
	_, err := s.GS.Workspaces.Create(s.ctx, name)
	s.Require().NoError(err)
	_, err = s.GS.DataStores.CreatePostGISStore(s.ctx, restdata.PostGISStore{
		Workspace: name,
		Name:      "pg",
		Host:      "db",
		Port:      5432,
		Database:  "gis",
	})
	s.Require().NoError(err)
}

func (s *Suite) TestURL() {
	s.Equal(s.Server.URL+"/", s.GS.URL())
}

func (s *Suite) TestVersion() {
	info, err := s.GS.About.Version(s.ctx)
	s.Require().NoError(err)
	gs, ok := info.Component("GeoServer")
	if s.True(ok) {
		s.Equal(memory.Version, gs.Version)
	}
	s.True(s.GS.About.Exists(s.ctx))
}

func (s *Suite) TestUnreachable() {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	gs := New(url, "admin", "geoserver")

	s.False(gs.About.Exists(s.ctx))
	_, err := gs.Workspaces.GetAll(s.ctx)
	re := s.requireKind(err, KindCommunication)
	s.Equal(0, re.StatusCode)
	s.Equal(http.StatusBadGateway, re.HTTPStatus())

	// A lookup that cannot tell "missing" from "unreachable" fails
	ws, err := gs.Workspaces.Get(s.ctx, "topp")
	s.Nil(ws)
	s.True(IsCommunication(err))
}

func (s *Suite) TestBadCredentials() {
	gs := New(s.Server.URL, memory.DefaultAdminUser, "wrong")
	_, err := gs.Workspaces.GetAll(s.ctx)
	re := s.requireKind(err, KindCommunication)
	s.Equal(http.StatusUnauthorized, re.StatusCode)
	s.False(gs.About.Exists(s.ctx))
}

func (s *Suite) TestWorkspaces() {
	links, err := s.GS.Workspaces.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(links)

	name, err := s.GS.Workspaces.Create(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal("topp", name)

	_, err = s.GS.Workspaces.Create(s.ctx, "topp")
	s.True(IsAlreadyExists(err))

	links, err = s.GS.Workspaces.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"topp"}, restdata.Names(links))

	ws, err := s.GS.Workspaces.Get(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal("topp", ws.Get("workspace", "name"))

	// A missing item is not an error
	ws, err = s.GS.Workspaces.Get(s.ctx, "nowhere")
	s.NoError(err)
	s.Nil(ws)

	s.NoError(s.GS.Workspaces.Delete(s.ctx, "topp", false))
	err = s.GS.Workspaces.Delete(s.ctx, "topp", false)
	re := s.requireKind(err, KindNotFound)
	s.Equal(http.StatusNotFound, re.StatusCode)
	s.Equal("Workspace doesn't exist", re.Message)
}

func (s *Suite) TestDeleteWorkspaceNotEmpty() {
	s.workspace("topp")
	err := s.GS.Workspaces.Delete(s.ctx, "topp", false)
	s.requireKind(err, KindNotEmpty)
	s.NoError(s.GS.Workspaces.Delete(s.ctx, "topp", true))
}

func (s *Suite) TestNamespaces() {
	prefix, err := s.GS.Namespaces.Create(s.ctx, "topp", "http://www.openplans.org/topp")
	s.Require().NoError(err)
	s.Equal("topp", prefix)
	_, err = s.GS.Namespaces.Create(s.ctx, "sf", "http://www.openplans.org/sf")
	s.Require().NoError(err)

	_, err = s.GS.Namespaces.Create(s.ctx, "sf", "http://elsewhere")
	s.True(IsAlreadyExists(err))

	links, err := s.GS.Namespaces.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"sf", "topp"}, restdata.Names(links))

	ns, err := s.GS.Namespaces.Get(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal("http://www.openplans.org/topp", ns.Get("namespace", "uri"))

	err = s.GS.Namespaces.Delete(s.ctx, "topp")
	s.True(IsProtected(err))

	_, err = s.GS.Styles.Publish(s.ctx, "sf", sld("local"))
	s.Require().NoError(err)
	err = s.GS.Namespaces.Delete(s.ctx, "sf")
	s.True(IsNotEmpty(err))

	s.Require().NoError(s.GS.Styles.Delete(s.ctx, "sf", "local", false, false))
	s.NoError(s.GS.Namespaces.Delete(s.ctx, "sf"))
	s.True(IsNotFound(s.GS.Namespaces.Delete(s.ctx, "sf")))
}

func (s *Suite) TestDataStores() {
	s.workspace("topp")

	name, err := s.GS.DataStores.CreateWFSStore(s.ctx, restdata.WFSStore{
		Workspace:       "topp",
		Name:            "wfs",
		CapabilitiesURL: "http://example.com/wfs",
	})
	s.Require().NoError(err)
	s.Equal("wfs", name)
	_, err = s.GS.DataStores.CreateGeoPackageStore(s.ctx, restdata.GeoPackageStore{
		Workspace: "topp",
		Name:      "gpkg",
		Path:      "/data/roads.gpkg",
	})
	s.Require().NoError(err)

	_, err = s.GS.DataStores.CreatePostGISStore(s.ctx, restdata.PostGISStore{Workspace: "topp", Name: "pg"})
	s.True(IsAlreadyExists(err))

	links, err := s.GS.DataStores.DataStores(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal([]string{"gpkg", "pg", "wfs"}, restdata.Names(links))

	store, err := s.GS.DataStores.DataStore(s.ctx, "topp", "pg")
	s.Require().NoError(err)
	s.Equal("PostGIS", store.Get("dataStore", "type"))

	store, err = s.GS.DataStores.DataStore(s.ctx, "topp", "missing")
	s.NoError(err)
	s.Nil(store)

	links, err = s.GS.DataStores.CoverageStores(s.ctx, "topp")
	s.Require().NoError(err)
	s.Empty(links)
}

func (s *Suite) TestDeleteDataStore() {
	s.workspace("topp")
	_, err := s.GS.Layers.PublishFeatureType(s.ctx, "topp", "pg", restdata.Resource{Name: "roads"})
	s.Require().NoError(err)

	err = s.GS.DataStores.DeleteDataStore(s.ctx, "topp", "pg", false)
	re := s.requireKind(err, KindNotEmpty)
	s.Equal(http.StatusUnauthorized, re.StatusCode)

	s.NoError(s.GS.DataStores.DeleteDataStore(s.ctx, "topp", "pg", true))
	s.True(IsNotFound(s.GS.DataStores.DeleteDataStore(s.ctx, "topp", "pg", true)))
}

func (s *Suite) TestGeoTIFF() {
	_, err := s.GS.Workspaces.Create(s.ctx, "topp")
	s.Require().NoError(err)
	data := []byte("II*\x00 not really a tiff")
	s.Require().NoError(afero.WriteFile(s.Fs, "/data/dem.tif", data, 0644))

	name, err := s.GS.DataStores.CreateGeoTIFFFromFile(s.ctx, "topp", "dem", "elevation", "Elevation", "/data/dem.tif")
	s.Require().NoError(err)
	s.Equal("dem", name)

	size, err := s.Catalog.UploadSize("topp", "dem")
	s.Require().NoError(err)
	s.Equal(int64(len(data)), size)

	cov, err := s.GS.Layers.Coverage(s.ctx, "topp", "dem", "elevation")
	s.Require().NoError(err)
	s.Equal("elevation", cov.Get("coverage", "name"))

	links, err := s.GS.DataStores.CoverageStores(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal([]string{"dem"}, restdata.Names(links))

	_, err = s.GS.DataStores.CreateGeoTIFFFromFile(s.ctx, "topp", "dem", "elevation", "Elevation", "/data/dem.tif")
	s.True(IsAlreadyExists(err))

	// A missing local file never reaches the server
	_, err = s.GS.DataStores.CreateGeoTIFFFromFile(s.ctx, "topp", "other", "x", "x", "/data/missing.tif")
	s.Error(err)
	_, isResponse := err.(*ResponseError)
	s.False(isResponse)

	err = s.GS.DataStores.DeleteCoverageStore(s.ctx, "topp", "dem", false)
	s.True(IsNotEmpty(err))
	s.NoError(s.GS.DataStores.DeleteCoverageStore(s.ctx, "topp", "dem", true))
}

func (s *Suite) TestImageMosaic() {
	_, err := s.GS.Workspaces.Create(s.ctx, "topp")
	s.Require().NoError(err)
	s.Require().NoError(afero.WriteFile(s.Fs, "/data/ndvi.zip", []byte("PK\x03\x04"), 0644))

	_, err = s.GS.DataStores.CreateImageMosaicStore(s.ctx, "topp", "ndvi", "/data/ndvi.zip")
	s.Require().NoError(err)

	path, err := s.GS.ImageMosaics.HarvestGranules(s.ctx, "topp", "ndvi", "/mnt/ndvi/2021")
	s.Require().NoError(err)
	s.Equal("/mnt/ndvi/2021", path)
	_, err = s.GS.ImageMosaics.AddGranuleByServerFile(s.ctx, "topp", "ndvi", "/mnt/ndvi/2022.tif")
	s.Require().NoError(err)

	granules, err := s.GS.ImageMosaics.Granules(s.ctx, "topp", "ndvi", "ndvi")
	s.Require().NoError(err)
	features, _ := granules.Get("features").([]interface{})
	s.Len(features, 2)

	s.NoError(s.GS.ImageMosaics.DeleteSingleGranule(s.ctx, "topp", "ndvi", "ndvi", "/mnt/ndvi/2022.tif"))
	err = s.GS.ImageMosaics.DeleteSingleGranule(s.ctx, "topp", "ndvi", "ndvi", "/mnt/ndvi/2022.tif")
	s.True(IsNotFound(err))

	_, err = s.GS.ImageMosaics.AddGranuleByServerFile(s.ctx, "topp", "ndvi", "/mnt/ndvi/o'neill.tif")
	s.Require().NoError(err)
	s.NoError(s.GS.ImageMosaics.DeleteSingleGranule(s.ctx, "topp", "ndvi", "ndvi", "/mnt/ndvi/o'neill.tif"))
	granules, err = s.GS.ImageMosaics.Granules(s.ctx, "topp", "ndvi", "ndvi")
	s.Require().NoError(err)
	features, _ = granules.Get("features").([]interface{})
	s.Len(features, 1)

	_, err = s.GS.ImageMosaics.HarvestGranules(s.ctx, "topp", "nothing", "/mnt")
	s.True(IsNotFound(err))
}

func (s *Suite) TestLayers() {
	s.workspace("topp")

	name, err := s.GS.Layers.PublishFeatureType(s.ctx, "topp", "pg", restdata.Resource{Name: "roads"})
	s.Require().NoError(err)
	s.Equal("roads", name)
	_, err = s.GS.Layers.PublishFeatureTypeDefaultDataStore(s.ctx, "topp", restdata.Resource{Name: "rivers", Title: "Rivers"})
	s.Require().NoError(err)
	_, err = s.GS.Layers.PublishFeatureType(s.ctx, "topp", "pg", restdata.Resource{Name: "roads"})
	s.True(IsAlreadyExists(err))

	ft, err := s.GS.Layers.FeatureType(s.ctx, "topp", "pg", "roads")
	s.Require().NoError(err)
	s.Equal("roads", ft.Get("featureType", "title"))
	s.Equal(restdata.DefaultSRS, ft.Get("featureType", "srs"))

	links, err := s.GS.Layers.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"topp:rivers", "topp:roads"}, restdata.Names(links))
	links, err = s.GS.Layers.InWorkspace(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal([]string{"rivers", "roads"}, restdata.Names(links))

	layer, err := s.GS.Layers.Get(s.ctx, "topp:roads")
	s.Require().NoError(err)
	s.Equal("VECTOR", layer.Get("layer", "type"))

	layer, err = s.GS.Layers.Get(s.ctx, "topp:missing")
	s.NoError(err)
	s.Nil(layer)

	s.Require().NoError(s.GS.Layers.ModifyAttribution(s.ctx, "topp:roads", "OSM", "https://osm.org"))
	layer, err = s.GS.Layers.Get(s.ctx, "topp:roads")
	s.Require().NoError(err)
	s.Equal("OSM", layer.Get("layer", "attribution", "title"))
	s.Equal("https://osm.org", layer.Get("layer", "attribution", "href"))
	s.True(IsNotFound(s.GS.Layers.ModifyAttribution(s.ctx, "topp:missing", "x", "y")))

	s.Require().NoError(s.GS.Layers.EnableTimeFeatureType(s.ctx, "topp", "pg", "roads", restdata.TimeDimension{
		Attribute:    "built",
		Presentation: restdata.PresentationList,
		DefaultValue: "MINIMUM",
	}))
	ft, err = s.GS.Layers.FeatureType(s.ctx, "topp", "pg", "roads")
	s.Require().NoError(err)
	s.NotNil(ft.Get("featureType", "metadata"))
	err = s.GS.Layers.EnableTimeFeatureType(s.ctx, "topp", "pg", "missing", restdata.TimeDimension{})
	s.True(IsNotFound(err))

	s.NoError(s.GS.Layers.Delete(s.ctx, "topp:rivers", true))
	s.True(IsNotFound(s.GS.Layers.Delete(s.ctx, "topp:rivers", true)))

	err = s.GS.Layers.DeleteFeatureType(s.ctx, "topp", "pg", "roads", false)
	s.Error(err)
	s.NoError(s.GS.Layers.DeleteFeatureType(s.ctx, "topp", "pg", "roads", true))
	s.True(IsNotFound(s.GS.Layers.DeleteFeatureType(s.ctx, "topp", "pg", "roads", true)))
}

func (s *Suite) TestCoverages() {
	_, err := s.GS.Workspaces.Create(s.ctx, "topp")
	s.Require().NoError(err)
	_, err = s.Catalog.CreateStore("topp", memory.CoverageStores, restdata.Object{
		"coverageStore": map[string]interface{}{"name": "raster", "type": "PGRaster"},
	})
	s.Require().NoError(err)

	name, err := s.GS.Layers.PublishDBRaster(s.ctx, "topp", "raster", restdata.Resource{Name: "landcover"})
	s.Require().NoError(err)
	s.Equal("landcover", name)

	s.Require().NoError(s.GS.Layers.RenameCoverageBands(s.ctx, "topp", "raster", "landcover", []string{"class"}))
	s.Require().NoError(s.GS.Layers.EnableTimeCoverage(s.ctx, "topp", "raster", "landcover", restdata.TimeDimension{
		Presentation: restdata.PresentationDiscreteInterval,
		Resolution:   86400000,
		DefaultValue: "MAXIMUM",
	}))
	cov, err := s.GS.Layers.Coverage(s.ctx, "topp", "raster", "landcover")
	s.Require().NoError(err)
	dims, _ := cov.Get("coverage", "dimensions", "coverageDimension").([]interface{})
	s.Len(dims, 1)

	err = s.GS.Layers.RenameCoverageBands(s.ctx, "topp", "raster", "missing", []string{"a"})
	s.True(IsNotFound(err))
}

func (s *Suite) TestCascadedStores() {
	_, err := s.GS.Workspaces.Create(s.ctx, "topp")
	s.Require().NoError(err)

	_, err = s.GS.DataStores.CreateWMSStore(s.ctx, "topp", "remote", "http://example.com/wms")
	s.Require().NoError(err)
	_, err = s.GS.DataStores.CreateWMTSStore(s.ctx, "topp", "tiles", "http://example.com/wmts")
	s.Require().NoError(err)

	links, err := s.GS.DataStores.WMSStores(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal([]string{"remote"}, restdata.Names(links))
	links, err = s.GS.DataStores.WMTSStores(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal([]string{"tiles"}, restdata.Names(links))

	store, err := s.GS.DataStores.WMSStore(s.ctx, "topp", "remote")
	s.Require().NoError(err)
	s.Equal("http://example.com/wms", store.Get("wmsStore", "capabilitiesURL"))
	store, err = s.GS.DataStores.WMTSStore(s.ctx, "topp", "tiles")
	s.Require().NoError(err)
	s.Equal("WMTS", store.Get("wmtsStore", "type"))

	_, err = s.GS.Layers.PublishWMSLayer(s.ctx, "topp", "remote", restdata.Resource{Name: "states"})
	s.Require().NoError(err)
	_, err = s.GS.Layers.PublishWMTSLayer(s.ctx, "topp", "tiles", restdata.Resource{Name: "basemap"})
	s.Require().NoError(err)

	layer, err := s.GS.Layers.WMSLayer(s.ctx, "topp", "remote", "states")
	s.Require().NoError(err)
	s.Equal("states", layer.Get("wmsLayer", "name"))
	layer, err = s.GS.Layers.WMTSLayer(s.ctx, "topp", "tiles", "basemap")
	s.Require().NoError(err)
	s.Equal("basemap", layer.Get("wmtsLayer", "nativeName"))

	l, err := s.GS.Layers.Get(s.ctx, "topp:basemap")
	s.Require().NoError(err)
	s.Equal("WMTS", l.Get("layer", "type"))
}

func (s *Suite) TestUsers() {
	s.Require().NoError(s.GS.Security.CreateUser(s.ctx, "alice", "pw"))
	err := s.GS.Security.CreateUser(s.ctx, "alice", "pw")
	re := s.requireKind(err, KindAlreadyExists)
	s.Equal(http.StatusNotFound, re.StatusCode)

	users, err := s.GS.Security.Users(s.ctx)
	s.Require().NoError(err)
	s.Equal([]restdata.User{
		{UserName: memory.DefaultAdminUser, Enabled: true},
		{UserName: "alice", Enabled: true},
	}, users)

	s.Require().NoError(s.GS.Security.UpdateUser(s.ctx, "alice", "new", false))
	users, err = s.GS.Security.Users(s.ctx)
	s.Require().NoError(err)
	s.False(users[1].Enabled)
	s.True(IsNotFound(s.GS.Security.UpdateUser(s.ctx, "bob", "x", true)))

	s.NoError(s.GS.Security.DeleteUser(s.ctx, "alice"))
	s.True(IsNotFound(s.GS.Security.DeleteUser(s.ctx, "alice")))
}

func (s *Suite) TestRoles() {
	roles, err := s.GS.Security.Roles(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{memory.AdminRole, "GROUP_ADMIN"}, roles)

	s.Require().NoError(s.GS.Security.CreateRole(s.ctx, "EDITOR"))
	s.True(IsAlreadyExists(s.GS.Security.CreateRole(s.ctx, "EDITOR")))

	s.Require().NoError(s.GS.Security.CreateUser(s.ctx, "alice", "pw"))
	s.Require().NoError(s.GS.Security.AssociateUserRole(s.ctx, "alice", "EDITOR"))
	members, err := s.Catalog.RoleMembers("EDITOR")
	s.Require().NoError(err)
	s.Equal([]string{"alice"}, members)

	s.True(IsNotFound(s.GS.Security.AssociateUserRole(s.ctx, "bob", "EDITOR")))

	// A new administrator can use the API
	s.Require().NoError(s.GS.Security.AssociateUserRole(s.ctx, "alice", memory.AdminRole))
	alice := New(s.Server.URL, "alice", "pw")
	s.True(alice.About.Exists(s.ctx))
}

func (s *Suite) TestSettings() {
	settings, err := s.GS.Settings.Settings(s.ctx)
	s.Require().NoError(err)
	s.Equal("UTF-8", settings.Get("global", "settings", "charset"))

	s.Require().NoError(s.GS.Settings.UpdateProxyBaseURL(s.ctx, "https://maps.example.com/geoserver"))
	settings, err = s.GS.Settings.Settings(s.ctx)
	s.Require().NoError(err)
	s.Equal("https://maps.example.com/geoserver", settings.Get("global", "settings", "proxyBaseUrl"))
	s.Equal("UTF-8", settings.Get("global", "settings", "charset"))

	err = s.GS.Settings.UpdateSettings(s.ctx, restdata.Object{"bogus": true})
	re := s.requireKind(err, KindCommunication)
	s.Equal(http.StatusBadRequest, re.StatusCode)
}

func (s *Suite) TestContact() {
	contact, err := s.GS.Settings.ContactInformation(s.ctx)
	s.Require().NoError(err)
	s.Equal(restdata.Contact{}, *contact)

	want := restdata.Contact{
		Person:       "Claudius Ptolomaeus",
		Organization: "The Ancient Geographers",
		City:         "Alexandria",
		Country:      "Egypt",
		Email:        "claudius.ptolomaeus@example.com",
	}
	s.Require().NoError(s.GS.Settings.UpdateContactInformation(s.ctx, want))
	contact, err = s.GS.Settings.ContactInformation(s.ctx)
	s.Require().NoError(err)
	s.Equal(want, *contact)
	s.Equal(want, s.Catalog.Contact())
}

func (s *Suite) TestResetReload() {
	s.Require().NoError(s.GS.ResetReload.Reset(s.ctx))
	s.Require().NoError(s.GS.ResetReload.Reload(s.ctx))
	s.Equal(2, s.Catalog.Resets())
	s.Equal(1, s.Catalog.Reloads())
}
