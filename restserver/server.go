// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-geoserver/memory"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// NewServer creates an HTTP handler serving the GeoServer REST API
// over a catalog, at the URL path root.  Every request must carry the
// credentials of one of the catalog's administrators.
func NewServer(catalog *memory.Catalog, log logrus.FieldLogger) http.Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := mux.NewRouter()
	PopulateRouter(r, catalog, log)
	n := negroni.New(
		negroni.NewRecovery(),
		requestLogger(log),
		requireAdmin(catalog),
		negroni.HandlerFunc(stripJSON),
	)
	n.UseHandler(r)
	return n
}

// NewRouter creates a new HTTP handler that processes catalog
// requests, without authentication.  Paths must not carry a ".json"
// suffix.
func NewRouter(catalog *memory.Catalog) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, catalog, logrus.StandardLogger())
	return r
}

// PopulateRouter adds catalog routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the API under a subpath:
//
//     r := mux.NewRouter()
//     s := r.PathPrefix("/geoserver/rest").Subrouter()
//     PopulateRouter(s, memory.New(), logrus.StandardLogger())
func PopulateRouter(r *mux.Router, catalog *memory.Catalog, log logrus.FieldLogger) {
	api := &restAPI{Catalog: catalog, Router: r, Log: log}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the REST API.
type restAPI struct {
	Catalog *memory.Catalog
	Router  *mux.Router
	Log     logrus.FieldLogger
}

const (
	storeKinds    = "{kind:datastores|coveragestores|wmsstores|wmtsstores}"
	resourceKinds = "{resources:featuretypes|coverages|wmslayers|layers}"
)

// handle registers a resource handler for a path.
func (api *restAPI) handle(r *mux.Router, name, path string, h *resourceHandler) {
	h.Context = api.Context
	h.Log = api.Log
	r.Path(path).Name(name).Handler(h)
}

// PopulateRouter adds all URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.handle(r, "version", "/about/version", &resourceHandler{
		Get: api.VersionGet,
	})

	api.handle(r, "workspaces", "/workspaces", &resourceHandler{
		Get:  api.WorkspaceList,
		Post: api.WorkspacePost,
	})
	api.handle(r, "workspace", "/workspaces/{workspace}", &resourceHandler{
		Get:    api.WorkspaceGet,
		Delete: api.WorkspaceDelete,
	})
	api.handle(r, "namespaces", "/namespaces", &resourceHandler{
		Get:  api.NamespaceList,
		Post: api.NamespacePost,
	})
	api.handle(r, "namespace", "/namespaces/{workspace}", &resourceHandler{
		Get:    api.NamespaceGet,
		Delete: api.NamespaceDelete,
	})

	api.handle(r, "stores", "/workspaces/{workspace}/"+storeKinds, &resourceHandler{
		Get:  api.StoreList,
		Post: api.StorePost,
	})
	api.handle(r, "store", "/workspaces/{workspace}/"+storeKinds+"/{store}", &resourceHandler{
		Get:    api.StoreGet,
		Delete: api.StoreDelete,
	})
	api.handle(r, "geotiff", "/workspaces/{workspace}/coveragestores/{store}/file.geotiff", &resourceHandler{
		Put: api.GeoTIFFPut,
	})
	api.handle(r, "imagemosaic", "/workspaces/{workspace}/coveragestores/{store}/file.imagemosaic", &resourceHandler{
		Put: api.ImageMosaicPut,
	})
	api.handle(r, "external", "/workspaces/{workspace}/coveragestores/{store}/external.imagemosaic", &resourceHandler{
		Post: api.ExternalPost,
	})
	api.handle(r, "granules", "/workspaces/{workspace}/coveragestores/{store}/coverages/{name}/index/granules", &resourceHandler{
		Get: api.GranulesGet,
	})
	api.handle(r, "granulesXML", "/workspaces/{workspace}/coveragestores/{store}/coverages/{name}/index/granules.xml", &resourceHandler{
		Delete: api.GranulesDelete,
	})

	api.handle(r, "defaultFeatureTypes", "/workspaces/{workspace}/featuretypes", &resourceHandler{
		Post: api.DefaultFeatureTypePost,
	})
	api.handle(r, "resources", "/workspaces/{workspace}/"+storeKinds+"/{store}/"+resourceKinds, &resourceHandler{
		Post: api.ResourcePost,
	})
	api.handle(r, "resource", "/workspaces/{workspace}/"+storeKinds+"/{store}/"+resourceKinds+"/{name}", &resourceHandler{
		Get:    api.ResourceGet,
		Put:    api.ResourcePut,
		Delete: api.ResourceDelete,
	})

	api.handle(r, "workspaceLayers", "/workspaces/{workspace}/layers", &resourceHandler{
		Get: api.WorkspaceLayerList,
	})
	api.handle(r, "layers", "/layers", &resourceHandler{
		Get: api.LayerList,
	})
	api.handle(r, "layer", "/layers/{layer}", &resourceHandler{
		Get:    api.LayerGet,
		Put:    api.LayerPut,
		Delete: api.LayerDelete,
	})
	api.handle(r, "layerStyles", "/layers/{layer}/styles", &resourceHandler{
		Post: api.LayerStylePost,
	})

	api.handle(r, "styles", "/styles", &resourceHandler{
		Get:  api.StyleList,
		Post: api.StylePost,
	})
	api.handle(r, "style", "/styles/{style}", &resourceHandler{
		Get:    api.StyleGet,
		Delete: api.StyleDelete,
	})
	api.handle(r, "workspaceStyles", "/workspaces/{workspace}/styles", &resourceHandler{
		Get:  api.StyleList,
		Post: api.StylePost,
	})
	api.handle(r, "workspaceStyle", "/workspaces/{workspace}/styles/{style}", &resourceHandler{
		Get:    api.StyleGet,
		Delete: api.StyleDelete,
	})

	api.handle(r, "users", "/security/usergroup/users", &resourceHandler{
		Get:  api.UserList,
		Post: api.UserPost,
	})
	api.handle(r, "user", "/security/usergroup/user/{user}", &resourceHandler{
		Post:   api.UserUpdate,
		Delete: api.UserDelete,
	})
	api.handle(r, "roles", "/security/roles", &resourceHandler{
		Get: api.RoleList,
	})
	api.handle(r, "role", "/security/roles/role/{role}", &resourceHandler{
		Post: api.RolePost,
	})
	api.handle(r, "roleUser", "/security/roles/role/{role}/user/{user}", &resourceHandler{
		Post: api.RoleUserPost,
	})

	api.handle(r, "settings", "/settings", &resourceHandler{
		Get: api.SettingsGet,
		Put: api.SettingsPut,
	})
	api.handle(r, "contact", "/settings/contact", &resourceHandler{
		Get: api.ContactGet,
		Put: api.ContactPut,
	})
	api.handle(r, "reset", "/reset", &resourceHandler{
		Post: api.ResetPost,
	})
	api.handle(r, "reload", "/reload", &resourceHandler{
		Post: api.ReloadPost,
	})
}
