// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

// This file builds the creation bodies for the store types with fixed
// connection parameter schemas.  GeoServer matches these keys
// verbatim, so every key is always present even when the caller left
// the corresponding option unset.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// WorkspaceRef names the workspace a store belongs to.
type WorkspaceRef struct {
	Name string `json:"name" mapstructure:"name"`
}

// DataStore is the "dataStore" member of a data store creation body.
type DataStore struct {
	Name                 string        `json:"name"`
	Type                 string        `json:"type"`
	Enabled              *bool         `json:"enabled,omitempty"`
	Workspace            *WorkspaceRef `json:"workspace,omitempty"`
	ConnectionParameters Entries       `json:"connectionParameters"`
}

// DataStoreBody is the complete data store creation body.
type DataStoreBody struct {
	DataStore DataStore `json:"dataStore"`
}

// PostGISStore describes a PostGIS data store.
type PostGISStore struct {
	Workspace string
	// Namespace is the namespace URI features are published under.
	Namespace string
	Name      string
	Host      string
	Port      int
	Database  string
	User      string
	Password  string
	Schema    string
	// ExposePK publishes primary key columns as attributes.  Unset
	// means false.
	ExposePK *bool
}

// Body builds the creation body for a PostGIS store.
func (p PostGISStore) Body() DataStoreBody {
	exposePK := false
	if p.ExposePK != nil {
		exposePK = *p.ExposePK
	}
	enabled := true
	return DataStoreBody{DataStore: DataStore{
		Name:      p.Name,
		Type:      "PostGIS",
		Enabled:   &enabled,
		Workspace: &WorkspaceRef{Name: p.Workspace},
		ConnectionParameters: Entries{Entry: []Entry{
			{Key: "dbtype", Value: "postgis"},
			{Key: "schema", Value: p.Schema},
			{Key: "database", Value: p.Database},
			{Key: "host", Value: p.Host},
			{Key: "port", Value: p.Port},
			{Key: "passwd", Value: p.Password},
			{Key: "namespace", Value: p.Namespace},
			{Key: "user", Value: p.User},
			{Key: "Expose primary keys", Value: exposePK},
		}},
	}}
}

// PostGISStoreFromURL fills in the connection fields of a PostGIS
// store from a postgres:// URL.  Workspace, Namespace, Name, Schema
// and ExposePK are left for the caller.  The port defaults to 5432.
func PostGISStoreFromURL(dsn string) (PostGISStore, error) {
	store := PostGISStore{Port: 5432}
	conninfo, err := pq.ParseURL(dsn)
	if err != nil {
		return store, fmt.Errorf("invalid PostGIS URL: %w", err)
	}
	for key, value := range splitConninfo(conninfo) {
		switch key {
		case "host":
			store.Host = value
		case "port":
			store.Port, err = strconv.Atoi(value)
			if err != nil {
				return store, fmt.Errorf("invalid PostGIS port %q: %w", value, err)
			}
		case "dbname":
			store.Database = value
		case "user":
			store.User = value
		case "password":
			store.Password = value
		}
	}
	return store, nil
}

// splitConninfo breaks a "key=value key=value" string, as produced by
// pq.ParseURL, into its parts.  Values escape spaces, quotes and
// backslashes with a backslash.
func splitConninfo(s string) map[string]string {
	result := make(map[string]string)
	var (
		cur     strings.Builder
		escaped bool
		fields  []string
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ' ':
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	for _, field := range fields {
		parts := strings.SplitN(field, "=", 2)
		if len(parts) == 2 {
			result[parts[0]] = parts[1]
		}
	}
	return result
}

// WFSStore describes a cascaded Web Feature Service data store.
type WFSStore struct {
	Workspace       string
	Name            string
	CapabilitiesURL string
	// NamespaceURL is the namespace URI features are published under.
	NamespaceURL string
	// UseHTTPConnectionPooling defaults to true when unset.
	UseHTTPConnectionPooling *bool
}

// Body builds the creation body for a WFS store.
func (w WFSStore) Body() DataStoreBody {
	pooling := "true"
	if w.UseHTTPConnectionPooling != nil && !*w.UseHTTPConnectionPooling {
		pooling = "false"
	}
	return DataStoreBody{DataStore: DataStore{
		Name: w.Name,
		Type: "Web Feature Server (NG)",
		ConnectionParameters: Entries{Entry: []Entry{
			{Key: "WFSDataStoreFactory:GET_CAPABILITIES_URL", Value: w.CapabilitiesURL},
			{Key: "WFSDataStoreFactory:USE_HTTP_CONNECTION_POOLING", Value: pooling},
			{Key: "namespace", Value: w.NamespaceURL},
		}},
	}}
}

// GeoPackageStore describes a data store backed by a GeoPackage file
// on the server's filesystem.
type GeoPackageStore struct {
	Workspace string
	Name      string
	// Path is the location of the .gpkg file as seen by the server.
	Path string
	// Namespace is optional; when empty the workspace's namespace
	// is used.
	Namespace string
}

// Body builds the creation body for a GeoPackage store.
func (g GeoPackageStore) Body() DataStoreBody {
	entries := []Entry{
		{Key: "database", Value: "file:" + g.Path},
		{Key: "dbtype", Value: "geopkg"},
	}
	if g.Namespace != "" {
		entries = append(entries, Entry{Key: "namespace", Value: g.Namespace})
	}
	return DataStoreBody{DataStore: DataStore{
		Name:                 g.Name,
		Type:                 "GeoPackage",
		ConnectionParameters: Entries{Entry: entries},
	}}
}

// CascadedStore is the body member of a WMS or WMTS store.
type CascadedStore struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	CapabilitiesURL string `json:"capabilitiesURL"`
}

// WMSStoreBody is the creation body of a cascaded WMS store.
type WMSStoreBody struct {
	WMSStore CascadedStore `json:"wmsStore"`
}

// NewWMSStoreBody builds the creation body of a cascaded WMS store.
func NewWMSStoreBody(name, capabilitiesURL string) WMSStoreBody {
	return WMSStoreBody{WMSStore: CascadedStore{Name: name, Type: "WMS", CapabilitiesURL: capabilitiesURL}}
}

// WMTSStoreBody is the creation body of a cascaded WMTS store.
type WMTSStoreBody struct {
	WMTSStore CascadedStore `json:"wmtsStore"`
}

// NewWMTSStoreBody builds the creation body of a cascaded WMTS store.
func NewWMTSStoreBody(name, capabilitiesURL string) WMTSStoreBody {
	return WMTSStoreBody{WMTSStore: CascadedStore{Name: name, Type: "WMTS", CapabilitiesURL: capabilitiesURL}}
}
