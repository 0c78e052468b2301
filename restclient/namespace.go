// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

var (
	namespaceCreateErrors = conflictTable("Unable to create the namespace as it already exists")

	namespaceDeleteErrors = statusTable{
		http.StatusForbidden:        {KindNotEmpty, "Namespace or related Workspace is not empty"},
		http.StatusNotFound:         {KindNotFound, "Namespace doesn't exist"},
		http.StatusMethodNotAllowed: {KindProtected, "Can't delete default namespace"},
	}
)

// NamespaceClient manages namespaces.  Every workspace has a
// namespace with the same name, and creating or deleting one affects
// the other.
type NamespaceClient struct {
	conn *connection
}

// GetAll lists all namespaces.
func (n *NamespaceClient) GetAll(ctx context.Context) ([]restdata.NamedLink, error) {
	return n.conn.getLinks(ctx, "namespaces.json", nil, "namespaces", "namespace")
}

// Get retrieves a single namespace, or nil if it does not exist.
func (n *NamespaceClient) Get(ctx context.Context, prefix string) (restdata.Object, error) {
	return n.conn.getObject(ctx, "namespaces/{prefix}.json", map[string]interface{}{
		"prefix": prefix,
	})
}

// Create creates a namespace with a prefix and URI, and returns the
// prefix.
func (n *NamespaceClient) Create(ctx context.Context, prefix, uri string) (string, error) {
	body := restdata.NamespaceBody{Namespace: restdata.Namespace{Prefix: prefix, URI: uri}}
	return n.conn.create(ctx, "namespaces", nil, namespaceCreateErrors, body)
}

// Delete deletes a namespace.
func (n *NamespaceClient) Delete(ctx context.Context, prefix string) error {
	return n.conn.deleteAt(ctx, "namespaces/{prefix}", map[string]interface{}{
		"prefix": prefix,
	}, namespaceDeleteErrors)
}
