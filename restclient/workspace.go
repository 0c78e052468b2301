// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

var (
	workspaceCreateErrors = conflictTable("Unable to create the workspace as it already exists")

	workspaceDeleteErrors = statusTable{
		http.StatusBadRequest: {KindNotEmpty, "Workspace or related Namespace is not empty (and recurse not true)"},
		http.StatusNotFound:   {KindNotFound, "Workspace doesn't exist"},
	}
)

// WorkspaceClient manages workspaces.
type WorkspaceClient struct {
	conn *connection
}

// GetAll lists all workspaces.
func (w *WorkspaceClient) GetAll(ctx context.Context) ([]restdata.NamedLink, error) {
	return w.conn.getLinks(ctx, "workspaces.json", nil, "workspaces", "workspace")
}

// Get retrieves a single workspace, or nil if it does not exist.
func (w *WorkspaceClient) Get(ctx context.Context, name string) (restdata.Object, error) {
	return w.conn.getObject(ctx, "workspaces/{workspace}.json", map[string]interface{}{
		"workspace": name,
	})
}

// Create creates a workspace and returns its name.
func (w *WorkspaceClient) Create(ctx context.Context, name string) (string, error) {
	body := restdata.WorkspaceBody{Workspace: restdata.WorkspaceRef{Name: name}}
	return w.conn.create(ctx, "workspaces", nil, workspaceCreateErrors, body)
}

// Delete deletes a workspace.  If recurse is true, everything in the
// workspace is deleted with it; otherwise a non-empty workspace is
// not deleted.
func (w *WorkspaceClient) Delete(ctx context.Context, name string, recurse bool) error {
	return w.conn.deleteAt(ctx, "workspaces/{workspace}{?recurse}", map[string]interface{}{
		"workspace": name,
		"recurse":   recurse,
	}, workspaceDeleteErrors)
}
