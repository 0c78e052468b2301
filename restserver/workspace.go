// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// VersionGet reports the versions of the server's components.
func (api *restAPI) VersionGet(ctx *context) (interface{}, error) {
	return api.Catalog.VersionInfo(), nil
}

// WorkspaceList lists all workspaces.
func (api *restAPI) WorkspaceList(ctx *context) (interface{}, error) {
	return api.linkList("workspaces", "workspace", "workspace", "workspace", api.Catalog.WorkspaceNames())
}

// WorkspacePost creates a workspace.
func (api *restAPI) WorkspacePost(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	name, _ := body.Get("workspace", "name").(string)
	if err := api.Catalog.CreateWorkspace(name, ""); err != nil {
		return nil, err
	}
	return api.created(name, "workspace", "workspace", name)
}

// WorkspaceGet retrieves a workspace.
func (api *restAPI) WorkspaceGet(ctx *context) (interface{}, error) {
	return api.Catalog.Workspace(ctx.Workspace)
}

// WorkspaceDelete deletes a workspace.
func (api *restAPI) WorkspaceDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.DeleteWorkspace(ctx.Workspace, ctx.BoolParam("recurse", false))
}

// NamespaceList lists all namespaces.
func (api *restAPI) NamespaceList(ctx *context) (interface{}, error) {
	return api.linkList("namespaces", "namespace", "namespace", "workspace", api.Catalog.WorkspaceNames())
}

// NamespacePost creates a namespace.
func (api *restAPI) NamespacePost(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	prefix, _ := body.Get("namespace", "prefix").(string)
	uri, _ := body.Get("namespace", "uri").(string)
	if err := api.Catalog.CreateNamespace(prefix, uri); err != nil {
		return nil, err
	}
	return api.created(prefix, "namespace", "workspace", prefix)
}

// NamespaceGet retrieves a namespace.
func (api *restAPI) NamespaceGet(ctx *context) (interface{}, error) {
	return api.Catalog.Namespace(ctx.Workspace)
}

// NamespaceDelete deletes a namespace.
func (api *restAPI) NamespaceDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.DeleteNamespace(ctx.Workspace)
}
