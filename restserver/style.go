// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// StyleList lists the global styles, or a workspace's styles.
func (api *restAPI) StyleList(ctx *context) (interface{}, error) {
	names, err := api.Catalog.StyleNames(ctx.Workspace)
	if err != nil {
		return nil, err
	}
	if ctx.Workspace == "" {
		return api.linkList("styles", "style", "style", "style", names)
	}
	return api.linkList("styles", "style", "workspaceStyle", "style", names, "workspace", ctx.Workspace)
}

// StylePost creates a style from an SLD document.
func (api *restAPI) StylePost(ctx *context, in interface{}) (interface{}, error) {
	sld, err := bytesBody(in)
	if err != nil {
		return nil, err
	}
	name, err := api.Catalog.CreateStyle(ctx.Workspace, string(sld))
	if err != nil {
		return nil, err
	}
	if ctx.Workspace == "" {
		return api.created(name, "style", "style", name)
	}
	return api.created(name, "workspaceStyle", "workspace", ctx.Workspace, "style", name)
}

// StyleGet retrieves a style.
func (api *restAPI) StyleGet(ctx *context) (interface{}, error) {
	return api.Catalog.Style(ctx.Workspace, ctx.Style)
}

// StyleDelete deletes a style.
func (api *restAPI) StyleDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.DeleteStyle(ctx.Workspace, ctx.Style,
		ctx.BoolParam("recurse", false), ctx.BoolParam("purge", false))
}
