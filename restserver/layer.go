// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// LayerList lists every layer by qualified name.
func (api *restAPI) LayerList(ctx *context) (interface{}, error) {
	return api.linkList("layers", "layer", "layer", "layer", api.Catalog.LayerNames())
}

// WorkspaceLayerList lists the layers of one workspace.
func (api *restAPI) WorkspaceLayerList(ctx *context) (interface{}, error) {
	names, err := api.Catalog.LayerNamesIn(ctx.Workspace)
	if err != nil {
		return nil, err
	}
	return api.linkList("layers", "layer", "layer", "layer", names)
}

// LayerGet retrieves a layer.
func (api *restAPI) LayerGet(ctx *context) (interface{}, error) {
	return api.Catalog.Layer(ctx.Layer)
}

// LayerPut updates a layer.
func (api *restAPI) LayerPut(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	return nil, api.Catalog.UpdateLayer(ctx.Layer, body)
}

// LayerDelete deletes a layer.
func (api *restAPI) LayerDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.DeleteLayer(ctx.Layer, ctx.BoolParam("recurse", false))
}

// LayerStylePost makes a style available to a layer, or its default
// with default=true.
func (api *restAPI) LayerStylePost(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	name, _ := body.Get("style", "name").(string)
	workspace, _ := body.Get("style", "workspace", "name").(string)
	err = api.Catalog.AddLayerStyle(ctx.Layer, workspace, name, ctx.BoolParam("default", false))
	if err != nil {
		return nil, err
	}
	return api.created(name, "layer", "layer", ctx.Layer)
}
