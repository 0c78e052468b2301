// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"net/http"
	"strings"

	"github.com/diffeo/go-geoserver/restdata"
)

// layer is a published resource.  Its qualified name is its
// workspace and the resource's name, joined with a colon.
type layer struct {
	workspace    string
	name         string
	store        *store
	res          *resource
	defaultStyle string
	styles       []string
	attribution  restdata.Object
}

func qualify(workspace, name string) string {
	return workspace + ":" + name
}

// defaultStyles is the style a new layer starts with, by layer type.
var defaultStyles = map[string]string{
	"VECTOR": "generic",
	"RASTER": "raster",
}

// addResource publishes a resource from a store, along with its
// layer.  It expects to run within the global lock.
func (c *Catalog) addResource(ws *workspace, st *store, data restdata.Object) (*resource, error) {
	k := storeKinds[st.kind]
	name, _ := data["name"].(string)
	if name == "" {
		return nil, errBadRequest(k.Resource + " name is required")
	}
	if _, present := st.resources[name]; present {
		return nil, ErrAlreadyExists{What: k.Resource, Name: name}
	}
	q := qualify(ws.name, name)
	if _, present := c.layers[q]; present {
		return nil, ErrAlreadyExists{What: "Layer", Name: q}
	}
	data["namespace"] = map[string]interface{}{"name": ws.name}
	data["store"] = map[string]interface{}{"name": qualify(ws.name, st.name)}
	res := &resource{name: name, data: data}
	st.resources[name] = res
	c.layers[q] = &layer{
		workspace:    ws.name,
		name:         name,
		store:        st,
		res:          res,
		defaultStyle: defaultStyles[k.Layer],
	}
	return res, nil
}

// lookupResource finds a published resource.  An empty store name
// for a data store means the first data store of the workspace.  It
// expects to run within the global lock.
func (c *Catalog) lookupResource(wsName, kind, storeName, name string) (*workspace, *store, *resource, error) {
	ws, st, err := c.lookupStore(wsName, kind, storeName)
	if err != nil {
		return nil, nil, nil, err
	}
	res, present := st.resources[name]
	if !present {
		return nil, nil, nil, ErrNotFound{What: storeKinds[kind].Resource, Name: name}
	}
	return ws, st, res, nil
}

// PublishResource publishes a resource from a store, from a body
// such as {"featureType": {"name": ...}}.  If storeName is empty, the
// workspace's first data store is used.  Returns the new resource's
// name.
func (c *Catalog) PublishResource(wsName, kind, storeName string, body restdata.Object) (name string, err error) {
	err = c.do(func() error {
		ws, err := c.workspace(wsName)
		if err != nil {
			return err
		}
		if storeName == "" && kind == DataStores {
			names := sortedKeys(ws.stores[DataStores])
			if len(names) == 0 {
				return ErrNotFound{What: "Data store", Name: "default"}
			}
			storeName = names[0]
		}
		_, st, err := c.lookupStore(wsName, kind, storeName)
		if err != nil {
			return err
		}
		k := storeKinds[kind]
		data, ok := asObject(body.Get(k.Resource))
		if !ok {
			return errBadRequest("body must contain " + k.Resource)
		}
		res, err := c.addResource(ws, st, copyObject(data))
		if err == nil {
			name = res.name
		}
		return err
	})
	return
}

// Resource returns the representation of a published resource.
func (c *Catalog) Resource(wsName, kind, storeName, name string) (result restdata.Object, err error) {
	err = c.do(func() error {
		_, _, res, err := c.lookupResource(wsName, kind, storeName, name)
		if err != nil {
			return err
		}
		result = restdata.Object{storeKinds[kind].Resource: map[string]interface{}(copyObject(res.data))}
		return nil
	})
	return
}

// UpdateResource merges the members of an update body, such as
// {"coverage": {"metadata": ...}}, into a published resource.  The
// resource cannot be renamed.
func (c *Catalog) UpdateResource(wsName, kind, storeName, name string, body restdata.Object) error {
	return c.do(func() error {
		_, _, res, err := c.lookupResource(wsName, kind, storeName, name)
		if err != nil {
			return err
		}
		data, ok := asObject(body.Get(storeKinds[kind].Resource))
		if !ok {
			return errBadRequest("body must contain " + storeKinds[kind].Resource)
		}
		for key, value := range copyObject(data) {
			if key != "name" {
				res.data[key] = value
			}
		}
		return nil
	})
}

// DeleteResource deletes a published resource.  Unless recurse is
// true, it must not have a layer.
func (c *Catalog) DeleteResource(wsName, kind, storeName, name string, recurse bool) error {
	return c.do(func() error {
		ws, st, res, err := c.lookupResource(wsName, kind, storeName, name)
		if err != nil {
			return err
		}
		q := qualify(ws.name, res.name)
		if _, present := c.layers[q]; present && !recurse {
			return ErrNotEmpty{What: storeKinds[kind].Resource, Name: name, Status: http.StatusForbidden}
		}
		delete(c.layers, q)
		delete(st.resources, name)
		return nil
	})
}

// findLayer finds a layer by qualified name, or by bare name if that
// is unambiguous.  It expects to run within the global lock.
func (c *Catalog) findLayer(name string) (*layer, error) {
	if strings.Contains(name, ":") {
		if l, present := c.layers[name]; present {
			return l, nil
		}
		return nil, ErrNotFound{What: "layer", Name: name}
	}
	var found *layer
	for _, l := range c.layers {
		if l.name == name {
			if found != nil {
				return nil, ErrNotFound{What: "layer", Name: name}
			}
			found = l
		}
	}
	if found == nil {
		return nil, ErrNotFound{What: "layer", Name: name}
	}
	return found, nil
}

// LayerNames returns the qualified names of all layers.
func (c *Catalog) LayerNames() []string {
	var names []string
	_ = c.do(func() error {
		names = sortedKeys(c.layers)
		return nil
	})
	return names
}

// LayerNamesIn returns the unqualified names of the layers of one
// workspace.
func (c *Catalog) LayerNamesIn(wsName string) (names []string, err error) {
	err = c.do(func() error {
		if _, err := c.workspace(wsName); err != nil {
			return err
		}
		names = []string{}
		for _, q := range sortedKeys(c.layers) {
			if l := c.layers[q]; l.workspace == wsName {
				names = append(names, l.name)
			}
		}
		return nil
	})
	return
}

// Layer returns the representation of a layer.
func (c *Catalog) Layer(name string) (result restdata.Object, err error) {
	err = c.do(func() error {
		l, err := c.findLayer(name)
		if err != nil {
			return err
		}
		k := storeKinds[l.store.kind]
		obj := map[string]interface{}{
			"name":    l.name,
			"type":    k.Layer,
			"enabled": true,
			"resource": map[string]interface{}{
				"@class": k.Resource,
				"name":   qualify(l.workspace, l.name),
			},
		}
		if l.defaultStyle != "" {
			obj["defaultStyle"] = map[string]interface{}{"name": l.defaultStyle}
		}
		if len(l.styles) > 0 {
			styles := make([]interface{}, len(l.styles))
			for i, s := range l.styles {
				styles[i] = map[string]interface{}{"name": s}
			}
			obj["styles"] = map[string]interface{}{"style": styles}
		}
		if l.attribution != nil {
			obj["attribution"] = map[string]interface{}(copyObject(l.attribution))
		}
		result = restdata.Object{"layer": obj}
		return nil
	})
	return
}

// UpdateLayer applies the attribution and default style of an update
// body such as {"layer": {"attribution": {...}}}.
func (c *Catalog) UpdateLayer(name string, body restdata.Object) error {
	return c.do(func() error {
		l, err := c.findLayer(name)
		if err != nil {
			return err
		}
		data, ok := asObject(body.Get("layer"))
		if !ok {
			return errBadRequest("body must contain layer")
		}
		if attribution, ok := asObject(data["attribution"]); ok {
			l.attribution = copyObject(attribution)
		}
		if style, ok := asObject(data["defaultStyle"]); ok {
			if styleName, ok := style["name"].(string); ok {
				l.defaultStyle = styleName
			}
		}
		return nil
	})
}

// DeleteLayer deletes a layer.  If recurse is true, the resource
// behind it is deleted too.
func (c *Catalog) DeleteLayer(name string, recurse bool) error {
	return c.do(func() error {
		l, err := c.findLayer(name)
		if err != nil {
			return err
		}
		delete(c.layers, qualify(l.workspace, l.name))
		if recurse {
			delete(l.store.resources, l.res.name)
		}
		return nil
	})
}

// AddLayerStyle makes a style available to a layer.  If isDefault is
// true, it becomes the layer's default style instead.
func (c *Catalog) AddLayerStyle(name, styleWorkspace, styleName string, isDefault bool) error {
	return c.do(func() error {
		l, err := c.findLayer(name)
		if err != nil {
			return err
		}
		if _, err := c.lookupStyle(styleWorkspace, styleName); err != nil {
			return err
		}
		ref := styleRef(styleWorkspace, styleName)
		if isDefault {
			l.defaultStyle = ref
			return nil
		}
		for _, s := range l.styles {
			if s == ref {
				return nil
			}
		}
		l.styles = append(l.styles, ref)
		return nil
	})
}
