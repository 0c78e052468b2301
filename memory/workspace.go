// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

// workspace is a workspace and its namespace, which always come and
// go together.
type workspace struct {
	name   string
	uri    string
	stores map[string]map[string]*store
	styles map[string]*style
}

func newWorkspace(name, uri string) *workspace {
	if uri == "" {
		uri = "http://" + name
	}
	ws := &workspace{
		name:   name,
		uri:    uri,
		stores: make(map[string]map[string]*store),
		styles: make(map[string]*style),
	}
	for kind := range storeKinds {
		ws.stores[kind] = make(map[string]*store)
	}
	return ws
}

func (ws *workspace) empty() bool {
	for _, stores := range ws.stores {
		if len(stores) > 0 {
			return false
		}
	}
	return len(ws.styles) == 0
}

// workspace finds a workspace.  It expects to run within the global
// lock.
func (c *Catalog) workspace(name string) (*workspace, error) {
	ws, present := c.workspaces[name]
	if !present {
		return nil, ErrNotFound{What: "workspace", Name: name}
	}
	return ws, nil
}

// WorkspaceNames returns the names of all workspaces.
func (c *Catalog) WorkspaceNames() []string {
	var names []string
	_ = c.do(func() error {
		names = sortedKeys(c.workspaces)
		return nil
	})
	return names
}

// Workspace returns the representation of one workspace.
func (c *Catalog) Workspace(name string) (result restdata.Object, err error) {
	err = c.do(func() error {
		ws, err := c.workspace(name)
		if err != nil {
			return err
		}
		result = restdata.Object{"workspace": map[string]interface{}{
			"name":     ws.name,
			"isolated": false,
		}}
		return nil
	})
	return
}

// CreateWorkspace creates a workspace and its namespace.  The first
// one created becomes the default.
func (c *Catalog) CreateWorkspace(name, uri string) error {
	return c.do(func() error {
		if name == "" {
			return errBadRequest("workspace name is required")
		}
		if _, present := c.workspaces[name]; present {
			return ErrAlreadyExists{What: "Workspace", Name: name}
		}
		c.workspaces[name] = newWorkspace(name, uri)
		if c.defaultNamespace == "" {
			c.defaultNamespace = name
		}
		return nil
	})
}

// DeleteWorkspace deletes a workspace and its namespace.  Unless
// recurse is true, the workspace must not contain any stores or
// styles.
func (c *Catalog) DeleteWorkspace(name string, recurse bool) error {
	return c.do(func() error {
		ws, err := c.workspace(name)
		if err != nil {
			return err
		}
		if !recurse && !ws.empty() {
			return ErrNotEmpty{What: "Workspace", Name: name, Status: http.StatusBadRequest}
		}
		c.dropWorkspace(ws)
		return nil
	})
}

// dropWorkspace removes a workspace and everything in it, choosing a
// new default namespace if needed.  It expects to run within the
// global lock.
func (c *Catalog) dropWorkspace(ws *workspace) {
	for q, l := range c.layers {
		if l.workspace == ws.name {
			delete(c.layers, q)
		}
	}
	delete(c.workspaces, ws.name)
	if c.defaultNamespace == ws.name {
		c.defaultNamespace = ""
		if names := sortedKeys(c.workspaces); len(names) > 0 {
			c.defaultNamespace = names[0]
		}
	}
}

// DefaultNamespace returns the prefix of the default namespace, or
// an empty string if there are no namespaces.
func (c *Catalog) DefaultNamespace() string {
	var name string
	_ = c.do(func() error {
		name = c.defaultNamespace
		return nil
	})
	return name
}

// Namespace returns the representation of one namespace.
func (c *Catalog) Namespace(prefix string) (result restdata.Object, err error) {
	err = c.do(func() error {
		ws, present := c.workspaces[prefix]
		if !present {
			return ErrNotFound{What: "namespace", Name: prefix}
		}
		result = restdata.Object{"namespace": map[string]interface{}{
			"prefix":   ws.name,
			"uri":      ws.uri,
			"isolated": false,
		}}
		return nil
	})
	return
}

// CreateNamespace creates a namespace and its workspace.
func (c *Catalog) CreateNamespace(prefix, uri string) error {
	if uri == "" {
		return errBadRequest("namespace URI is required")
	}
	return c.CreateWorkspace(prefix, uri)
}

// DeleteNamespace deletes a namespace and its workspace.  The default
// namespace and non-empty namespaces cannot be deleted.
func (c *Catalog) DeleteNamespace(prefix string) error {
	return c.do(func() error {
		ws, present := c.workspaces[prefix]
		if !present {
			return ErrNotFound{What: "namespace", Name: prefix}
		}
		if prefix == c.defaultNamespace {
			return ErrProtected{What: "namespace", Name: prefix}
		}
		if !ws.empty() {
			return ErrNotEmpty{What: "Namespace", Name: prefix, Status: http.StatusForbidden}
		}
		c.dropWorkspace(ws)
		return nil
	})
}
