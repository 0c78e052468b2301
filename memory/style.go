// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/diffeo/go-geoserver/restdata"
)

type style struct {
	workspace string
	name      string
	sld       string
}

// sldDocument is as much of a Styled Layer Descriptor as is needed to
// name the style it defines.
type sldDocument struct {
	NamedLayers []struct {
		Name       string `xml:"Name"`
		UserStyles []struct {
			Name string `xml:"Name"`
		} `xml:"UserStyle"`
	} `xml:"NamedLayer"`
}

// StyleName returns the name of the style an SLD document defines:
// the name of its first user style, or failing that, of its first
// named layer.
func StyleName(sld string) (string, error) {
	var doc sldDocument
	if err := xml.Unmarshal([]byte(sld), &doc); err != nil {
		return "", restdata.ErrBadRequest{Err: err}
	}
	for _, layer := range doc.NamedLayers {
		for _, us := range layer.UserStyles {
			if name := strings.TrimSpace(us.Name); name != "" {
				return name, nil
			}
		}
		if name := strings.TrimSpace(layer.Name); name != "" {
			return name, nil
		}
	}
	return "", errBadRequest("SLD does not name a style")
}

// styleRef is how a layer refers to a style.
func styleRef(workspace, name string) string {
	if workspace == "" {
		return name
	}
	return qualify(workspace, name)
}

// styleMap returns the styles of a workspace, or the global styles
// if workspace is empty.  It expects to run within the global lock.
func (c *Catalog) styleMap(workspace string) (map[string]*style, error) {
	if workspace == "" {
		return c.styles, nil
	}
	ws, err := c.workspace(workspace)
	if err != nil {
		return nil, err
	}
	return ws.styles, nil
}

// lookupStyle finds a style.  It expects to run within the global
// lock.
func (c *Catalog) lookupStyle(workspace, name string) (*style, error) {
	styles, err := c.styleMap(workspace)
	if err != nil {
		return nil, err
	}
	s, present := styles[name]
	if !present {
		return nil, ErrNotFound{What: "style", Name: styleRef(workspace, name)}
	}
	return s, nil
}

// StyleNames returns the names of the styles of a workspace, or of
// the global styles if workspace is empty.
func (c *Catalog) StyleNames(workspace string) (names []string, err error) {
	err = c.do(func() error {
		styles, err := c.styleMap(workspace)
		if err == nil {
			names = sortedKeys(styles)
		}
		return err
	})
	return
}

// Style returns the representation of a style.
func (c *Catalog) Style(workspace, name string) (result restdata.Object, err error) {
	err = c.do(func() error {
		s, err := c.lookupStyle(workspace, name)
		if err != nil {
			return err
		}
		obj := map[string]interface{}{
			"name":     s.name,
			"format":   "sld",
			"filename": s.name + ".sld",
			"languageVersion": map[string]interface{}{
				"version": "1.0.0",
			},
		}
		if s.workspace != "" {
			obj["workspace"] = map[string]interface{}{"name": s.workspace}
		}
		result = restdata.Object{"style": obj}
		return nil
	})
	return
}

// CreateStyle creates a style from an SLD document, taking its name
// from the document.  Returns the name.
func (c *Catalog) CreateStyle(workspace, sld string) (name string, err error) {
	name, err = StyleName(sld)
	if err != nil {
		return "", err
	}
	err = c.do(func() error {
		styles, err := c.styleMap(workspace)
		if err != nil {
			return err
		}
		if _, present := styles[name]; present {
			return ErrAlreadyExists{What: "Style", Name: name}
		}
		styles[name] = &style{workspace: workspace, name: name, sld: sld}
		return nil
	})
	return
}

// StyleSLD returns the SLD document of a style.
func (c *Catalog) StyleSLD(workspace, name string) (sld string, err error) {
	err = c.do(func() error {
		s, err := c.lookupStyle(workspace, name)
		if err == nil {
			sld = s.sld
		}
		return err
	})
	return
}

// DeleteStyle deletes a style.  Unless recurse is true, no layer may
// use it; if recurse is true, layers using it stop doing so.  There is
// no data directory, so purge has no effect.
func (c *Catalog) DeleteStyle(workspace, name string, recurse, purge bool) error {
	return c.do(func() error {
		s, err := c.lookupStyle(workspace, name)
		if err != nil {
			return err
		}
		ref := styleRef(workspace, name)
		for _, l := range c.layers {
			if l.uses(ref) && !recurse {
				return ErrNotEmpty{What: "Style", Name: ref, Status: http.StatusForbidden}
			}
		}
		for _, l := range c.layers {
			l.dropStyle(ref)
		}
		styles, _ := c.styleMap(workspace)
		delete(styles, s.name)
		return nil
	})
}

// uses says whether a layer refers to a style.
func (l *layer) uses(ref string) bool {
	if l.defaultStyle == ref {
		return true
	}
	for _, s := range l.styles {
		if s == ref {
			return true
		}
	}
	return false
}

// dropStyle removes every reference to a style from a layer.
func (l *layer) dropStyle(ref string) {
	if l.defaultStyle == ref {
		l.defaultStyle = ""
	}
	kept := l.styles[:0]
	for _, s := range l.styles {
		if s != ref {
			kept = append(kept, s)
		}
	}
	l.styles = kept
}
