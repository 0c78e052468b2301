// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/diffeo/go-geoserver/restdata"
)

var (
	styleCreateErrors = conflictTable("Unable to publish the style as it already exists")

	styleDeleteErrors = statusTable{
		http.StatusForbidden: {KindNotEmpty, "Deletion failed. There might be dependant layers to this style. Delete them first or call this with \"recurse=true\""},
		http.StatusNotFound:  {KindNotFound, "Style doesn't exist"},
	}

	styleAssignErrors = notFoundTable("Layer doesn't exist")
)

// StyleClient manages SLD styles.  A style either belongs to a
// workspace or is global; an empty workspace name means global.
type StyleClient struct {
	conn       *connection
	workspaces *WorkspaceClient
}

// Defaults lists the global styles.
func (s *StyleClient) Defaults(ctx context.Context) ([]restdata.NamedLink, error) {
	return s.conn.getLinks(ctx, "styles.json", nil, "styles", "style")
}

// InWorkspace lists the styles of one workspace.
func (s *StyleClient) InWorkspace(ctx context.Context, workspace string) ([]restdata.NamedLink, error) {
	return s.conn.getLinks(ctx, "workspaces/{workspace}/styles.json", map[string]interface{}{
		"workspace": workspace,
	}, "styles", "style")
}

// AllWorkspaceStyles lists the styles of every workspace, workspace
// by workspace.
func (s *StyleClient) AllWorkspaceStyles(ctx context.Context) ([]restdata.NamedLink, error) {
	workspaces, err := s.workspaces.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	styles := []restdata.NamedLink{}
	for _, ws := range workspaces {
		inWorkspace, err := s.InWorkspace(ctx, ws.Name)
		if err != nil {
			return nil, err
		}
		styles = append(styles, inWorkspace...)
	}
	return styles, nil
}

// All lists the global styles followed by every workspace's styles.
func (s *StyleClient) All(ctx context.Context) ([]restdata.NamedLink, error) {
	defaults, err := s.Defaults(ctx)
	if err != nil {
		return nil, err
	}
	others, err := s.AllWorkspaceStyles(ctx)
	if err != nil {
		return nil, err
	}
	return append(defaults, others...), nil
}

// Publish uploads an SLD document as a new style in a workspace.  The
// style takes its name from the document.  Returns the name GeoServer
// assigned.
func (s *StyleClient) Publish(ctx context.Context, workspace, sld string) (string, error) {
	name, err := s.conn.sendText(ctx, http.MethodPost, "workspaces/{workspace}/styles", map[string]interface{}{
		"workspace": workspace,
	}, styleCreateErrors, restdata.SLDMediaType, sld)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// stylePath picks the URI template for a style, depending on whether
// it belongs to a workspace.
func stylePath(workspace, suffix string) string {
	if workspace == "" {
		return "styles/{style}" + suffix
	}
	return "workspaces/{workspace}/styles/{style}" + suffix
}

// Delete deletes a style.  If recurse is true, layers using it are
// switched away from it first; if purge is true, its SLD file is
// removed from the server's data directory.
func (s *StyleClient) Delete(ctx context.Context, workspace, style string, recurse, purge bool) error {
	return s.conn.deleteAt(ctx, stylePath(workspace, "{?recurse,purge}"), map[string]interface{}{
		"workspace": workspace,
		"style":     style,
		"recurse":   recurse,
		"purge":     purge,
	}, styleDeleteErrors)
}

// Information retrieves the description of a style, or nil if it does
// not exist.
func (s *StyleClient) Information(ctx context.Context, style, workspace string) (*restdata.StyleInfo, error) {
	obj, err := s.conn.getObject(ctx, stylePath(workspace, ".json"), map[string]interface{}{
		"workspace": workspace,
		"style":     style,
	})
	if obj == nil || err != nil {
		return nil, err
	}
	info := &restdata.StyleInfo{}
	if err := restdata.DecodeObject(obj.Get("style"), info); err != nil {
		return nil, fmt.Errorf("decoding style %q: %w", style, err)
	}
	return info, nil
}

// AssignToLayer adds a style to the styles available for a layer.  If
// isDefault is true, it becomes the layer's default style.
func (s *StyleClient) AssignToLayer(ctx context.Context, qualifiedLayer, style, styleWorkspace string, isDefault bool) error {
	info, err := s.Information(ctx, style, styleWorkspace)
	if err != nil {
		return err
	}
	if info == nil {
		return &ResponseError{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("Style %q doesn't exist", style),
		}
	}
	return s.conn.postTo(ctx, "layers/{+layer}/styles{?default}", map[string]interface{}{
		"layer":   qualifiedLayer,
		"default": isDefault,
	}, styleAssignErrors, restdata.StyleBody{Style: *info}, nil)
}
