// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"fmt"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

func sld(name string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<StyledLayerDescriptor version="1.0.0" xmlns="http://www.opengis.net/sld" xmlns:ogc="http://www.opengis.net/ogc">
  <NamedLayer>
    <Name>%s</Name>
    <UserStyle>
      <Name>%s</Name>
      <FeatureTypeStyle>
        <Rule>
          <LineSymbolizer/>
        </Rule>
      </FeatureTypeStyle>
    </UserStyle>
  </NamedLayer>
</StyledLayerDescriptor>`, name, name)
}

func (s *Suite) TestStyleListings() {
	defaults, err := s.GS.Styles.Defaults(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"generic", "line", "point", "polygon", "raster"}, restdata.Names(defaults))

	for _, ws := range []string{"sf", "topp"} {
		_, err := s.GS.Workspaces.Create(s.ctx, ws)
		s.Require().NoError(err)
	}
	name, err := s.GS.Styles.Publish(s.ctx, "topp", sld("thick"))
	s.Require().NoError(err)
	s.Equal("thick", name)
	_, err = s.GS.Styles.Publish(s.ctx, "sf", sld("thin"))
	s.Require().NoError(err)

	_, err = s.GS.Styles.Publish(s.ctx, "topp", sld("thick"))
	s.True(IsAlreadyExists(err))

	inTopp, err := s.GS.Styles.InWorkspace(s.ctx, "topp")
	s.Require().NoError(err)
	s.Equal([]string{"thick"}, restdata.Names(inTopp))

	others, err := s.GS.Styles.AllWorkspaceStyles(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"thin", "thick"}, restdata.Names(others))

	all, err := s.GS.Styles.All(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 7)
}

func (s *Suite) TestStyleInformation() {
	_, err := s.GS.Workspaces.Create(s.ctx, "topp")
	s.Require().NoError(err)
	_, err = s.GS.Styles.Publish(s.ctx, "topp", sld("thick"))
	s.Require().NoError(err)

	info, err := s.GS.Styles.Information(s.ctx, "thick", "topp")
	s.Require().NoError(err)
	s.Require().NotNil(info)
	s.Equal("thick", info.Name)
	s.Equal("topp", info.Workspace.Name)
	s.Equal("sld", info.Format)

	info, err = s.GS.Styles.Information(s.ctx, "point", "")
	s.Require().NoError(err)
	s.Require().NotNil(info)
	s.Equal("", info.Workspace.Name)

	info, err = s.GS.Styles.Information(s.ctx, "missing", "topp")
	s.NoError(err)
	s.Nil(info)
}

func (s *Suite) TestAssignStyle() {
	s.workspace("topp")
	_, err := s.GS.Layers.PublishFeatureType(s.ctx, "topp", "pg", restdata.Resource{Name: "roads"})
	s.Require().NoError(err)
	_, err = s.GS.Styles.Publish(s.ctx, "topp", sld("thick"))
	s.Require().NoError(err)

	s.Require().NoError(s.GS.Styles.AssignToLayer(s.ctx, "topp:roads", "thick", "topp", false))
	s.Require().NoError(s.GS.Styles.AssignToLayer(s.ctx, "topp:roads", "line", "", true))
	layer, err := s.GS.Layers.Get(s.ctx, "topp:roads")
	s.Require().NoError(err)
	s.Equal("line", layer.Get("layer", "defaultStyle", "name"))
	styles, _ := layer.Get("layer", "styles", "style").([]interface{})
	s.Len(styles, 1)

	err = s.GS.Styles.AssignToLayer(s.ctx, "topp:roads", "missing", "topp", false)
	s.True(IsNotFound(err))
	err = s.GS.Styles.AssignToLayer(s.ctx, "topp:missing", "thick", "topp", false)
	s.True(IsNotFound(err))

	err = s.GS.Styles.Delete(s.ctx, "topp", "thick", false, false)
	re := s.requireKind(err, KindNotEmpty)
	s.Equal(http.StatusForbidden, re.StatusCode)
	s.NoError(s.GS.Styles.Delete(s.ctx, "topp", "thick", true, true))
	s.True(IsNotFound(s.GS.Styles.Delete(s.ctx, "topp", "thick", true, true)))
}
