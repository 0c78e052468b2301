// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

// WorkspaceBody creates a workspace.
type WorkspaceBody struct {
	Workspace WorkspaceRef `json:"workspace"`
}

// Namespace is a namespace prefix and its URI.
type Namespace struct {
	Prefix string `json:"prefix" mapstructure:"prefix"`
	URI    string `json:"uri" mapstructure:"uri"`
}

// NamespaceBody creates a namespace.
type NamespaceBody struct {
	Namespace Namespace `json:"namespace"`
}

// Resource describes a published resource: a feature type, a
// coverage, or a cascaded WMS or WMTS layer.  Empty optional fields
// take defaults when the resource is published; see WithDefaults.
type Resource struct {
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Title      string `json:"title"`
	SRS        string `json:"srs"`
	// Enabled is sent verbatim; an unset value publishes the
	// resource enabled.
	Enabled           *bool        `json:"enabled,omitempty"`
	Abstract          string       `json:"abstract"`
	NativeBoundingBox *BoundingBox `json:"nativeBoundingBox,omitempty"`
}

// DefaultSRS is the spatial reference system assumed when a resource
// is published without one.
const DefaultSRS = "EPSG:4326"

// WithDefaults fills in the optional fields of a resource: the native
// name and title default to the name, and the SRS to DefaultSRS.
func (r Resource) WithDefaults() Resource {
	if r.NativeName == "" {
		r.NativeName = r.Name
	}
	if r.Title == "" {
		r.Title = r.Name
	}
	if r.SRS == "" {
		r.SRS = DefaultSRS
	}
	if r.Enabled == nil {
		enabled := true
		r.Enabled = &enabled
	}
	return r
}

// BoundingBox is a native bounding box in some CRS.
type BoundingBox struct {
	MinX float64 `json:"minx"`
	MaxX float64 `json:"maxx"`
	MinY float64 `json:"miny"`
	MaxY float64 `json:"maxy"`
	CRS  string  `json:"crs"`
}

// FeatureTypeBody publishes a feature type.
type FeatureTypeBody struct {
	FeatureType Resource `json:"featureType"`
}

// CoverageBody publishes a coverage.
type CoverageBody struct {
	Coverage Resource `json:"coverage"`
}

// WMSLayerBody publishes a cascaded WMS layer.
type WMSLayerBody struct {
	WMSLayer Resource `json:"wmsLayer"`
}

// WMTSLayerBody publishes a cascaded WMTS layer.
type WMTSLayerBody struct {
	WMTSLayer Resource `json:"wmtsLayer"`
}

// Presentation values for a time dimension.
const (
	PresentationList             = "LIST"
	PresentationDiscreteInterval = "DISCRETE_INTERVAL"
	PresentationContinuous       = "CONTINUOUS_INTERVAL"
)

// TimeDimension configures the time dimension of a coverage or
// feature type.
type TimeDimension struct {
	// Attribute is the time attribute of a feature type.  It is
	// ignored for coverages.
	Attribute string
	// Presentation is one of the Presentation constants.
	Presentation string
	// Resolution is the interval in milliseconds for
	// DISCRETE_INTERVAL presentation.
	Resolution int64
	// DefaultValue is the default value strategy, such as
	// "MINIMUM", "MAXIMUM" or "NEAREST".
	DefaultValue           string
	NearestMatchEnabled    bool
	RawNearestMatchEnabled bool
	AcceptableInterval     string
}

// metadata builds the "metadata" member enabling this dimension.
func (t TimeDimension) metadata(withAttribute bool) Object {
	info := Object{
		"enabled":                true,
		"presentation":           t.Presentation,
		"units":                  "ISO8601",
		"defaultValue":           Object{"strategy": t.DefaultValue},
		"nearestMatchEnabled":    t.NearestMatchEnabled,
		"rawNearestMatchEnabled": t.RawNearestMatchEnabled,
		"acceptableInterval":     t.AcceptableInterval,
	}
	if t.Presentation == PresentationDiscreteInterval {
		info["resolution"] = t.Resolution
	}
	if withAttribute {
		info["attribute"] = t.Attribute
	}
	return Object{
		"entry": []interface{}{
			Object{"@key": "time", "dimensionInfo": info},
		},
	}
}

// CoverageTimeBody builds the update body enabling time on a coverage.
func (t TimeDimension) CoverageTimeBody() Object {
	return Object{"coverage": Object{"metadata": t.metadata(false)}}
}

// FeatureTypeTimeBody builds the update body enabling time on a
// feature type.
func (t TimeDimension) FeatureTypeTimeBody() Object {
	return Object{"featureType": Object{"metadata": t.metadata(true)}}
}

// CoverageBandsBody builds the update body renaming a coverage's bands.
func CoverageBandsBody(bands []string) Object {
	dims := make([]interface{}, len(bands))
	for i, band := range bands {
		dims[i] = Object{"name": band}
	}
	return Object{"coverage": Object{
		"dimensions": Object{"coverageDimension": dims},
	}}
}

// StyleInfo is the part of a style's representation needed to
// reference it from a layer.
type StyleInfo struct {
	Name      string       `json:"name" mapstructure:"name"`
	Workspace WorkspaceRef `json:"workspace,omitempty" mapstructure:"workspace"`
	Filename  string       `json:"filename,omitempty" mapstructure:"filename"`
	Format    string       `json:"format,omitempty" mapstructure:"format"`
}

// StyleBody associates a style with a layer.
type StyleBody struct {
	Style StyleInfo `json:"style"`
}

// VersionInfo is the body of about/version.json.
type VersionInfo struct {
	About About `json:"about"`
}

// About lists the version of each server component.
type About struct {
	Resource []VersionResource `json:"resource"`
}

// VersionResource is the version of one server component.
type VersionResource struct {
	Name           string `json:"@name"`
	Version        string `json:"Version,omitempty"`
	BuildTimestamp string `json:"Build-Timestamp,omitempty"`
	GitRevision    string `json:"Git-Revision,omitempty"`
}

// Component returns the version record named name, such as
// "GeoServer" or "GeoTools".
func (v *VersionInfo) Component(name string) (VersionResource, bool) {
	for _, r := range v.About.Resource {
		if r.Name == name {
			return r, true
		}
	}
	return VersionResource{}, false
}

// Contact is the server's contact information.
type Contact struct {
	Address      string `json:"address" mapstructure:"address"`
	City         string `json:"addressCity" mapstructure:"addressCity"`
	Country      string `json:"addressCountry" mapstructure:"addressCountry"`
	PostalCode   string `json:"addressPostalCode" mapstructure:"addressPostalCode"`
	State        string `json:"addressState" mapstructure:"addressState"`
	Email        string `json:"contactEmail" mapstructure:"contactEmail"`
	Organization string `json:"contactOrganization" mapstructure:"contactOrganization"`
	Person       string `json:"contactPerson" mapstructure:"contactPerson"`
	Phone        string `json:"contactVoice" mapstructure:"contactVoice"`
}

// ContactBody wraps contact information for settings/contact.
type ContactBody struct {
	Contact Contact `json:"contact" mapstructure:"contact"`
}

// User is a user of the default user/group service.
type User struct {
	UserName string `json:"userName,omitempty" mapstructure:"userName"`
	Password string `json:"password,omitempty" mapstructure:"password"`
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
}

// UserBody creates or updates a user.
type UserBody struct {
	User User `json:"user" mapstructure:"user"`
}

// UserList is the body of security/usergroup/users.json.
type UserList struct {
	Users []User `json:"users"`
}

// RoleList is the body of security/roles.json.
type RoleList struct {
	Roles []string `json:"roles"`
}
