// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines the data structures shared between the
// restclient package and the restserver test double.  These are the
// shapes the GeoServer administrative REST API sends and accepts.
//
// Most GeoServer representations are large and loosely specified, so
// single resources travel as an untyped Object.  Collections, store
// creation bodies and a handful of small documents (version, contact,
// users) have typed representations here.
//
// Collections
//
// A collection of named resources is wrapped twice:
//
//     {"workspaces": {"workspace": [{"name": "a", "href": "..."}]}}
//
// An empty collection is sent as an empty string instead of an
// object:
//
//     {"workspaces": ""}
//
// Object.Links understands both forms.
package restdata

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// JSONMediaType is the MIME type of most request and response bodies.
const JSONMediaType = "application/json"

// TextMediaType is used for plain-text responses (such as the name of
// a newly created resource) and for server-side file paths.
const TextMediaType = "text/plain"

// SLDMediaType is the MIME type of a Styled Layer Descriptor document.
const SLDMediaType = "application/vnd.ogc.sld+xml"

// TIFFMediaType is the MIME type of a GeoTIFF upload.
const TIFFMediaType = "image/tiff"

// ZipMediaType is the MIME type of an image mosaic archive upload.
const ZipMediaType = "application/zip"

// Object is an arbitrary decoded JSON object.
type Object map[string]interface{}

// Get walks a path of keys through nested objects.  Returns nil if
// any step along the way is missing or is not an object.
func (o Object) Get(keys ...string) interface{} {
	var cur interface{} = map[string]interface{}(o)
	for _, key := range keys {
		m, ok := asMap(cur)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

// Set assigns a value at a path of keys, creating intermediate objects
// as needed.  An intermediate value that is not an object is replaced.
func (o Object) Set(value interface{}, keys ...string) {
	if len(keys) == 0 {
		return
	}
	cur := map[string]interface{}(o)
	for _, key := range keys[:len(keys)-1] {
		next, ok := asMap(cur[key])
		if !ok {
			next = make(map[string]interface{})
			cur[key] = next
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = value
}

// Links decodes a doubly-wrapped collection of named resources, such
// as the body of workspaces.json with outer "workspaces" and inner
// "workspace".  A missing or empty-string collection yields an empty
// slice.
func (o Object) Links(outer, inner string) ([]NamedLink, error) {
	links := []NamedLink{}
	wrapper, ok := asMap(o[outer])
	if !ok {
		return links, nil
	}
	items := wrapper[inner]
	if items == nil {
		return links, nil
	}
	// A single item is sometimes sent bare rather than as a list
	if _, single := asMap(items); single {
		items = []interface{}{items}
	}
	if err := DecodeObject(items, &links); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", outer, err)
	}
	return links, nil
}

// NamedLink is one entry of a collection listing.
type NamedLink struct {
	Name string `json:"name" mapstructure:"name"`
	Href string `json:"href,omitempty" mapstructure:"href"`
}

// Names returns just the names of a list of links.
func Names(links []NamedLink) []string {
	names := make([]string, len(links))
	for i, link := range links {
		names[i] = link.Name
	}
	return names
}

// DecodeObject converts a generic decoded value into a typed structure
// using its mapstructure tags.  Scalars are converted weakly, since
// GeoServer freely sends numbers and booleans as strings.
func DecodeObject(in, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Object:
		return m, true
	}
	return nil, false
}

// Entry is one key/value pair of a GeoServer association list, such
// as a data store's connection parameters.
type Entry struct {
	Key   string      `json:"@key" mapstructure:"@key"`
	Value interface{} `json:"$" mapstructure:"$"`
}

// Entries wraps an association list the way GeoServer expects it.
type Entries struct {
	Entry []Entry `json:"entry"`
}

// Lookup returns the value for key, and whether it was present.
func (e Entries) Lookup(key string) (interface{}, bool) {
	for _, entry := range e.Entry {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}
