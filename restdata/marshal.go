// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"io"
	"io/ioutil"
	"mime"
	"reflect"

	"github.com/ugorji/go/codec"
)

// jsonHandle returns a codec handle that decodes untyped JSON objects
// as map[string]interface{} and untyped integers as int64, so decoded
// values can be used directly as an Object.  Map keys are written in
// sorted order.
func jsonHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	h.SignedInteger = true
	h.Canonical = true
	return h
}

// Encode writes the JSON encoding of in to w.
func Encode(w io.Writer, in interface{}) error {
	return codec.NewEncoder(w, jsonHandle()).Encode(in)
}

// EncodeBytes returns the JSON encoding of in.
func EncodeBytes(in interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.  JSON bodies
// are decoded with the JSON codec; if out is a *string or *[]byte,
// any body is copied into it verbatim.
func Decode(contentType string, r io.Reader, out interface{}) error {
	switch o := out.(type) {
	case *string:
		b, err := ioutil.ReadAll(r)
		if err == nil {
			*o = string(b)
		}
		return err
	case *[]byte:
		b, err := ioutil.ReadAll(r)
		if err == nil {
			*o = b
		}
		return err
	}

	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}
	if !IsJSON(mediaType) {
		return ErrUnsupportedMediaType{Type: mediaType}
	}
	return codec.NewDecoder(r, jsonHandle()).Decode(out)
}

// IsJSON says whether a media type (without parameters) carries JSON.
func IsJSON(mediaType string) bool {
	switch mediaType {
	case JSONMediaType, "text/json", "application/javascript":
		return true
	}
	return false
}
