// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a REST skeleton framework.
//
// GeoServer picks a representation from the path suffix rather than
// the Accept: header, and answers creation and errors with plain
// text, so this deals only with JSON and text.  The suffix itself is
// stripped before routing; see stripJSON.

import (
	"fmt"
	"io/ioutil"
	"mime"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/sirupsen/logrus"
)

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
type responseCreated struct {
	// Location holds the canonical URL to the newly created resource.
	Location string

	// Name is sent as the plain-text body of the response.
	Name string
}

// textResponse is returned from handler functions that answer with
// plain text.
type textResponse string

type resourceHandler struct {
	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, returns a representation of the object.
	Get func(*context) (interface{}, error)

	// Put, if non-nil, updates the object.  The body is a
	// restdata.Object for JSON requests and a []byte otherwise.
	Put func(*context, interface{}) (interface{}, error)

	// Post, if non-nil, takes some arbitrary action, usually
	// creating a resource.  The body is passed as for Put.
	Post func(*context, interface{}) (interface{}, error)

	// Delete, if non-nil, deletes the object.
	Delete func(*context) (interface{}, error)

	// Log receives one entry for every failed request.
	Log logrus.FieldLogger
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx     *context
		in, out interface{}
		err     error
	)

	ctx, err = h.Context(req)

	// Read the body, if it's there
	if err == nil && (req.Method == http.MethodPut || req.Method == http.MethodPost) {
		in, err = readBody(req)
	}

	// Actually call the handler method
	if err == nil {
		// We will return this if the method is unexpected or
		// we don't have a handler for it
		err = errMethodNotAllowed{Method: req.Method}
		switch req.Method {
		case http.MethodGet, http.MethodHead:
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case http.MethodPut:
			if h.Put != nil {
				out, err = h.Put(ctx, in)
			}
		case http.MethodPost:
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		case http.MethodDelete:
			if h.Delete != nil {
				out, err = h.Delete(ctx)
			}
		}
	}

	if err != nil {
		status := restdata.StatusOf(err)
		if h.Log != nil {
			h.Log.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"status": status,
			}).WithError(err).Debug("request failed")
		}
		writeText(resp, status, err.Error())
		return
	}

	switch o := out.(type) {
	case nil:
		resp.WriteHeader(http.StatusOK)
	case responseCreated:
		if o.Location != "" {
			resp.Header().Set("Location", o.Location)
		}
		writeText(resp, http.StatusCreated, o.Name)
	case textResponse:
		writeText(resp, http.StatusOK, string(o))
	default:
		resp.Header().Set("Content-Type", restdata.JSONMediaType)
		resp.WriteHeader(http.StatusOK)
		if req.Method != http.MethodHead {
			// Past the status line there is no way to
			// report a failure
			_ = restdata.Encode(resp, out)
		}
	}
}

// readBody decodes a JSON request body into a restdata.Object, and
// returns any other body as raw bytes.
func readBody(req *http.Request) (interface{}, error) {
	contentType := req.Header.Get("Content-Type")
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return nil, restdata.ErrBadRequest{Err: err}
		}
		if restdata.IsJSON(mediaType) {
			obj := restdata.Object{}
			if err := restdata.Decode(contentType, req.Body, &obj); err != nil {
				return nil, restdata.ErrBadRequest{Err: err}
			}
			return obj, nil
		}
	}
	body, err := ioutil.ReadAll(req.Body)
	if err != nil {
		return nil, restdata.ErrBadRequest{Err: err}
	}
	return body, nil
}

func writeText(resp http.ResponseWriter, status int, text string) {
	resp.Header().Set("Content-Type", restdata.TextMediaType)
	resp.WriteHeader(status)
	_, _ = resp.Write([]byte(text))
}
