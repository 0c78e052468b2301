// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/jtacoma/uritemplates"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Doer performs HTTP requests.  *http.Client satisfies it.  Timeouts,
// retries and connection reuse are entirely the Doer's business.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// connection holds everything needed to talk to one GeoServer.  It is
// built once by NewFromConfig and never modified, so it is shared by
// every resource client and safe for concurrent use.
type connection struct {
	// baseURL is the REST root, always ending in "/".
	baseURL string

	// auth is the complete Authorization header value.
	auth string

	client Doer
	log    logrus.FieldLogger
	fs     afero.Fs
}

func newConnection(cfg Config) *connection {
	baseURL := cfg.URL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &connection{
		baseURL: baseURL,
		auth:    basicAuth(cfg.User, cfg.Password),
		client:  cfg.HTTPClient,
		log:     cfg.Logger,
		fs:      cfg.Fs,
	}
	if c.client == nil {
		c.client = http.DefaultClient
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	return c
}

// basicAuth encodes an Authorization header value for HTTP Basic
// authentication.
func basicAuth(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

// url expands an RFC 6570 URI template relative to the REST root.
// Simple {var} expansions are percent-encoded; use {+var} for values
// such as qualified layer names that contain reserved characters.
func (c *connection) url(template string, vars map[string]interface{}) (string, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return "", err
	}
	if vars == nil {
		vars = map[string]interface{}{}
	}
	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return "", err
	}
	return c.baseURL + expanded, nil
}

// do performs some HTTP action.  If in is non-nil, it is serialized
// as JSON and sent as the body of, for instance, a POST request.  If
// out is non-nil, the response data (if any) is deserialized into
// this object, which must be of pointer type; a *string receives the
// response text.
func (c *connection) do(ctx context.Context, method, url string, in, out interface{}) error {
	if in == nil {
		return c.send(ctx, method, url, "", nil, 0, out)
	}
	body, err := restdata.EncodeBytes(in)
	if err != nil {
		return err
	}
	return c.send(ctx, method, url, restdata.JSONMediaType, bytes.NewReader(body), int64(len(body)), out)
}

// send performs an HTTP action with an arbitrary body of the given
// content type and size.  A negative size means unknown.
func (c *connection) send(ctx context.Context, method, url, contentType string, body io.Reader, size int64, out interface{}) (err error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.auth)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
		if size >= 0 {
			req.ContentLength = size
			req.Header.Set("Content-Length", strconv.FormatInt(size, 10))
		}
	}
	if _, isText := out.(*string); out != nil && !isText {
		req.Header.Set("Accept", restdata.JSONMediaType)
	}

	log := c.log.WithFields(logrus.Fields{
		"method": method,
		"url":    url,
	})
	resp, err := c.client.Do(req)
	if err != nil {
		log.WithField("err", err).Debug("GeoServer request failed")
		return &ResponseError{
			Kind:    KindCommunication,
			Message: "GeoServer request failed",
			Err:     err,
		}
	}
	defer func() {
		err = firstError(err, resp.Body.Close())
	}()
	log.WithField("status", resp.StatusCode).Debug("GeoServer request")

	if err = checkHTTPStatus(resp); err != nil {
		return err
	}
	if out != nil {
		err = restdata.Decode(resp.Header.Get("Content-Type"), resp.Body, out)
	}
	return err
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.  The error carries the full response text.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return &ResponseError{
		Kind:       KindCommunication,
		StatusCode: resp.StatusCode,
		Message:    "General GeoServer response error",
		Output:     string(body),
	}
}

// getOrAbsent retrieves a single item into out.  If the request
// fails, the server's version endpoint is probed: if the server
// answers, the item is taken not to exist and found is false with a
// nil error; otherwise the original failure is returned.
//
// GeoServer does not reliably report a missing item with 404, so a
// failure alone cannot tell "no such item" from "no such server".
func (c *connection) getOrAbsent(ctx context.Context, url string, out interface{}) (found bool, err error) {
	err = c.do(ctx, http.MethodGet, url, nil, out)
	if err == nil {
		return true, nil
	}
	if c.probe(ctx) {
		return false, nil
	}
	var re *ResponseError
	if !errors.As(err, &re) {
		err = &ResponseError{Kind: KindCommunication, Message: "General GeoServer response error", Err: err}
	}
	return false, err
}

// getObject retrieves a single item from a URI template, following
// the getOrAbsent pattern.  A missing item is a nil Object and a nil
// error.
func (c *connection) getObject(ctx context.Context, template string, vars map[string]interface{}) (restdata.Object, error) {
	url, err := c.url(template, vars)
	if err != nil {
		return nil, err
	}
	var obj restdata.Object
	found, err := c.getOrAbsent(ctx, url, &obj)
	if !found {
		return nil, err
	}
	return obj, nil
}

// getFrom retrieves an item from a URI template, failing on any error.
func (c *connection) getFrom(ctx context.Context, template string, vars map[string]interface{}, out interface{}) error {
	url, err := c.url(template, vars)
	if err == nil {
		err = c.do(ctx, http.MethodGet, url, nil, out)
	}
	return err
}

// getLinks retrieves a collection listing from a URI template.
func (c *connection) getLinks(ctx context.Context, template string, vars map[string]interface{}, outer, inner string) ([]restdata.NamedLink, error) {
	var obj restdata.Object
	if err := c.getFrom(ctx, template, vars, &obj); err != nil {
		return nil, err
	}
	return obj.Links(outer, inner)
}

// postTo submits data to a URI template.  Failures are classified by
// table.
func (c *connection) postTo(ctx context.Context, template string, vars map[string]interface{}, table statusTable, in, out interface{}) error {
	return c.action(ctx, http.MethodPost, template, vars, table, in, out)
}

// putTo updates a resource at a URI template.  Failures are
// classified by table.
func (c *connection) putTo(ctx context.Context, template string, vars map[string]interface{}, table statusTable, in, out interface{}) error {
	return c.action(ctx, http.MethodPut, template, vars, table, in, out)
}

// deleteAt deletes the resource at a URI template.  Failures are
// classified by table.
func (c *connection) deleteAt(ctx context.Context, template string, vars map[string]interface{}, table statusTable) error {
	return c.action(ctx, http.MethodDelete, template, vars, table, nil, nil)
}

func (c *connection) action(ctx context.Context, method, template string, vars map[string]interface{}, table statusTable, in, out interface{}) error {
	url, err := c.url(template, vars)
	if err == nil {
		err = table.classify(c.do(ctx, method, url, in, out))
	}
	return err
}

// create posts a creation body and returns the identifier GeoServer
// sends back, usually as the bare response text.
func (c *connection) create(ctx context.Context, template string, vars map[string]interface{}, table statusTable, in interface{}) (string, error) {
	var text string
	err := c.postTo(ctx, template, vars, table, in, &text)
	if err != nil {
		return "", err
	}
	return createdName(text), nil
}

// createdName extracts the new item's name from a creation response.
// A JSON object names it either directly, as {"name":...}, or inside
// a single wrapper such as {"workspace":{"name":...}}.  Anything else
// is taken to be the name itself.
func createdName(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return text
	}
	var obj restdata.Object
	if err := restdata.Decode(restdata.JSONMediaType, strings.NewReader(text), &obj); err != nil {
		return text
	}
	if name, ok := obj.Get("name").(string); ok {
		return name
	}
	if len(obj) == 1 {
		for key := range obj {
			if name, ok := obj.Get(key, "name").(string); ok {
				return name
			}
		}
	}
	return text
}

// sendText sends a plain-text body, such as a server-side file path,
// to a URI template.
func (c *connection) sendText(ctx context.Context, method, template string, vars map[string]interface{}, table statusTable, contentType, text string) (string, error) {
	url, err := c.url(template, vars)
	if err != nil {
		return "", err
	}
	var result string
	err = c.send(ctx, method, url, contentType, strings.NewReader(text), int64(len(text)), &result)
	return result, table.classify(err)
}

// sendFile streams a local file as the body of a request to a URI
// template, with an explicit Content-Length.  The file is closed on
// every path.
func (c *connection) sendFile(ctx context.Context, method, template string, vars map[string]interface{}, table statusTable, contentType, path string) (result string, err error) {
	url, err := c.url(template, vars)
	if err != nil {
		return "", err
	}
	f, err := c.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		// The transport may already have closed it
		_ = f.Close()
	}()
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	err = c.send(ctx, method, url, contentType, f, info.Size(), &result)
	return result, table.classify(err)
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
