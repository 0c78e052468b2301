// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"fmt"
	"net/http"
)

// ErrorStatus is implemented by errors that the REST server reports
// with a particular status code.
type ErrorStatus interface {
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned by Decode for a body that is not
// JSON.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("cannot decode %q, only JSON bodies are accepted", e.Type)
}

// HTTPStatus is always 415.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrBadRequest wraps a malformed header, query parameter or body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// Unwrap returns the embedded error.
func (e ErrBadRequest) Unwrap() error {
	return e.Err
}

// HTTPStatus is always 400.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// StatusOf returns the HTTP status an error maps to, or
// 500 Internal Server Error if it does not carry one.
func StatusOf(err error) int {
	if withStatus, ok := err.(ErrorStatus); ok {
		return withStatus.HTTPStatus()
	}
	return http.StatusInternalServerError
}
