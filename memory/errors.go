// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

// ErrNotFound is returned when a named object does not exist.
type ErrNotFound struct {
	What string
	Name string
}

func (err ErrNotFound) Error() string {
	return fmt.Sprintf("No such %s: %s", err.What, err.Name)
}

// HTTPStatus returns 404 Not Found.
func (err ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrAlreadyExists is returned when creating an object whose name is
// taken.  GeoServer usually reports this as 409 Conflict, but not for
// every kind of object.
type ErrAlreadyExists struct {
	What   string
	Name   string
	Status int
}

func (err ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s '%s' already exists", err.What, err.Name)
}

// HTTPStatus returns Status, or 409 Conflict if unset.
func (err ErrAlreadyExists) HTTPStatus() int {
	if err.Status == 0 {
		return http.StatusConflict
	}
	return err.Status
}

// ErrNotEmpty is returned when deleting an object that others depend
// on without asking for a recursive delete.  The status code depends
// on the kind of object.
type ErrNotEmpty struct {
	What   string
	Name   string
	Status int
}

func (err ErrNotEmpty) Error() string {
	return fmt.Sprintf("%s '%s' is not empty", err.What, err.Name)
}

// HTTPStatus returns Status.
func (err ErrNotEmpty) HTTPStatus() int {
	return err.Status
}

// ErrProtected is returned when deleting the default namespace.
type ErrProtected struct {
	What string
	Name string
}

func (err ErrProtected) Error() string {
	return fmt.Sprintf("Can't delete default %s '%s'", err.What, err.Name)
}

// HTTPStatus returns 405 Method Not Allowed.
func (err ErrProtected) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

func errBadRequest(msg string) error {
	return restdata.ErrBadRequest{Err: errors.New(msg)}
}
