// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed GeoServer call.
type ErrorKind int

const (
	// KindCommunication is any failure with no more specific
	// meaning: an unexpected status code, or the server could not
	// be reached at all.
	KindCommunication ErrorKind = iota

	// KindAlreadyExists means a create call named a resource that
	// already exists.
	KindAlreadyExists

	// KindNotEmpty means a delete call was refused because other
	// resources depend on the target and recursive deletion was
	// not requested.
	KindNotEmpty

	// KindNotFound means a delete or update call named a resource
	// that does not exist.
	KindNotFound

	// KindProtected means the target is a default or otherwise
	// protected resource that cannot be deleted.
	KindProtected
)

func (k ErrorKind) String() string {
	switch k {
	case KindCommunication:
		return "communication"
	case KindAlreadyExists:
		return "already exists"
	case KindNotEmpty:
		return "not empty"
	case KindNotFound:
		return "not found"
	case KindProtected:
		return "protected"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ResponseError is returned from every failing GeoServer call.
type ResponseError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// StatusCode is the HTTP status of the failing response, or
	// zero if no response was received.
	StatusCode int

	// Message is a human-readable description of the failure.
	Message string

	// Output holds the verbatim response body sent by GeoServer,
	// which usually explains the failure better than the status.
	Output string

	// Err is the underlying transport error, if no response was
	// received.
	Err error
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		b.WriteString(": ")
		b.WriteString(out)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying transport error, if any.
func (e *ResponseError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code of the failing response.  An
// error without a response reports 502 Bad Gateway.
func (e *ResponseError) HTTPStatus() int {
	if e.StatusCode == 0 {
		return http.StatusBadGateway
	}
	return e.StatusCode
}

func isKind(err error, kind ErrorKind) bool {
	var re *ResponseError
	return errors.As(err, &re) && re.Kind == kind
}

// IsCommunication says whether err is an unclassified GeoServer
// failure, including an unreachable server.
func IsCommunication(err error) bool { return isKind(err, KindCommunication) }

// IsAlreadyExists says whether err reports a create conflict.
func IsAlreadyExists(err error) bool { return isKind(err, KindAlreadyExists) }

// IsNotEmpty says whether err reports a delete blocked by dependents.
func IsNotEmpty(err error) bool { return isKind(err, KindNotEmpty) }

// IsNotFound says whether err reports a missing delete or update target.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsProtected says whether err reports a protected delete target.
func IsProtected(err error) bool { return isKind(err, KindProtected) }

// classification is the meaning of one status code for one family of
// operations.
type classification struct {
	Kind    ErrorKind
	Message string
}

// statusTable maps HTTP status codes to their meaning for one family
// of operations.
type statusTable map[int]classification

// classify rewrites an unclassified failure according to the table.
// Codes not in the table, transport failures and errors that are not
// a *ResponseError are returned unchanged.
func (t statusTable) classify(err error) error {
	var re *ResponseError
	if err == nil || !errors.As(err, &re) || re.Kind != KindCommunication {
		return err
	}
	c, known := t[re.StatusCode]
	if !known || re.StatusCode == 0 {
		return err
	}
	return &ResponseError{
		Kind:       c.Kind,
		StatusCode: re.StatusCode,
		Message:    c.Message,
		Output:     re.Output,
	}
}

// conflictTable is the table for create calls of a family whose
// conflict message is msg.
func conflictTable(msg string) statusTable {
	return statusTable{
		http.StatusConflict: {KindAlreadyExists, msg},
	}
}

// notFoundTable is the table for calls that only distinguish a
// missing target.
func notFoundTable(msg string) statusTable {
	return statusTable{
		http.StatusNotFound: {KindNotFound, msg},
	}
}
