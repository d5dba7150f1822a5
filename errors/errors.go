// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package errors holds the error taxonomy shared by the device transports,
// the controllers and the result reporter.
package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrFileNotFound is returned when a file is not found.
var ErrFileNotFound = errors.New("file not found")

// ErrIncorrectInput is returned when the user input is incorrect.
var ErrIncorrectInput = errors.New("incorrect input")

// ErrUnsupportedCheckMode is returned when a controller is asked to run in check mode
// but only models imperative commands.
var ErrUnsupportedCheckMode = errors.New("check mode is not supported")

// ErrUnknownTransport is returned when no device transport is registered under a name.
var ErrUnknownTransport = errors.New("unknown transport")

// ConnectionError reports that the managed device could not be reached:
// dial, DNS or TLS handshake failures. It is a soft failure.
type ConnectionError struct {
	Address string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: device unreachable: %v", e.Address, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError wraps err as a ConnectionError for the given address.
func NewConnectionError(addr string, err error) *ConnectionError {
	return &ConnectionError{Address: addr, Err: err}
}

// HTTPError is an HTTP-style error response returned by the device.
// Body holds the decoded JSON error document when the device sent one.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       map[string]any
	Raw        []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsConnectionError reports whether any error in err's chain is a ConnectionError.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// AsHTTPError returns the first HTTPError in err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}

	return nil, false
}
