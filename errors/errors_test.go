// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package errors

import (
	"net"
	"testing"

	"github.com/pkg/errors"
)

func TestIsConnectionError(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"plain": {
			err:  errors.New("boom"),
			want: false,
		},
		"direct": {
			err:  NewConnectionError("10.0.0.1", &net.DNSError{Err: "no such host", Name: "idrac"}),
			want: true,
		},
		"wrapped": {
			err:  errors.Wrap(NewConnectionError("10.0.0.1", errors.New("refused")), "open session"),
			want: true,
		},
		"http error": {
			err:  &HTTPError{StatusCode: 500},
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsConnectionError(tt.err); got != tt.want {
				t.Errorf("IsConnectionError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAsHTTPError(t *testing.T) {
	he := &HTTPError{StatusCode: 401, Body: map[string]any{"error": "denied"}}

	got, ok := AsHTTPError(errors.Wrap(he, "read syslog"))
	if !ok {
		t.Fatal("expected HTTPError in chain")
	}

	if got != he {
		t.Errorf("got %v, want %v", got, he)
	}

	if he.Error() != "HTTP Error 401: Unauthorized" {
		t.Errorf("unexpected message %q", he.Error())
	}

	if _, ok := AsHTTPError(errors.New("other")); ok {
		t.Error("unexpected HTTPError match")
	}
}
