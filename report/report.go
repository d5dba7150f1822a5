// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package report builds the result envelope returned for every invocation.
package report

import (
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/types"
)

// Changed reports a successful change with the raw device response attached.
func Changed(msg string, status *types.DeviceCallResult) *types.OperationResult {
	return &types.OperationResult{
		Msg:     msg,
		Changed: true,
		Status:  status.Payload(),
	}
}

// Unchanged reports that nothing was changed on the device.
func Unchanged(msg string) *types.OperationResult {
	return &types.OperationResult{Msg: msg}
}

// Failed reports a business failure with the device response attached.
func Failed(msg string, status *types.DeviceCallResult) *types.OperationResult {
	return &types.OperationResult{
		Msg:    msg,
		Failed: true,
		Status: status.Payload(),
	}
}

// FromDeviceCall reports the outcome of a mutating device call: success
// carries successMsg, a rejected call carries the device message verbatim.
func FromDeviceCall(successMsg string, r *types.DeviceCallResult) *types.OperationResult {
	if r.Succeeded() {
		return Changed(successMsg, r)
	}

	return Failed(r.NativeMessage(), r)
}

// FromError converts a transport or environment error into an envelope.
// Unreachable devices are soft failures, HTTP errors carry the decoded error
// body as error_info, anything else is reported with its raw text.
func FromError(err error) *types.OperationResult {
	if err == nil {
		return nil
	}

	if idracerrors.IsConnectionError(err) {
		return &types.OperationResult{
			Msg:         err.Error(),
			Unreachable: true,
		}
	}

	if he, ok := idracerrors.AsHTTPError(err); ok {
		info := he.Body
		if info == nil && len(he.Raw) > 0 {
			info = map[string]any{"error": string(he.Raw)}
		}

		return &types.OperationResult{
			Msg:       he.Error(),
			Failed:    true,
			ErrorInfo: info,
		}
	}

	return &types.OperationResult{
		Msg:    err.Error(),
		Failed: true,
	}
}

// Normalize enforces the envelope invariants on r and returns it.
// Unreachable wins over Failed, and Changed is cleared whenever the
// invocation failed or the device was unreachable.
func Normalize(r *types.OperationResult) *types.OperationResult {
	if r == nil {
		return &types.OperationResult{Msg: "no result was produced", Failed: true}
	}

	if r.Unreachable {
		r.Failed = false
	}

	if r.Failed || r.Unreachable {
		r.Changed = false
	}

	return r
}
