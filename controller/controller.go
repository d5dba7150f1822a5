// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package controller implements the job and syslog controllers and the
// invocation boundary that runs them against one device.
package controller

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/report"
	"github.com/srl-labs/idracctl/session"
	"github.com/srl-labs/idracctl/types"
)

// Controller performs one operation over an open device session.
type Controller interface {
	// Name identifies the operation in logs and messages.
	Name() string
	// SupportsCheckMode reports whether the controller can run in DryRun mode.
	SupportsCheckMode() bool
	// Run performs the operation. Device-reported failures are returned as
	// failed results, errors are reserved for transport and input problems.
	Run(ctx context.Context, s session.Session, mode types.ExecutionMode) (*types.OperationResult, error)
}

// Invoke opens a session to the device, runs c over it and closes the session.
// Every outcome, including a panic, is converted into a result envelope.
func Invoke(ctx context.Context, o session.Opener, creds *session.Credentials, c Controller,
	mode types.ExecutionMode,
) (res *types.OperationResult) {
	switch {
	case o == nil:
		return report.Normalize(report.FromError(errors.New("no session opener given")))
	case creds == nil:
		return report.Normalize(report.FromError(errors.Wrap(idracerrors.ErrIncorrectInput, "no device credentials given")))
	case c == nil:
		return report.Normalize(report.FromError(errors.New("no controller given")))
	}

	logger := log.WithFields(log.Fields{
		"device": creds.Address,
		"op":     c.Name(),
		"mode":   mode.String(),
	})

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("recovered from panic: %v", r)
			res = report.FromError(fmt.Errorf("%s: %v", c.Name(), r))
		}

		res = report.Normalize(res)
		logger.Debugf("result: changed=%t failed=%t unreachable=%t msg=%q",
			res.Changed, res.Failed, res.Unreachable, res.Msg)
	}()

	if mode == types.DryRun && !c.SupportsCheckMode() {
		return report.FromError(errors.Wrap(idracerrors.ErrUnsupportedCheckMode, c.Name()))
	}

	if err := creds.Validate(); err != nil {
		return report.FromError(err)
	}

	err := session.With(ctx, o, creds, func(s session.Session) error {
		var err error
		res, err = c.Run(ctx, s, mode)

		return err
	})
	if err != nil {
		logger.Debugf("operation error: %v", err)
		return report.FromError(err)
	}

	return res
}
