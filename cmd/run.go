// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/srl-labs/idracctl/controller"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/inventory"
	"github.com/srl-labs/idracctl/report"
	"github.com/srl-labs/idracctl/session"
	"github.com/srl-labs/idracctl/types"
	"github.com/srl-labs/idracctl/utils"
	"golang.org/x/sync/errgroup"
)

// errDevicesFailed is returned when at least one device failed or was unreachable,
// so that the process exits with a non-zero code after the results are printed.
var errDevicesFailed = errors.New("one or more devices failed")

func errUnknownFormat(f string) error {
	return errors.Wrapf(idracerrors.ErrIncorrectInput, "unknown output format %q, expected one of %s",
		f, quotedList([]string{report.FormatJSON, report.FormatTable}))
}

// target is a device an operation runs against.
type target struct {
	name      string
	transport string
	creds     *session.Credentials
}

// readPassword is replaced in tests.
var readPassword = func() (string, error) {
	if !utils.IsTerminal(os.Stdin.Fd()) {
		return "", nil
	}

	return utils.ReadPasswordFromTerminal("password: ")
}

// targets resolves the devices to run against, either from the inventory
// file or from the device flags.
func targets(o *Options) ([]*target, error) {
	var ts []*target

	if o.Global.Inventory == "" {
		ts = []*target{{
			name:      o.Device.Address,
			transport: o.Device.Transport,
			creds:     o.Device.credentials(),
		}}
	} else {
		inv, err := inventory.Load(o.Global.Inventory)
		if err != nil {
			return nil, err
		}

		ts, err = inventoryTargets(inv, o)
		if err != nil {
			return nil, err
		}
	}

	return ts, fillPasswords(ts)
}

func inventoryTargets(inv *inventory.Inventory, o *Options) ([]*target, error) {
	limit := map[string]bool{}
	for _, n := range o.Global.Limit {
		limit[n] = true
	}

	ts := make([]*target, 0, len(inv.Devices))

	for _, d := range inv.Devices {
		if len(limit) > 0 && !limit[d.Name] {
			continue
		}

		c, err := d.Credentials()
		if err != nil {
			return nil, err
		}

		// device flags act as defaults for the inventory entries
		if c.Port == 0 {
			c.Port = o.Device.Port
		}

		if c.Username == "" {
			c.Username = o.Device.Username
		}

		if c.Password == "" {
			c.Password = o.Device.Password
		}

		if d.Insecure == nil {
			c.InsecureSkipVerify = o.Device.Insecure
		}

		if c.Timeout == 0 {
			c.Timeout = o.Device.Timeout
		}

		tr := d.Transport
		if tr == "" {
			tr = o.Device.Transport
		}

		ts = append(ts, &target{name: d.Name, transport: tr, creds: c})
	}

	if len(ts) == 0 {
		return nil, errors.Wrapf(idracerrors.ErrIncorrectInput,
			"no inventory devices match the limit %q", o.Global.Limit)
	}

	return ts, nil
}

// fillPasswords prompts once for a password shared by all targets missing one.
func fillPasswords(ts []*target) error {
	var (
		pass     string
		prompted bool
	)

	for _, t := range ts {
		if t.creds.Password != "" {
			continue
		}

		if !prompted {
			p, err := readPassword()
			if err != nil {
				return errors.Wrap(err, "failed to read password")
			}

			pass, prompted = p, true
		}

		t.creds.Password = pass
	}

	return nil
}

// runOnTargets invokes the controller built by newCtrl on every target,
// at most o.Global.Parallel at a time, and returns the results in target order.
func runOnTargets(ctx context.Context, o *Options, ts []*target,
	newCtrl func() controller.Controller, mode types.ExecutionMode,
) []report.DeviceResult {
	results := make([]report.DeviceResult, len(ts))

	g := new(errgroup.Group)
	if o.Global.Parallel > 0 {
		g.SetLimit(o.Global.Parallel)
	}

	for i, t := range ts {
		i, t := i, t
		g.Go(func() error {
			runID := uuid.NewString()
			logger := log.WithFields(log.Fields{
				"device": t.name,
				"run_id": runID,
			})

			logger.Debugf("running with %s transport", t.transport)

			var res *types.OperationResult

			opener, err := session.GetOpener(t.transport)
			if err != nil {
				res = report.Normalize(report.FromError(err))
			} else {
				res = controller.Invoke(ctx, opener, t.creds, newCtrl(), mode)
			}

			switch {
			case res.Unreachable:
				logger.Warn(res.Msg)
			case res.Failed:
				logger.Error(res.Msg)
			default:
				logger.Info(res.Msg)
			}

			results[i] = report.DeviceResult{Device: t.name, RunID: runID, OperationResult: res}

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// execute resolves the targets, runs the operation and renders the results.
func execute(ctx context.Context, w io.Writer, o *Options, newCtrl func() controller.Controller,
	mode types.ExecutionMode,
) error {
	ts, err := targets(o)
	if err != nil {
		return err
	}

	results := runOnTargets(ctx, o, ts, newCtrl, mode)

	if err := report.Render(w, o.Global.Format, results); err != nil {
		return err
	}

	if report.AnyFailed(results) {
		return errDevicesFailed
	}

	return nil
}

func quotedList(l []string) string {
	q := make([]string, 0, len(l))
	for _, s := range l {
		q = append(q, fmt.Sprintf("%q", s))
	}

	return "[" + strings.Join(q, ", ") + "]"
}
