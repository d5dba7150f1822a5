// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package controller

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/srl-labs/idracctl/reconcile"
	"github.com/srl-labs/idracctl/report"
	"github.com/srl-labs/idracctl/session"
	"github.com/srl-labs/idracctl/types"
)

const (
	msgNoChanges      = "No changes found to be applied."
	msgChangesFound   = "Changes found to be applied."
	msgSyslogEnabled  = "Successfully configured remote syslog."
	msgSyslogDisabled = "Successfully disabled remote syslog."
)

// SyslogController reconciles the remote syslog settings to Desired.
type SyslogController struct {
	Desired *types.DesiredSyslogConfig
}

func (*SyslogController) Name() string { return "syslog" }

func (*SyslogController) SupportsCheckMode() bool { return true }

func (c *SyslogController) Run(ctx context.Context, s session.Session, mode types.ExecutionMode) (*types.OperationResult, error) {
	if c.Desired == nil {
		return nil, errors.New("no desired syslog configuration given")
	}

	if err := c.Desired.Validate(); err != nil {
		return nil, err
	}

	current, err := s.ReadSyslogConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the remote syslog configuration")
	}

	decision, diff := reconcile.PlanSyslog(c.Desired, current, mode)
	log.Debugf("syslog: desired %s, decision %s, %d difference(s)", c.Desired, decision, len(diff))

	switch decision {
	case reconcile.NoOp:
		return report.Unchanged(msgNoChanges), nil
	case reconcile.WouldChange:
		return &types.OperationResult{Msg: msgChangesFound, Changed: true, Diff: diff}, nil
	}

	var (
		r   *types.DeviceCallResult
		msg string
	)

	if c.Desired.Enabled {
		msg = msgSyslogEnabled
		r, err = s.ApplySyslogEnable(ctx, c.Desired.Port, c.Desired.PaddedServers())
	} else {
		msg = msgSyslogDisabled
		r, err = s.ApplySyslogDisable(ctx)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to apply the remote syslog configuration")
	}

	if r == nil {
		return nil, errors.New("device returned no result for the syslog change")
	}

	res := report.FromDeviceCall(msg, r)
	if res.Changed {
		res.Diff = diff
	}

	return res, nil
}
