// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package reconcile

import "github.com/srl-labs/idracctl/types"

// Decision is the outcome of change planning.
type Decision int

const (
	// NoOp means the device is already in the desired state.
	NoOp Decision = iota
	// WouldChange means a change is needed but the mode forbids mutation.
	WouldChange
	// Apply means the mutating device call must be made.
	Apply
)

func (d Decision) String() string {
	switch d {
	case NoOp:
		return "no-op"
	case WouldChange:
		return "would-change"
	case Apply:
		return "apply"
	}

	return "unknown"
}

// Changed reports whether the decision is reported as a change.
func (d Decision) Changed() bool {
	return d != NoOp
}

// Plan is the idempotency guard every reconciling controller goes through.
// A satisfied state is a NoOp in any mode, DryRun never yields Apply.
func Plan(satisfied bool, mode types.ExecutionMode) Decision {
	switch {
	case satisfied:
		return NoOp
	case mode == types.DryRun:
		return WouldChange
	default:
		return Apply
	}
}

// PlanSyslog compares the syslog states and plans the change.
func PlanSyslog(desired *types.DesiredSyslogConfig, current *types.CurrentSyslogConfig,
	mode types.ExecutionMode,
) (Decision, types.Diff) {
	diff := CompareSyslog(desired, current)

	return Plan(diff.Satisfied(), mode), diff
}
