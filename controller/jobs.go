// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

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
	"github.com/srl-labs/idracctl/utils"
)

// noJobIDPlaceholder stands for the job id in failure messages when the
// whole queue was targeted. Existing automation matches on this text.
const noJobIDPlaceholder = "None"

// JobController deletes one job or the whole job queue.
// Job deletion is a command, so it has no desired state and no check mode.
type JobController struct {
	// JobID selects a single job; nil deletes every job in the queue.
	JobID *string
}

// NewJobController returns a controller for id, an empty id targets the whole queue.
func NewJobController(id string) *JobController {
	if id == "" {
		return &JobController{}
	}

	return &JobController{JobID: utils.Pointer(id)}
}

func (*JobController) Name() string { return "jobs delete" }

func (*JobController) SupportsCheckMode() bool { return false }

func (c *JobController) Run(ctx context.Context, s session.Session, mode types.ExecutionMode) (*types.OperationResult, error) {
	if mode == types.DryRun {
		return nil, errors.Wrap(idracerrors.ErrUnsupportedCheckMode, c.Name())
	}

	var (
		r      *types.DeviceCallResult
		err    error
		target = "job queue"
		label  = noJobIDPlaceholder
	)

	if c.JobID != nil {
		target, label = "job", *c.JobID
		log.Debugf("deleting job %s", label)
		r, err = s.DeleteJob(ctx, *c.JobID)
	} else {
		log.Debug("deleting all jobs in the job queue")
		r, err = s.DeleteAllJobs(ctx)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete the %s", target)
	}

	if r == nil {
		return nil, errors.Errorf("device returned no result for %s deletion", target)
	}

	if !r.Succeeded() {
		return report.Failed(fmt.Sprintf("Failed to delete the Job: %s.", label), r), nil
	}

	return report.Changed(fmt.Sprintf("Successfully deleted the %s.", target), r), nil
}
