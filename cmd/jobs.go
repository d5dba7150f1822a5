// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/srl-labs/idracctl/controller"
	"github.com/srl-labs/idracctl/types"
)

func jobsCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "jobs",
		Short: "manage lifecycle controller jobs",
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "delete a lifecycle controller job or the whole job queue",
		Long: "delete the job given by --job-id, or every job in the queue when no id is given\n" +
			"check mode is not supported for this operation",
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return execute(cobraCmd.Context(), cobraCmd.OutOrStdout(), o,
				func() controller.Controller { return controller.NewJobController(o.Jobs.JobID) },
				types.Apply)
		},
	}

	deleteCmd.Flags().StringVarP(&o.Jobs.JobID, "job-id", "j", o.Jobs.JobID,
		"id of the job to delete, e.g. JID_801841929470; the whole queue is cleared when unset")

	c.AddCommand(deleteCmd)

	return c, nil
}
