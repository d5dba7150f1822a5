// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/srl-labs/idracctl/controller"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/types"
)

const (
	statePresent = "present"
	stateAbsent  = "absent"
)

func syslogCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "syslog",
		Short: "reconcile the remote syslog configuration",
		Long: "enable remote syslog with the given servers and port (--state present)\n" +
			"or disable it (--state absent); nothing is changed when the device already matches",
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			desired, err := desiredSyslog(o.Syslog)
			if err != nil {
				return err
			}

			return execute(cobraCmd.Context(), cobraCmd.OutOrStdout(), o,
				func() controller.Controller { return &controller.SyslogController{Desired: desired} },
				types.ModeFromCheck(o.Syslog.Check))
		},
	}

	c.Flags().StringVarP(&o.Syslog.State, "state", "s", o.Syslog.State,
		"desired remote syslog state, one of [\"present\", \"absent\"]")
	c.Flags().StringSliceVarP(&o.Syslog.Servers, "server", "", o.Syslog.Servers,
		"remote syslog server, up to 3; can be repeated or comma separated")
	c.Flags().IntVarP(&o.Syslog.Port, "syslog-port", "", o.Syslog.Port,
		"remote syslog port")
	c.Flags().BoolVarP(&o.Syslog.Check, "check", "c", o.Syslog.Check,
		"report whether changes would be made without applying them")

	return c, nil
}

func desiredSyslog(o *SyslogOptions) (*types.DesiredSyslogConfig, error) {
	switch o.State {
	case statePresent:
		return types.NewDesiredSyslogConfig(true, o.Servers, o.Port)
	case stateAbsent:
		return types.NewDesiredSyslogConfig(false, o.Servers, o.Port)
	default:
		return nil, errors.Wrapf(idracerrors.ErrIncorrectInput,
			"unknown syslog state %q, expected one of %q", o.State, []string{statePresent, stateAbsent})
	}
}
