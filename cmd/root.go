// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srl-labs/idracctl/report"
	"github.com/srl-labs/idracctl/session"
	_ "github.com/srl-labs/idracctl/session/all"
)

const rootCmdName = "idracctl"

// Entrypoint returns the root command with all subcommands attached.
func Entrypoint() (*cobra.Command, error) {
	o := GetOptions()

	c := &cobra.Command{
		Use:   rootCmdName,
		Short: "manage Dell iDRAC lifecycle controller jobs and remote syslog",
		PersistentPreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			return preRunFn(cobraCmd, o)
		},
		SilenceUsage: true,
	}

	c.PersistentFlags().CountVarP(&o.Global.DebugCount, "debug", "d", "enable debug mode")
	c.PersistentFlags().StringVarP(&o.Global.LogLevel, "log-level", "", o.Global.LogLevel,
		"logging level; one of [trace, debug, info, warning, error, fatal]")
	c.PersistentFlags().StringVarP(&o.Global.Format, "format", "f", o.Global.Format,
		"output format. One of [json, table]")
	c.PersistentFlags().StringVarP(&o.Global.Inventory, "inventory", "i", o.Global.Inventory,
		"path to the inventory file listing the devices to run against")
	_ = c.MarkPersistentFlagFilename("inventory", "*.yaml", "*.yml")
	c.PersistentFlags().StringSliceVarP(&o.Global.Limit, "limit", "", o.Global.Limit,
		"comma separated list of inventory device names to run against")
	c.PersistentFlags().IntVarP(&o.Global.Parallel, "parallel", "", o.Global.Parallel,
		"maximum number of devices processed concurrently")
	c.PersistentFlags().StringVarP(&o.Global.EnvFile, "env-file", "", o.Global.EnvFile,
		"path to a dotenv file loaded before reading IDRAC_* variables")

	c.PersistentFlags().StringVarP(&o.Device.Address, "address", "a", o.Device.Address,
		"device address (hostname or IP)")
	c.PersistentFlags().IntVarP(&o.Device.Port, "port", "p", o.Device.Port,
		"device port, the transport default when unset (443 for redfish, 22 for racadm)")
	c.PersistentFlags().StringVarP(&o.Device.Username, "username", "u", o.Device.Username,
		"device username")
	c.PersistentFlags().StringVarP(&o.Device.Password, "password", "", o.Device.Password,
		"device password, prompted for when unset and stdin is a terminal")
	c.PersistentFlags().StringVarP(&o.Device.Transport, "transport", "", o.Device.Transport,
		"device transport, one of "+quotedList(session.Transports()))
	c.PersistentFlags().BoolVarP(&o.Device.Insecure, "insecure", "k", o.Device.Insecure,
		"skip TLS certificate verification")
	c.PersistentFlags().DurationVarP(&o.Device.Timeout, "timeout", "", o.Device.Timeout,
		"timeout for a single device operation, e.g: 30s, 1m")

	jobs, err := jobsCmd(o)
	if err != nil {
		return nil, err
	}

	syslog, err := syslogCmd(o)
	if err != nil {
		return nil, err
	}

	c.AddCommand(jobs, syslog, versionCmd(o))

	return c, nil
}

func preRunFn(cobraCmd *cobra.Command, o *Options) error {
	if err := loadEnvFile(o.Global.EnvFile); err != nil {
		return err
	}

	if err := initViper(cobraCmd.Root()); err != nil {
		return err
	}

	updateOptionsFromViper(cobraCmd, o)

	// setting log level
	switch {
	case o.Global.DebugCount > 0:
		log.SetLevel(log.DebugLevel)
	default:
		l, err := log.ParseLevel(o.Global.LogLevel)
		if err != nil {
			return err
		}

		log.SetLevel(l)
	}

	// setting output to stderr, so that json outputs can be parsed
	log.SetOutput(os.Stderr)

	switch o.Global.Format {
	case report.FormatJSON, report.FormatTable:
	default:
		return errUnknownFormat(o.Global.Format)
	}

	return nil
}

// loadEnvFile loads variables from a dotenv file without overriding
// the ones already present in the environment. A missing file is not an error.
func loadEnvFile(p string) error {
	if p == "" {
		return nil
	}

	if _, err := os.Stat(p); os.IsNotExist(err) {
		return nil
	}

	log.Debugf("loading environment from %s", p)

	return godotenv.Load(p)
}
