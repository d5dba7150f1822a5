// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"time"

	"github.com/srl-labs/idracctl/report"
	"github.com/srl-labs/idracctl/session"
	"github.com/srl-labs/idracctl/session/redfish"
	"github.com/srl-labs/idracctl/types"
)

const (
	defaultParallel = 10
	defaultEnvFile  = ".env"
)

var optionsInstance *Options //nolint:gochecknoglobals

// GetOptions returns the global options instance if it exists
// or creates a new one with default values for all options.
func GetOptions() *Options {
	if optionsInstance == nil {
		optionsInstance = &Options{
			Global: &GlobalOptions{
				LogLevel: "info",
				Format:   report.FormatJSON,
				Parallel: defaultParallel,
				EnvFile:  defaultEnvFile,
			},
			Device: &DeviceOptions{
				Transport: redfish.Name,
				Timeout:   session.DefaultTimeout,
			},
			Jobs: &JobsOptions{},
			Syslog: &SyslogOptions{
				State: statePresent,
				Port:  types.DefaultSyslogPort,
			},
		}
	}

	return optionsInstance
}

type Options struct {
	Global *GlobalOptions
	Device *DeviceOptions
	Jobs   *JobsOptions
	Syslog *SyslogOptions
}

type GlobalOptions struct {
	LogLevel   string
	DebugCount int
	Format     string
	Inventory  string
	Limit      []string
	Parallel   int
	EnvFile    string
}

// DeviceOptions hold the connection settings of a single device.
// When an inventory is used they act as defaults for its devices.
type DeviceOptions struct {
	Address   string
	Port      int
	Username  string
	Password  string
	Transport string
	Insecure  bool
	Timeout   time.Duration
}

type JobsOptions struct {
	JobID string
}

type SyslogOptions struct {
	State   string
	Servers []string
	Port    int
	Check   bool
}

func (o *DeviceOptions) credentials() *session.Credentials {
	return &session.Credentials{
		Address:            o.Address,
		Port:               o.Port,
		Username:           o.Username,
		Password:           o.Password,
		InsecureSkipVerify: o.Insecure,
		Timeout:            o.Timeout,
	}
}
