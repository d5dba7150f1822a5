// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"fmt"

	"github.com/pkg/errors"
	idracerrors "github.com/srl-labs/idracctl/errors"
)

const (
	// DefaultSyslogPort is the remote syslog port used when none is given.
	DefaultSyslogPort = 514
	// MaxSyslogServers is the number of remote syslog server slots on the device.
	MaxSyslogServers = 3
)

// DesiredSyslogConfig is the caller-declared remote syslog state.
type DesiredSyslogConfig struct {
	Enabled bool     `yaml:"enabled" json:"enabled"`
	Servers []string `yaml:"servers,omitempty" json:"servers,omitempty"`
	Port    int      `yaml:"port,omitempty" json:"port,omitempty"`
}

// NewDesiredSyslogConfig builds a validated desired syslog config.
// A zero port defaults to DefaultSyslogPort.
func NewDesiredSyslogConfig(enabled bool, servers []string, port int) (*DesiredSyslogConfig, error) {
	d := &DesiredSyslogConfig{
		Enabled: enabled,
		Servers: append([]string(nil), servers...),
		Port:    port,
	}

	if d.Port == 0 {
		d.Port = DefaultSyslogPort
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks the server count and, when syslog is to be enabled, the port range.
// The port of a disabled config is never sent to the device.
func (d *DesiredSyslogConfig) Validate() error {
	if len(d.Servers) > MaxSyslogServers {
		return errors.Wrapf(idracerrors.ErrIncorrectInput,
			"at most %d syslog servers can be configured, got %d", MaxSyslogServers, len(d.Servers))
	}

	if d.Enabled && (d.Port < 1 || d.Port > 65535) {
		return errors.Wrapf(idracerrors.ErrIncorrectInput, "incorrect syslog port number %d", d.Port)
	}

	return nil
}

// PaddedServers returns the server list padded with empty strings to exactly
// MaxSyslogServers slots, the shape the device expects.
func (d *DesiredSyslogConfig) PaddedServers() [MaxSyslogServers]string {
	var slots [MaxSyslogServers]string
	copy(slots[:], d.Servers)

	return slots
}

func (d *DesiredSyslogConfig) String() string {
	if !d.Enabled {
		return "disabled"
	}

	return fmt.Sprintf("enabled port=%d servers=%q", d.Port, d.Servers)
}

// CurrentSyslogConfig is the remote syslog state read from the device.
// Enabled is reported by the device explicitly and does not depend on Port.
type CurrentSyslogConfig struct {
	Enabled bool     `json:"enabled"`
	Servers []string `json:"servers"`
	Port    int      `json:"port"`
}
