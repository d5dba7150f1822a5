// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package inventory loads the list of managed devices a command fans out to.
package inventory

import (
	"fmt"
	"os"
	"time"

	"github.com/a8m/envsubst"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/session"
	"gopkg.in/yaml.v2"
)

// Inventory is the parsed inventory file.
//
//	defaults:
//	  username: root
//	  password: ${IDRAC_PASSWORD}
//	  transport: redfish
//	devices:
//	  - name: r740-01
//	    address: 192.168.0.10
//	  - name: r740-02
//	    address: 192.168.0.11
//	    transport: racadm
type Inventory struct {
	Defaults *Device   `yaml:"defaults,omitempty"`
	Devices  []*Device `yaml:"devices"`
}

// Device describes a single managed device.
// Unset fields are taken from the inventory defaults.
type Device struct {
	Name      string `yaml:"name,omitempty"`
	Address   string `yaml:"address,omitempty"`
	Port      int    `yaml:"port,omitempty"`
	Username  string `yaml:"username,omitempty"`
	Password  string `yaml:"password,omitempty"`
	Transport string `yaml:"transport,omitempty"`
	Insecure  *bool  `yaml:"insecure,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
}

// Load reads the inventory file at path. A leading ~ is expanded to the
// home directory and ${VAR} references are substituted from the environment.
func Load(path string) (*Inventory, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(idracerrors.ErrFileNotFound, p)
		}

		return nil, err
	}

	return Parse(b)
}

// Parse parses inventory data, applies the defaults and validates every device.
func Parse(b []byte) (*Inventory, error) {
	b, err := envsubst.Bytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand environment variables in inventory")
	}

	inv := &Inventory{}

	if err := yaml.UnmarshalStrict(b, inv); err != nil {
		return nil, errors.Wrap(err, "failed to parse inventory")
	}

	if len(inv.Devices) == 0 {
		return nil, errors.Wrap(idracerrors.ErrIncorrectInput, "inventory has no devices")
	}

	seen := map[string]struct{}{}

	for i, d := range inv.Devices {
		if d == nil {
			return nil, errors.Wrapf(idracerrors.ErrIncorrectInput, "inventory device #%d is empty", i+1)
		}

		d.merge(inv.Defaults)

		if d.Name == "" {
			d.Name = d.Address
		}

		if d.Address == "" {
			return nil, errors.Wrapf(idracerrors.ErrIncorrectInput, "device %q has no address", d.Name)
		}

		if _, ok := seen[d.Name]; ok {
			return nil, errors.Wrapf(idracerrors.ErrIncorrectInput, "duplicate device name %q", d.Name)
		}

		seen[d.Name] = struct{}{}
	}

	log.Debugf("inventory loaded with %d devices", len(inv.Devices))

	return inv, nil
}

func (d *Device) merge(def *Device) {
	if def == nil {
		return
	}

	if d.Port == 0 {
		d.Port = def.Port
	}

	if d.Username == "" {
		d.Username = def.Username
	}

	if d.Password == "" {
		d.Password = def.Password
	}

	if d.Transport == "" {
		d.Transport = def.Transport
	}

	if d.Insecure == nil {
		d.Insecure = def.Insecure
	}

	if d.Timeout == "" {
		d.Timeout = def.Timeout
	}
}

// Credentials converts the device entry to session credentials.
func (d *Device) Credentials() (*session.Credentials, error) {
	c := &session.Credentials{
		Address:  d.Address,
		Port:     d.Port,
		Username: d.Username,
		Password: d.Password,
	}

	if d.Insecure != nil {
		c.InsecureSkipVerify = *d.Insecure
	}

	if d.Timeout != "" {
		t, err := time.ParseDuration(d.Timeout)
		if err != nil {
			return nil, fmt.Errorf("device %q: invalid timeout %q: %w", d.Name, d.Timeout, err)
		}

		c.Timeout = t
	}

	return c, nil
}
