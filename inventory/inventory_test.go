// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package inventory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Setenv("TEST_IDRAC_PASSWORD", "calvin")

	data := []byte(`
defaults:
  username: root
  password: ${TEST_IDRAC_PASSWORD}
  transport: redfish
  insecure: true
  timeout: 10s
devices:
  - name: r740-01
    address: 192.168.0.10
  - address: 192.168.0.11
    port: 8443
    transport: racadm
    insecure: false
`)

	inv, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, inv.Devices, 2)

	first := inv.Devices[0]
	assert.Equal(t, "r740-01", first.Name)
	assert.Equal(t, "redfish", first.Transport)

	second := inv.Devices[1]
	assert.Equal(t, "192.168.0.11", second.Name)
	assert.Equal(t, "racadm", second.Transport)

	c, err := second.Credentials()
	require.NoError(t, err)

	want := &session.Credentials{
		Address:  "192.168.0.11",
		Port:     8443,
		Username: "root",
		Password: "calvin",
		Timeout:  10 * time.Second,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Credentials() mismatch (-want +got):\n%s", diff)
	}

	c, err = first.Credentials()
	require.NoError(t, err)
	assert.True(t, c.InsecureSkipVerify)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"no devices":     "devices: []\n",
		"no address":     "devices:\n  - name: a\n",
		"duplicate name": "devices:\n  - address: a\n  - address: a\n",
		"unknown field":  "devices:\n  - address: a\n    vendor: dell\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestInvalidTimeout(t *testing.T) {
	d := &Device{Name: "a", Address: "a", Timeout: "soon"}

	_, err := d.Credentials()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "inventory.yml")

	require.NoError(t, os.WriteFile(p, []byte("devices:\n  - address: 10.0.0.1\n"), 0o600))

	inv, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", inv.Devices[0].Name)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.True(t, errors.Is(err, idracerrors.ErrFileNotFound))
}
