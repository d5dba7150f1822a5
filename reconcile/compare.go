// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package reconcile holds the state comparison and change planning shared by
// every reconciling controller.
package reconcile

import (
	"sort"

	"github.com/srl-labs/idracctl/types"
)

// IsSatisfied reports whether the current syslog state already matches desired.
//
// Enabled flags must match. When enabled, the port must match and the sets of
// non-empty servers must be equal; server order, duplicates and empty slots
// are ignored.
func IsSatisfied(desired *types.DesiredSyslogConfig, current *types.CurrentSyslogConfig) bool {
	return CompareSyslog(desired, current).Satisfied()
}

// CompareSyslog returns the structured difference between desired and current.
func CompareSyslog(desired *types.DesiredSyslogConfig, current *types.CurrentSyslogConfig) types.Diff {
	var diff types.Diff

	if current.Enabled != desired.Enabled {
		diff = append(diff, types.AttributeDiff{
			Attribute: "enabled",
			Before:    current.Enabled,
			After:     desired.Enabled,
		})
	}

	if !desired.Enabled {
		return diff
	}

	if current.Port != desired.Port {
		diff = append(diff, types.AttributeDiff{
			Attribute: "port",
			Before:    current.Port,
			After:     desired.Port,
		})
	}

	have := serverSet(current.Servers)
	want := serverSet(desired.Servers)

	if !sameSet(have, want) {
		diff = append(diff, types.AttributeDiff{
			Attribute: "servers",
			Before:    sortedKeys(have),
			After:     sortedKeys(want),
		})
	}

	return diff
}

func serverSet(servers []string) map[string]struct{} {
	set := make(map[string]struct{}, len(servers))
	for _, s := range servers {
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}

	return set
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}

	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}

	return true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
