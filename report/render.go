// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/srl-labs/idracctl/types"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// DeviceResult is the envelope produced for one device of a run.
type DeviceResult struct {
	Device string `json:"device"`
	RunID  string `json:"run_id,omitempty"`
	*types.OperationResult
}

// Render writes results in the requested format.
func Render(w io.Writer, format string, results []DeviceResult) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, results)
	case FormatTable:
		renderTable(w, results)
		return nil
	}

	return fmt.Errorf("unsupported output format %q, supported formats %q",
		format, []string{FormatJSON, FormatTable})
}

func renderJSON(w io.Writer, results []DeviceResult) error {
	var v any = results
	// a single device prints the bare envelope, the shape orchestrators consume
	if len(results) == 1 {
		v = results[0]
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

func renderTable(w io.Writer, results []DeviceResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Device", "Changed", "Failed", "Unreachable", "Message"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Device,
			strconv.FormatBool(r.Changed),
			strconv.FormatBool(r.Failed),
			strconv.FormatBool(r.Unreachable),
			r.Msg,
		})
	}

	table.AppendBulk(rows)
	table.Render()
}

// AnyFailed reports whether any device failed or was unreachable.
func AnyFailed(results []DeviceResult) bool {
	for _, r := range results {
		if r.Failed || r.Unreachable {
			return true
		}
	}

	return false
}
