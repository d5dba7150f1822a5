// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/srl-labs/idracctl/cmd"
)

func main() {
	ctx, cancel := cmd.SignalHandledContext()

	c, err := cmd.Entrypoint()
	if err != nil {
		log.Fatal(err)
	}

	err = c.ExecuteContext(ctx)

	// ensure cancel is *always* called (os.Exit bypasses)
	cancel()

	if err != nil {
		os.Exit(1)
	}
}
