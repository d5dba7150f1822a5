// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"

	gover "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
	"github.com/srl-labs/idracctl/session"
)

// Version variables set at build time (e.g., with -ldflags).
var (
	Version = "0.0.0"
	commit  = "none"
	date    = "unknown"
)

const repoUrl = "https://github.com/srl-labs/idracctl"

func versionCmd(_ *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show idracctl version",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			w := cobraCmd.OutOrStdout()
			fmt.Fprintf(w, "    version: %s\n", Version)
			fmt.Fprintf(w, "     commit: %s\n", commit)
			fmt.Fprintf(w, "       date: %s\n", date)
			fmt.Fprintf(w, "     source: %s\n", repoUrl)
			fmt.Fprintf(w, " rel. notes: %s\n", releaseNotesLink(Version))
			fmt.Fprintf(w, " transports: %s\n", quotedList(session.Transports()))
			return nil
		},
	}
}

// releaseNotesLink returns the release page of a version,
// e.g. for 0.4.1 => https://github.com/srl-labs/idracctl/releases/tag/v0.4.1.
// Development and unparsable versions link to the releases list.
func releaseNotesLink(ver string) string {
	releases := repoUrl + "/releases"

	v, err := gover.NewVersion(ver)
	if err != nil || v.Prerelease() != "" || v.Equal(gover.Must(gover.NewVersion("0.0.0"))) {
		return releases
	}

	segments := v.Segments()

	return fmt.Sprintf("%s/tag/v%d.%d.%d", releases, segments[0], segments[1], segments[2])
}
