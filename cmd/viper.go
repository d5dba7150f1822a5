// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "IDRAC"

var v *viper.Viper //nolint:gochecknoglobals

// initViper binds every flag of the command tree rooted at root to an
// IDRAC_* environment variable.
func initViper(root *cobra.Command) error {
	v = viper.New()
	v.SetEnvPrefix(envPrefix)
	// "jobs.delete.job-id" is read from IDRAC_JOBS_DELETE_JOB_ID
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return bindFlags(root, "")
}

// bindFlags binds the flags of cmd and its subcommands under keys made of
// the command path and the flag name. Root persistent flags are bound
// without a path, so IDRAC_ADDRESS applies to every command.
func bindFlags(cmd *cobra.Command, parent string) error {
	path := commandKey(parent, cmd)

	var err error

	bind := func(key string, f *pflag.Flag) {
		if bErr := v.BindPFlag(key, f); bErr != nil && err == nil {
			err = bErr
		}
	}

	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if path == "" {
			bind(f.Name, f)
			return
		}

		bind(path+"."+f.Name, f)
	})

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// local flags of the root command have no path and are left unbound,
		// inherited flags are bound where they are declared
		if path == "" || cmd.PersistentFlags().Lookup(f.Name) != nil ||
			cmd.InheritedFlags().Lookup(f.Name) != nil {
			return
		}

		bind(path+"."+f.Name, f)
	})

	if err != nil {
		return err
	}

	for _, sub := range cmd.Commands() {
		if err := bindFlags(sub, path); err != nil {
			return err
		}
	}

	return nil
}

func commandKey(parent string, cmd *cobra.Command) string {
	if cmd.Name() == rootCmdName || cmd.Name() == "" {
		return ""
	}

	if parent == "" {
		return cmd.Name()
	}

	return parent + "." + cmd.Name()
}

// commandPath returns the dotted path of cmd below the root, e.g. "jobs.delete".
func commandPath(cmd *cobra.Command) string {
	var parts []string

	for c := cmd; c != nil && c.Name() != rootCmdName && c.Name() != ""; c = c.Parent() {
		parts = append([]string{c.Name()}, parts...)
	}

	return strings.Join(parts, ".")
}

// updateOptionsFromViper sets the flags of cmd, including the inherited
// persistent ones, from the environment unless they were given on the command line.
// The flags are bound to the Options fields, so this updates the options.
func updateOptionsFromViper(cmd *cobra.Command, _ *Options) {
	path := commandPath(cmd)
	root := cmd.Root()
	seen := map[string]bool{}

	visit := func(f *pflag.Flag) {
		if seen[f.Name] {
			return
		}

		seen[f.Name] = true

		setFlagFromEnv(f, path, root.PersistentFlags().Lookup(f.Name) == f)
	}

	cmd.Flags().VisitAll(visit)
	cmd.PersistentFlags().VisitAll(visit)

	for p := cmd.Parent(); p != nil; p = p.Parent() {
		p.PersistentFlags().VisitAll(visit)
	}
}

// setFlagFromEnv looks the flag up under the command path first and then,
// for root persistent flags, under its bare name.
func setFlagFromEnv(f *pflag.Flag, path string, rootFlag bool) {
	if f.Changed {
		return
	}

	var key string

	switch {
	case path != "" && v.IsSet(path+"."+f.Name):
		key = path + "." + f.Name
	case rootFlag && v.IsSet(f.Name):
		key = f.Name
	default:
		return
	}

	val := v.GetString(key)

	if strings.HasSuffix(f.Value.Type(), "Slice") {
		// slice flags parse comma separated values
		val = strings.Join(v.GetStringSlice(key), ",")
	}

	if val != "" {
		_ = f.Value.Set(val)
	}
}
