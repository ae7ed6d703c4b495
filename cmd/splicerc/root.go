// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/splicerc/cmd/splicerc/commands"
	"github.com/walteh/splicerc/cmd/splicerc/opts"
	"github.com/walteh/splicerc/pkg/log"
)

// newRootCmd builds the command tree around shared options
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "splicerc",
		Short: "Replace marker-delimited blocks in text files",
		Long: `splicerc replaces the block between a start marker and an end marker in a
document with new content, leaving everything outside the block untouched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := setupLogging(cmd.Context(), o.Stderr, o.Debug, o.NoColor)
			ctx = log.NewContext(ctx, log.New(o.Stdout, *zerolog.Ctx(ctx)))
			o.UserLogger = opts.NewUserLogger(ctx, o.Stderr)
			cmd.SetContext(ctx)
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewRunCmd(o),
		commands.NewCheckCmd(o),
		commands.NewVersionCmd(o),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false, "disable colored output")
}

// setupLogging configures zerolog and color output based on flags
func setupLogging(ctx context.Context, stderr io.Writer, debug, noColor bool) context.Context {
	level := zerolog.ErrorLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if noColor {
		color.NoColor = true
		pterm.DisableColor()
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: noColor}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger.WithContext(ctx)
}
