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

package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/splicerc/cmd/splicerc/opts"
	"github.com/walteh/splicerc/pkg/config"
	"github.com/walteh/splicerc/pkg/log"
	"github.com/walteh/splicerc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

type runFlags struct {
	configFile string
	dryRun     bool
	diff       bool
	jobs       int
	only       []string
}

// NewRunCmd creates a new run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply every splice in a config file",
		Long: `Run loads a splice config (.yaml, .yml, .hcl or .json) and applies each splice.
Paths may be glob patterns and are relative to the config file.

Splices that target the same document run in config order; distinct documents
run concurrently up to --jobs. Exit status is 2 when any marker is missing and
3 when any document could not be read or written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "run").Logger().WithContext(cmd.Context())

			cfg, err := config.LoadConfig(ctx, flags.configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			splices, err := cfg.Select(flags.only...)
			if err != nil {
				return err
			}

			targets, err := operation.Plan(ctx, splices, o.Store)
			if err != nil {
				return errors.Errorf("planning splices: %w", err)
			}

			concurrency := cfg.Concurrency
			if flags.jobs > 0 {
				concurrency = flags.jobs
			}

			logger := log.FromContext(ctx)
			op, err := operation.New(operation.Options{
				Store:       o.Store,
				Logger:      logger,
				DryRun:      flags.dryRun || cfg.DryRun,
				ShowDiff:    flags.diff,
				Concurrency: concurrency,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			logger.Header(fmt.Sprintf("splicing %d target(s) from %s", len(targets), cfg.Location()))

			res, err := op.Run(ctx, targets)
			if err != nil {
				return err
			}

			logger.LogSummary(ctx, res.Summary())

			if err := res.Err(); err != nil {
				return err
			}
			logger.Success("all splices applied")
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "splice and report without writing")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print the changed lines")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "documents processed at once, overrides the config")
	cmd.Flags().StringArrayVar(&flags.only, "only", nil, "only run the named splice, repeatable")

	return cmd
}
