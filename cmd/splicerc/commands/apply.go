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
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/splicerc/cmd/splicerc/opts"
	"github.com/walteh/splicerc/pkg/document"
	"github.com/walteh/splicerc/pkg/log"
	"github.com/walteh/splicerc/pkg/operation"
	"github.com/walteh/splicerc/pkg/splice"
	"gitlab.com/tozd/go/errors"
)

type applyFlags struct {
	replacementFile string
	keepStart       bool
	dryRun          bool
	diff            bool
}

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply <path> <start-marker> <end-marker> [replacement]",
		Short: "Replace the block between two markers in one document",
		Long: `Apply finds the first occurrence of each marker in the document and replaces
everything from the start marker up to (not including) the end marker.

In the default verbatim mode the replacement should restate the start marker,
otherwise the next run will not find it. --keep-start re-emits the start
marker so the replacement only carries the block's interior.

Exit status is 2 when a marker is missing and 3 on i/o failure.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())

			path, start, end := args[0], args[1], args[2]
			if err := validateMarkers(start, end); err != nil {
				return err
			}

			replacement, err := readReplacement(cmd, o, args, flags.replacementFile)
			if err != nil {
				return err
			}

			mode := splice.ModeVerbatim
			if flags.keepStart {
				mode = splice.ModeKeepStart
			}

			logger := log.FromContext(ctx)
			op, err := operation.New(operation.Options{
				Store:       o.Store,
				Logger:      logger,
				DryRun:      flags.dryRun,
				ShowDiff:    flags.diff,
				Concurrency: 1,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			report := op.Apply(ctx, operation.Target{
				Name:        path,
				Location:    path,
				Start:       start,
				End:         end,
				Replacement: replacement,
				Mode:        mode,
			})
			if report.Err != nil {
				return report.Err
			}

			switch report.Outcome {
			case operation.OutcomeDryRun:
				logger.Infof("dry run, %s not written", path)
			case operation.OutcomeUnchanged:
				logger.Infof("%s already up to date", path)
			default:
				logger.Successf("updated %s", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.replacementFile, "replacement-file", "f", "", "read the replacement from a file, - for stdin")
	cmd.Flags().BoolVar(&flags.keepStart, "keep-start", false, "re-emit the start marker ahead of the replacement")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "splice and report without writing")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print the changed lines")

	return cmd
}

// readReplacement takes the replacement from the 4th argument or --replacement-file
func readReplacement(cmd *cobra.Command, o *opts.RootOpts, args []string, file string) (string, error) {
	switch {
	case len(args) == 4 && file != "":
		return "", errors.Errorf("replacement argument and --replacement-file are mutually exclusive")
	case len(args) == 4:
		return args[3], nil
	case file == "":
		return "", errors.Errorf("one of replacement argument or --replacement-file is required")
	case file == "-":
		data, err := io.ReadAll(o.Stdin)
		if err != nil {
			return "", errors.Errorf("reading replacement from stdin: %w", &document.IOError{Op: document.OpRead, Location: "stdin", Err: err})
		}
		return string(data), nil
	}

	content, err := o.Store.Read(cmd.Context(), file)
	if err != nil {
		return "", errors.Errorf("reading replacement file: %w", err)
	}
	return content, nil
}

func validateMarkers(start, end string) error {
	if start == "" {
		return errors.Errorf("start marker must not be empty")
	}
	if end == "" {
		return errors.Errorf("end marker must not be empty")
	}
	return nil
}
