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
	"github.com/walteh/splicerc/pkg/operation"
	"github.com/walteh/splicerc/pkg/splice"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path> <start-marker> <end-marker>",
		Short: "Locate both markers without changing the document",
		Long: `Check prints the byte offsets of the first occurrence of each marker.
A missing marker is reported with offset -1 and exit status 2.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			path, start, end := args[0], args[1], args[2]
			if err := validateMarkers(start, end); err != nil {
				return err
			}

			op, err := operation.New(operation.Options{Store: o.Store})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			span, err := op.Check(ctx, path, start, end)
			var nf *splice.NotFoundError
			if errors.As(err, &nf) {
				fmt.Fprintf(o.Stdout, "start: %d, end: %d\n", nf.StartOffset, nf.EndOffset)
				if nf.StartMissing() {
					o.UserLogger.LogWarning(fmt.Sprintf("start marker %q not found", start))
				}
				if nf.EndMissing() {
					o.UserLogger.LogWarning(fmt.Sprintf("end marker %q not found", end))
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(o.Stdout, "start: %d, end: %d\n", span.Start, span.End)
			if span.Reversed() {
				o.UserLogger.LogWarning("end marker precedes start marker, applying would duplicate content")
			}
			return nil
		},
	}

	return cmd
}
