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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/splicerc/pkg/document"
	"github.com/walteh/splicerc/pkg/log"
	"github.com/walteh/splicerc/pkg/splice"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📊 RunResult collects the reports of a run in target order
type RunResult struct {
	Reports []*Report
}

// Summary totals the reports by outcome
func (r *RunResult) Summary() log.Summary {
	s := log.Summary{Total: len(r.Reports)}
	for _, rep := range r.Reports {
		switch rep.Outcome {
		case OutcomeSpliced:
			s.Spliced++
		case OutcomeUnchanged:
			s.Unchanged++
		case OutcomeDryRun:
			s.DryRun++
		case OutcomeNotFound:
			s.NotFound++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}

// Err returns nil when every target succeeded. Failed targets take precedence
// over missing markers, and the first error of that kind is wrapped.
func (r *RunResult) Err() error {
	s := r.Summary()
	switch {
	case s.Failed > 0:
		return errors.Errorf("%d of %d target(s) failed: %w", s.Failed, s.Total, r.first(OutcomeFailed))
	case s.NotFound > 0:
		return errors.Errorf("%d of %d target(s) missing markers: %w", s.NotFound, s.Total, r.first(OutcomeNotFound))
	}
	return nil
}

func (r *RunResult) first(o Outcome) error {
	for _, rep := range r.Reports {
		if rep.Outcome == o {
			return rep.Err
		}
	}
	return nil
}

// 🏃 Run implements Operator.Run. Targets that share a location run one after
// another in the order given; distinct locations run concurrently up to the
// configured limit. Per-target failures are recorded in the reports; the
// returned error is only set when the context is cancelled.
func (o *operator) Run(ctx context.Context, targets []Target) (*RunResult, error) {
	logger := zerolog.Ctx(ctx)

	result := &RunResult{Reports: make([]*Report, len(targets))}
	groups := groupByLocation(targets)

	logger.Debug().
		Int("targets", len(targets)).
		Int("documents", len(groups)).
		Int("concurrency", o.concurrency).
		Msg("running splice targets")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for _, group := range groups {
		group := group
		g.Go(func() error {
			for _, idx := range group {
				if err := gctx.Err(); err != nil {
					return errors.Errorf("run cancelled: %w", err)
				}
				result.Reports[idx] = o.Apply(gctx, targets[idx])
			}
			return nil
		})
	}

	err := g.Wait()
	for i, rep := range result.Reports {
		if rep == nil {
			result.Reports[i] = &Report{Target: targets[i], Outcome: OutcomeFailed, Err: err}
		}
	}
	return result, err
}

// groupByLocation returns target indexes grouped by document, groups ordered
// by first appearance.
func groupByLocation(targets []Target) [][]int {
	pos := make(map[string]int)
	var groups [][]int
	for i, t := range targets {
		key := t.Location
		if u, err := document.URL(t.Location); err == nil {
			key = u
		}
		gi, ok := pos[key]
		if !ok {
			gi = len(groups)
			pos[key] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}
	return groups
}

// 🚪 ExitCode maps a run or command error to a process exit status:
// 0 ok, 1 usage, 2 markers not found, 3 i/o failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, document.ErrIO):
		return 3
	case errors.Is(err, splice.ErrMarkerNotFound):
		return 2
	default:
		return 1
	}
}
