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
)

// 🎯 Target is one splice applied to one document
type Target struct {
	Name        string      // Display name
	Location    string      // Document path or afs URL
	Start       string      // Start marker
	End         string      // End marker
	Replacement string      // Replacement block
	Mode        splice.Mode // How the start marker is treated
}

// 🚦 Outcome is the result kind of applying a target
type Outcome int

const (
	OutcomeSpliced Outcome = iota
	OutcomeUnchanged
	OutcomeDryRun
	OutcomeNotFound
	OutcomeFailed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeSpliced:
		return "spliced"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeDryRun:
		return "dry-run"
	case OutcomeNotFound:
		return "not found"
	default:
		return "failed"
	}
}

// 📋 Report describes what happened to a target
type Report struct {
	Target  Target
	Outcome Outcome
	Span    splice.Span
	Diff    Diff
	Err     error
}

// logEntry converts the report into a console line
func (r *Report) logEntry() log.SpliceOperation {
	op := log.SpliceOperation{
		Name:       r.Target.Name,
		Path:       r.Target.Location,
		Mode:       r.Target.Mode.String(),
		Status:     r.Outcome.String(),
		Start:      r.Span.Start,
		End:        r.Span.End,
		Added:      r.Diff.Added,
		Removed:    r.Diff.Removed,
		IsModified: r.Outcome == OutcomeSpliced || r.Outcome == OutcomeDryRun,
		IsDryRun:   r.Outcome == OutcomeDryRun,
		IsNotFound: r.Outcome == OutcomeNotFound,
		IsFailed:   r.Outcome == OutcomeFailed,
	}
	if r.Err != nil {
		op.Detail = r.Err.Error()
	}
	var nf *splice.NotFoundError
	if errors.As(r.Err, &nf) {
		op.Start = nf.StartOffset
		op.End = nf.EndOffset
		op.Detail = nf.Error()
	}
	return op
}

// 🎯 Operator applies splice targets to documents
type Operator interface {
	// Apply runs read, splice and write for a single target
	Apply(ctx context.Context, t Target) *Report
	// Run applies many targets, running distinct documents concurrently
	Run(ctx context.Context, targets []Target) (*RunResult, error)
	// Check locates both markers in a document without writing
	Check(ctx context.Context, location, startMarker, endMarker string) (splice.Span, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Store reads and writes documents
	Store document.ReadWriter
	// Logger receives console lines, optional
	Logger *log.Logger
	// DryRun skips every write
	DryRun bool
	// ShowDiff prints a preview of each change
	ShowDiff bool
	// Concurrency bounds how many documents are processed at once
	Concurrency int
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Store == nil {
		return nil, errors.Errorf("store is required")
	}
	if opts.Concurrency < 0 {
		return nil, errors.Errorf("concurrency must not be negative")
	}
	if opts.Concurrency == 0 {
		opts.Concurrency = 1
	}
	return &operator{
		store:       opts.Store,
		logger:      opts.Logger,
		dryRun:      opts.DryRun,
		showDiff:    opts.ShowDiff,
		concurrency: opts.Concurrency,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	store       document.ReadWriter
	logger      *log.Logger
	dryRun      bool
	showDiff    bool
	concurrency int
}

// Apply implements Operator.Apply. The store is only written when the splice
// succeeded, changed the document and the operator is not in dry-run mode.
func (o *operator) Apply(ctx context.Context, t Target) *Report {
	zlog := zerolog.Ctx(ctx).With().Str("name", t.Name).Str("location", t.Location).Logger()

	report := &Report{Target: t}

	content, err := o.store.Read(ctx, t.Location)
	if err != nil {
		report.Outcome = OutcomeFailed
		report.Err = errors.Errorf("reading document: %w", err)
		return o.finish(ctx, report)
	}

	result, err := splice.NewSplicer(t.Mode).Splice(content, t.Start, t.End, t.Replacement)
	if err != nil {
		report.Outcome = OutcomeNotFound
		report.Err = err
		zlog.Debug().Err(err).Msg("markers not found, leaving document untouched")
		return o.finish(ctx, report)
	}
	report.Span = result.Span

	if t.Mode == splice.ModeVerbatim && !splice.RestatesStartMarker(t.Replacement, t.Start) && o.logger != nil {
		o.logger.Warningf("%s: replacement does not restate the start marker, the next run will not find it", t.Name)
	}

	if !result.WasModified {
		report.Outcome = OutcomeUnchanged
		return o.finish(ctx, report)
	}

	report.Diff = ComputeDiff(result.OriginalContent, result.ModifiedContent)

	if o.dryRun {
		report.Outcome = OutcomeDryRun
		return o.finish(ctx, report)
	}

	if err := o.store.Write(ctx, t.Location, result.ModifiedContent); err != nil {
		report.Outcome = OutcomeFailed
		report.Err = errors.Errorf("writing document: %w", err)
		return o.finish(ctx, report)
	}

	report.Outcome = OutcomeSpliced
	return o.finish(ctx, report)
}

// finish logs the report and returns it
func (o *operator) finish(ctx context.Context, report *Report) *Report {
	zerolog.Ctx(ctx).Debug().
		Str("name", report.Target.Name).
		Stringer("outcome", report.Outcome).
		Msg("target finished")

	if o.logger == nil {
		return report
	}
	entry := report.logEntry()
	if o.showDiff && !report.Diff.Empty() {
		entry.Diff = report.Diff.Preview
	}
	o.logger.LogSplice(ctx, entry)
	return report
}

// Check implements Operator.Check
func (o *operator) Check(ctx context.Context, location, startMarker, endMarker string) (splice.Span, error) {
	content, err := o.store.Read(ctx, location)
	if err != nil {
		return splice.Span{Start: -1, End: -1}, errors.Errorf("reading document: %w", err)
	}
	return splice.Locate(content, startMarker, endMarker)
}
