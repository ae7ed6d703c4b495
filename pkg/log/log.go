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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for splice name
	modeWidth   = 11 // Width for splice mode
	statusWidth = 10 // Width for status text
)

// 🎯 SpliceOperation represents the outcome of one splice for logging
type SpliceOperation struct {
	Name       string // Splice name
	Path       string // Target location
	Mode       string // Splice mode (verbatim/keep-start)
	Status     string // Operation status
	Detail     string // Extra text shown after the status
	Start      int    // Start marker offset, -1 if missing
	End        int    // End marker offset, -1 if missing
	Added      int    // Lines inserted
	Removed    int    // Lines removed
	IsModified bool   // Whether the target was rewritten
	IsDryRun   bool   // Whether the write was skipped on purpose
	IsNotFound bool   // Whether a marker was missing
	IsFailed   bool   // Whether an i/o error occurred
	Diff       string // Preview printed beneath the line, optional
}

// 📊 Summary totals a run
type Summary struct {
	Total     int
	Spliced   int
	Unchanged int
	DryRun    int
	NotFound  int
	Failed    int
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatSpliceOperation formats a splice operation for display
func (l *Logger) formatSpliceOperation(op SpliceOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '!'
		symbolColor = color.FgRed
	case op.IsNotFound:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsDryRun:
		symbol = '~'
		symbolColor = color.FgMagenta
	case op.IsModified:
		symbol = '✓'
		symbolColor = color.FgGreen
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	modeColor := color.FgBlue
	if op.Mode == "keep-start" {
		modeColor = color.FgCyan
	}

	detail := op.Detail
	if detail == "" && (op.IsModified || op.IsDryRun) {
		detail = fmt.Sprintf("+%d -%d", op.Added, op.Removed)
	}

	line := fmt.Sprintf("%s%s %s %s %s %s",
		strings.Repeat(" ", fileIndent),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Name),
		color.New(modeColor).Sprint(fmt.Sprintf("%-*s", modeWidth, op.Mode)),
		fmt.Sprintf("%-*s", statusWidth, op.Status),
		color.New(color.Faint).Sprint(detail))

	return strings.TrimRight(line, " ")
}

// 📝 LogSplice logs a splice operation
func (l *Logger) LogSplice(ctx context.Context, op SpliceOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatSpliceOperation(op))
	if op.Diff != "" {
		l.writeDiff(op.Diff)
	}

	evt := l.zlog.Info()
	if op.IsFailed || op.IsNotFound {
		evt = l.zlog.Warn()
	}
	evt.
		Str("name", op.Name).
		Str("path", op.Path).
		Str("mode", op.Mode).
		Str("status", op.Status).
		Int("start", op.Start).
		Int("end", op.End).
		Int("added", op.Added).
		Int("removed", op.Removed).
		Bool("is_modified", op.IsModified).
		Bool("is_dry_run", op.IsDryRun).
		Msg("splice operation")
}

// 📝 LogSummary prints run totals
func (l *Logger) LogSummary(ctx context.Context, s Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	parts := []string{
		color.New(color.FgGreen).Sprintf("%d spliced", s.Spliced),
		fmt.Sprintf("%d unchanged", s.Unchanged),
	}
	if s.DryRun > 0 {
		parts = append(parts, color.New(color.FgMagenta).Sprintf("%d dry-run", s.DryRun))
	}
	if s.NotFound > 0 {
		parts = append(parts, color.New(color.FgRed).Sprintf("%d not found", s.NotFound))
	}
	if s.Failed > 0 {
		parts = append(parts, color.New(color.FgRed).Sprintf("%d failed", s.Failed))
	}

	fmt.Fprintf(l.console, "\n%s %s\n", color.New(color.Bold).Sprintf("%d target(s):", s.Total), strings.Join(parts, ", "))

	l.zlog.Info().
		Int("total", s.Total).
		Int("spliced", s.Spliced).
		Int("unchanged", s.Unchanged).
		Int("dry_run", s.DryRun).
		Int("not_found", s.NotFound).
		Int("failed", s.Failed).
		Msg("run complete")
}

// writeDiff colors added and removed lines, caller holds mu
func (l *Logger) writeDiff(diff string) {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		c := color.New(color.Faint)
		switch {
		case strings.HasPrefix(line, "+"):
			c = color.New(color.FgGreen)
		case strings.HasPrefix(line, "-"):
			c = color.New(color.FgRed)
		}
		fmt.Fprintf(l.console, "%s%s\n", strings.Repeat(" ", fileIndent*2), c.Sprint(line))
	}
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	splicercText := color.New(color.Bold, color.FgCyan).Sprint("splicerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", splicercText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
