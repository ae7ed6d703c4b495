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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pricingDoc = `export function ContentManagement() {
  // Pricing Plan Edit Dialog
  <Dialog old />
  // Navigation Edit Dialog
  <Dialog nav />
}
`

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		args       func(dir string) []string
		stdin      string
		wantExit   int
		wantStdout string
		wantStderr string
		wantFiles  map[string]string
	}{
		{
			name:  "apply_replacement_argument",
			files: map[string]string{"cm.tsx": pricingDoc},
			args: func(dir string) []string {
				return []string{"--no-color", "apply", filepath.Join(dir, "cm.tsx"),
					"  // Pricing Plan Edit Dialog", "  // Navigation Edit Dialog",
					"  // Pricing Plan Edit Dialog\n  <Dialog new />\n"}
			},
			wantExit:   0,
			wantStdout: "✅ updated ",
			wantFiles: map[string]string{
				"cm.tsx": strings.Replace(pricingDoc, "<Dialog old />", "<Dialog new />", 1),
			},
		},
		{
			name:  "apply_keep_start_from_stdin",
			files: map[string]string{"cm.tsx": pricingDoc},
			args: func(dir string) []string {
				return []string{"--no-color", "apply", "--keep-start", "--replacement-file", "-", filepath.Join(dir, "cm.tsx"),
					"  // Pricing Plan Edit Dialog", "  // Navigation Edit Dialog"}
			},
			stdin:    "\n  <Dialog stdin />\n",
			wantExit: 0,
			wantFiles: map[string]string{
				"cm.tsx": strings.Replace(pricingDoc, "<Dialog old />", "<Dialog stdin />", 1),
			},
		},
		{
			name:  "apply_marker_not_found",
			files: map[string]string{"cm.tsx": pricingDoc},
			args: func(dir string) []string {
				return []string{"--no-color", "apply", filepath.Join(dir, "cm.tsx"), "// Missing", "  // Navigation Edit Dialog", "x"}
			},
			wantExit:  2,
			wantFiles: map[string]string{"cm.tsx": pricingDoc},
		},
		{
			name: "apply_missing_document",
			args: func(dir string) []string {
				return []string{"--no-color", "apply", filepath.Join(dir, "nope.tsx"), "A", "B", "x"}
			},
			wantExit: 3,
		},
		{
			name:  "apply_without_replacement",
			files: map[string]string{"cm.tsx": pricingDoc},
			args: func(dir string) []string {
				return []string{"--no-color", "apply", filepath.Join(dir, "cm.tsx"), "A", "B"}
			},
			wantExit:  1,
			wantFiles: map[string]string{"cm.tsx": pricingDoc},
		},
		{
			name:  "apply_empty_marker",
			files: map[string]string{"cm.tsx": pricingDoc},
			args: func(dir string) []string {
				return []string{"--no-color", "apply", filepath.Join(dir, "cm.tsx"), "", "B", "x"}
			},
			wantExit:  1,
			wantFiles: map[string]string{"cm.tsx": pricingDoc},
		},
		{
			name:  "apply_dry_run",
			files: map[string]string{"cm.tsx": pricingDoc},
			args: func(dir string) []string {
				return []string{"--no-color", "apply", "--dry-run", filepath.Join(dir, "cm.tsx"),
					"  // Pricing Plan Edit Dialog", "  // Navigation Edit Dialog", "  // Pricing Plan Edit Dialog\n"}
			},
			wantExit:   0,
			wantStdout: "dry-run",
			wantFiles:  map[string]string{"cm.tsx": pricingDoc},
		},
		{
			name:  "check_found",
			files: map[string]string{"doc.txt": "headXmidYtail"},
			args: func(dir string) []string {
				return []string{"--no-color", "check", filepath.Join(dir, "doc.txt"), "X", "Y"}
			},
			wantExit:   0,
			wantStdout: "start: 4, end: 8",
		},
		{
			name:  "check_not_found",
			files: map[string]string{"doc.txt": "headXmidYtail"},
			args: func(dir string) []string {
				return []string{"--no-color", "check", filepath.Join(dir, "doc.txt"), "X", "Z"}
			},
			wantExit:   2,
			wantStdout: "start: 4, end: -1",
			wantStderr: `end marker "Z" not found`,
		},
		{
			name: "run_config",
			files: map[string]string{
				"README.md":     "# Title\n<!-- BEGIN USAGE -->\nold usage\n<!-- END USAGE -->\n",
				"docs/a.md":     "a\n<!-- V -->v1<!-- /V -->\n",
				"docs/b.md":     "b\n<!-- V -->v1<!-- /V -->\n",
				"usage.txt":     "new usage\n",
				".splicerc.yml": "splices:\n  - name: usage\n    path: README.md\n    start: \"<!-- BEGIN USAGE -->\"\n    end: \"<!-- END USAGE -->\"\n    replacement_file: usage.txt\n    keep_start: true\n  - name: version\n    path: \"docs/*.md\"\n    start: \"<!-- V -->\"\n    end: \"<!-- /V -->\"\n    replacement: \"<!-- V -->v2\"\n",
			},
			args: func(dir string) []string {
				return []string{"--no-color", "run", "-c", filepath.Join(dir, ".splicerc.yml")}
			},
			wantExit:   0,
			wantStdout: "3 target(s): 3 spliced, 0 unchanged",
			wantFiles: map[string]string{
				"README.md": "# Title\n<!-- BEGIN USAGE -->new usage\n<!-- END USAGE -->\n",
				"docs/a.md": "a\n<!-- V -->v2<!-- /V -->\n",
				"docs/b.md": "b\n<!-- V -->v2<!-- /V -->\n",
			},
		},
		{
			name: "run_only_filters",
			files: map[string]string{
				"a.txt":        "S old E",
				"b.txt":        "S old E",
				"splicerc.hcl": "splice \"a\" {\n  path = \"a.txt\"\n  start = \"S\"\n  end = \"E\"\n  replacement = \"S new \"\n}\nsplice \"b\" {\n  path = \"b.txt\"\n  start = \"S\"\n  end = \"E\"\n  replacement = \"S new \"\n}\n",
			},
			args: func(dir string) []string {
				return []string{"--no-color", "run", "-c", filepath.Join(dir, "splicerc.hcl"), "--only", "b"}
			},
			wantExit: 0,
			wantFiles: map[string]string{
				"a.txt": "S old E",
				"b.txt": "S new E",
			},
		},
		{
			name: "run_unknown_only_name",
			files: map[string]string{
				"a.txt":         "S old E",
				"splicerc.json": `{"splices":[{"name":"a","path":"a.txt","start":"S","end":"E","replacement":"S new "}]}`,
			},
			args: func(dir string) []string {
				return []string{"--no-color", "run", "-c", filepath.Join(dir, "splicerc.json"), "--only", "zzz"}
			},
			wantExit:  1,
			wantFiles: map[string]string{"a.txt": "S old E"},
		},
		{
			name: "run_missing_markers",
			files: map[string]string{
				"a.txt":         "S old E",
				"b.txt":         "nothing",
				"splicerc.json": `{"splices":[{"path":"a.txt","start":"S","end":"E","replacement":"S new "},{"path":"b.txt","start":"S","end":"E","replacement":"S new "}]}`,
			},
			args: func(dir string) []string {
				return []string{"--no-color", "run", "-c", filepath.Join(dir, "splicerc.json")}
			},
			wantExit: 2,
			wantFiles: map[string]string{
				"a.txt": "S new E",
				"b.txt": "nothing",
			},
		},
		{
			name: "run_invalid_path_pattern",
			files: map[string]string{
				"splicerc.yaml": "splices:\n  - path: \"docs/[.md\"\n    start: S\n    end: E\n    replacement: x\n",
			},
			args: func(dir string) []string {
				return []string{"--no-color", "run", "-c", filepath.Join(dir, "splicerc.yaml")}
			},
			wantExit:   1,
			wantStderr: "invalid pattern",
		},
		{
			name: "run_unnamed_splices_on_one_file",
			files: map[string]string{
				"a.txt":         "S1 old E1\nS2 old E2\n",
				"splicerc.json": `{"splices":[{"path":"a.txt","start":"S1","end":"E1","replacement":"S1 new "},{"path":"a.txt","start":"S2","end":"E2","replacement":"S2 new "}]}`,
			},
			args: func(dir string) []string {
				return []string{"--no-color", "run", "-c", filepath.Join(dir, "splicerc.json")}
			},
			wantExit:   0,
			wantStdout: "a.txt#1",
			wantFiles: map[string]string{
				"a.txt": "S1 new E1\nS2 new E2\n",
			},
		},
		{
			name: "run_uppercase_config_extension",
			files: map[string]string{
				"a.txt":         "S old E",
				"SPLICERC.YAML": "splices:\n  - path: a.txt\n    start: S\n    end: E\n    replacement: \"S new \"\n",
			},
			args: func(dir string) []string {
				return []string{"--no-color", "run", "-c", filepath.Join(dir, "SPLICERC.YAML")}
			},
			wantExit:   0,
			wantStdout: "✅ all splices applied",
			wantFiles:  map[string]string{"a.txt": "S new E"},
		},
		{
			name: "version",
			args: func(dir string) []string {
				return []string{"version"}
			},
			wantExit:   0,
			wantStdout: "splicerc version info",
		},
		{
			name: "unknown_command",
			args: func(dir string) []string {
				return []string{"frobnicate"}
			},
			wantExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				path := filepath.Join(dir, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			}

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			code := run(context.Background(), tt.args(dir), strings.NewReader(tt.stdin), stdout, stderr)

			assert.Equal(t, tt.wantExit, code, "stderr: %s", stderr.String())
			if tt.wantStdout != "" {
				assert.Contains(t, stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
			for name, want := range tt.wantFiles {
				got, err := os.ReadFile(filepath.Join(dir, name))
				require.NoError(t, err)
				assert.Equal(t, want, string(got), "content of %s", name)
			}
		})
	}
}
