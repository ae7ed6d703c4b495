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
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 📊 Diff summarizes a change line by line
type Diff struct {
	Added   int    // Lines inserted
	Removed int    // Lines deleted
	Preview string // Changed lines prefixed with "+" or "-"
}

// Empty reports whether the diff has no changes
func (d Diff) Empty() bool {
	return d.Added == 0 && d.Removed == 0
}

// 🔍 ComputeDiff compares two documents line by line
func ComputeDiff(before, after string) Diff {
	if before == after {
		return Diff{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var d Diff
	var preview strings.Builder
	for _, diff := range diffs {
		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			continue
		}
		for _, line := range splitLines(diff.Text) {
			if prefix == "+" {
				d.Added++
			} else {
				d.Removed++
			}
			preview.WriteString(prefix)
			preview.WriteString(line)
			preview.WriteByte('\n')
		}
	}
	d.Preview = preview.String()
	return d
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
