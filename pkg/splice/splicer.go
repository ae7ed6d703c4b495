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

package splice

// 🎛️ Mode controls how the replacement block relates to the start marker.
type Mode int

const (
	// ModeVerbatim inserts the replacement exactly as given. The replacement
	// must restate the start marker itself if later runs should find it.
	ModeVerbatim Mode = iota

	// ModeKeepStart re-emits the start marker ahead of the replacement, so the
	// caller only supplies the interior content of the block.
	ModeKeepStart
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeKeepStart:
		return "keep-start"
	default:
		return "verbatim"
	}
}

// 📦 Result contains the outcome of a successful splice
type Result struct {
	// Span is the range of the original document that was replaced
	Span Span

	// OriginalContent is the document before the splice
	OriginalContent string

	// ModifiedContent is the document after the splice
	ModifiedContent string

	// WasModified is false when the splice reproduced the original document
	WasModified bool
}

// ✂️ Splicer applies a single marker-delimited splice
type Splicer struct {
	Mode Mode
}

// NewSplicer creates a new Splicer
func NewSplicer(mode Mode) *Splicer {
	return &Splicer{Mode: mode}
}

// Splice locates both markers in document and replaces the span between them.
// No result is returned when a marker is missing.
func (s *Splicer) Splice(document, startMarker, endMarker, replacement string) (*Result, error) {
	span, err := Locate(document, startMarker, endMarker)
	if err != nil {
		return nil, err
	}

	modified := apply(document, span, s.Block(startMarker, replacement))

	return &Result{
		Span:            span,
		OriginalContent: document,
		ModifiedContent: modified,
		WasModified:     modified != document,
	}, nil
}

// Block returns the text that will be inserted for replacement under this
// splicer's mode.
func (s *Splicer) Block(startMarker, replacement string) string {
	if s.Mode == ModeKeepStart {
		return startMarker + replacement
	}
	return replacement
}
