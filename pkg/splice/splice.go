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

import (
	"strings"
)

// 📏 Span is the half-open byte range [Start, End) that a splice discards.
// Start <= End is not guaranteed: when the end marker appears before the
// start marker the span is "reversed" and the splice duplicates content.
type Span struct {
	Start int
	End   int
}

// Len returns the number of discarded bytes, or 0 for an empty or reversed span.
func (s Span) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Reversed reports whether the end marker was found before the start marker.
func (s Span) Reversed() bool {
	return s.End < s.Start
}

// 🔍 Locate finds the first occurrence of each marker. The two searches are
// independent; the end marker is not required to follow the start marker.
func Locate(document, startMarker, endMarker string) (Span, error) {
	span := Span{
		Start: strings.Index(document, startMarker),
		End:   strings.Index(document, endMarker),
	}

	switch {
	case span.Start == -1 && span.End == -1:
		return span, &NotFoundError{Which: MarkerBoth, StartOffset: span.Start, EndOffset: span.End}
	case span.Start == -1:
		return span, &NotFoundError{Which: MarkerStart, StartOffset: span.Start, EndOffset: span.End}
	case span.End == -1:
		return span, &NotFoundError{Which: MarkerEnd, StartOffset: span.Start, EndOffset: span.End}
	}

	return span, nil
}

// ✂️ Splice replaces document[start:end] with replacement, where start and end
// are the offsets of the first occurrence of each marker. The start marker
// occurrence is discarded along with the span; the end marker and everything
// after it are kept. If either marker is missing it returns a *NotFoundError
// and an empty string that must not be persisted.
func Splice(document, startMarker, endMarker, replacement string) (string, error) {
	span, err := Locate(document, startMarker, endMarker)
	if err != nil {
		return "", err
	}
	return apply(document, span, replacement), nil
}

// apply has no ordering guard: a reversed span keeps document[:Start] and
// then document[End:] in full.
func apply(document string, span Span, replacement string) string {
	var b strings.Builder
	b.Grow(span.Start + len(replacement) + len(document) - span.End)
	b.WriteString(document[:span.Start])
	b.WriteString(replacement)
	b.WriteString(document[span.End:])
	return b.String()
}

// RestatesStartMarker reports whether a verbatim replacement contains the start
// marker, so that running the same splice against its own output finds a start
// marker again.
func RestatesStartMarker(replacement, startMarker string) bool {
	return strings.Contains(replacement, startMarker)
}
