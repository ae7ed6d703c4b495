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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrMarkerNotFound matches every *NotFoundError with errors.Is.
var ErrMarkerNotFound = errors.Base("marker not found")

// 🏷️ Marker identifies which marker(s) a search failed to find.
type Marker int

const (
	MarkerStart Marker = iota + 1
	MarkerEnd
	MarkerBoth
)

// String returns a string representation of Marker
func (m Marker) String() string {
	switch m {
	case MarkerStart:
		return "start"
	case MarkerEnd:
		return "end"
	case MarkerBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ❌ NotFoundError is returned when the start marker, the end marker, or both
// are absent from the document. Offsets of missing markers are -1.
type NotFoundError struct {
	Which       Marker
	StartOffset int
	EndOffset   int
}

func (e *NotFoundError) Error() string {
	var what string
	switch e.Which {
	case MarkerStart:
		what = "start marker not found"
	case MarkerEnd:
		what = "end marker not found"
	default:
		what = "start and end markers not found"
	}
	return fmt.Sprintf("%s (start: %d, end: %d)", what, e.StartOffset, e.EndOffset)
}

// Is makes errors.Is(err, ErrMarkerNotFound) hold for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrMarkerNotFound
}

// StartMissing reports whether the start marker was not found.
func (e *NotFoundError) StartMissing() bool {
	return e.Which == MarkerStart || e.Which == MarkerBoth
}

// EndMissing reports whether the end marker was not found.
func (e *NotFoundError) EndMissing() bool {
	return e.Which == MarkerEnd || e.Which == MarkerBoth
}
