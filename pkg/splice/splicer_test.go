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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestSplicer_Splice(t *testing.T) {
	tests := []struct {
		name         string
		mode         Mode
		document     string
		replacement  string
		want         string
		wantSpan     Span
		wantModified bool
		wantErr      bool
	}{
		{
			name:         "verbatim",
			mode:         ModeVerbatim,
			document:     "START\nold\nEND\nrest",
			replacement:  "START\nnew\n",
			want:         "START\nnew\nEND\nrest",
			wantSpan:     Span{Start: 0, End: 10},
			wantModified: true,
		},
		{
			name:         "keep_start_supplies_interior_only",
			mode:         ModeKeepStart,
			document:     "START\nold\nEND\nrest",
			replacement:  "\nnew\n",
			want:         "START\nnew\nEND\nrest",
			wantSpan:     Span{Start: 0, End: 10},
			wantModified: true,
		},
		{
			name:         "keep_start_with_empty_interior",
			mode:         ModeKeepStart,
			document:     "x START old END y",
			replacement:  "",
			want:         "x STARTEND y",
			wantSpan:     Span{Start: 2, End: 12},
			wantModified: true,
		},
		{
			name:         "unchanged_when_block_matches",
			mode:         ModeVerbatim,
			document:     "START same END",
			replacement:  "START same ",
			want:         "START same END",
			wantSpan:     Span{Start: 0, End: 11},
			wantModified: false,
		},
		{
			name:        "missing_marker",
			mode:        ModeKeepStart,
			document:    "no markers",
			replacement: "anything",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplicer(tt.mode)
			result, err := s.Splice(tt.document, "START", "END", tt.replacement)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMarkerNotFound))
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.document, result.OriginalContent)
			assert.Equal(t, tt.want, result.ModifiedContent)
			assert.Equal(t, tt.wantSpan, result.Span)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestSplicer_KeepStartIsIdempotent(t *testing.T) {
	s := NewSplicer(ModeKeepStart)

	first, err := s.Splice("a\n// BEGIN\nold\n// END\nb\n", "// BEGIN", "// END", "\nnew\n")
	require.NoError(t, err)

	second, err := s.Splice(first.ModifiedContent, "// BEGIN", "// END", "\nnew\n")
	require.NoError(t, err)

	assert.Equal(t, first.ModifiedContent, second.ModifiedContent)
	assert.False(t, second.WasModified)
}

func TestSplicer_Block(t *testing.T) {
	assert.Equal(t, "body", NewSplicer(ModeVerbatim).Block("START", "body"))
	assert.Equal(t, "STARTbody", NewSplicer(ModeKeepStart).Block("START", "body"))
	assert.Equal(t, "verbatim", ModeVerbatim.String())
	assert.Equal(t, "keep-start", ModeKeepStart.String())
}
