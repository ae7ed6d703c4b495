package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "sub/c.md", "sub/d.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
		wantErr bool
		wantIO  bool
	}{
		{
			name:    "plain_path_passthrough",
			pattern: filepath.Join(dir, "missing.md"),
			want:    []string{filepath.Join(dir, "missing.md")},
		},
		{
			name:    "url_passthrough",
			pattern: "mem://localhost/*.md",
			want:    []string{"mem://localhost/*.md"},
		},
		{
			name:    "single_level",
			pattern: filepath.Join(dir, "*.md"),
			want:    []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md")},
		},
		{
			name:    "double_star",
			pattern: filepath.Join(dir, "**", "*.md"),
			want: []string{
				filepath.Join(dir, "a.md"),
				filepath.Join(dir, "b.md"),
				filepath.Join(dir, "sub", "c.md"),
			},
		},
		{
			name:    "no_matches",
			pattern: filepath.Join(dir, "*.go"),
			want:    nil,
		},
		{
			name:    "invalid_pattern",
			pattern: filepath.Join(dir, "[a.md"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Glob(tt.pattern)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantIO, errors.Is(err, ErrIO), "only filesystem failures are i/o errors")
				return
			}
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
