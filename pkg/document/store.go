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

package document

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
)

// DefaultFileMode is used when writing a location whose current mode is unknown.
const DefaultFileMode os.FileMode = 0o644

// 📖 Reader returns the full content of a document
type Reader interface {
	Read(ctx context.Context, location string) (string, error)
}

// ✍️ Writer overwrites a document with new content
type Writer interface {
	Write(ctx context.Context, location string, content string) error
}

// 💾 ReadWriter combines Reader and Writer
type ReadWriter interface {
	Reader
	Writer
}

// Store reads and writes documents through afs. Locations are OS paths or
// afs URLs (file://, mem://, ...). Writes overwrite in place with no locking
// and no rename.
type Store struct {
	fs afs.Service
}

var _ ReadWriter = (*Store)(nil)

// NewStore creates a new Store
func NewStore() *Store {
	return NewStoreWithService(afs.New())
}

// NewStoreWithService creates a Store on top of an existing afs service
func NewStoreWithService(fs afs.Service) *Store {
	return &Store{fs: fs}
}

// Read implements Reader.Read
func (s *Store) Read(ctx context.Context, location string) (string, error) {
	u, err := URL(location)
	if err != nil {
		return "", &IOError{Op: OpRead, Location: location, Err: err}
	}

	zerolog.Ctx(ctx).Debug().Str("url", u).Msg("reading document")

	data, err := s.fs.DownloadWithURL(ctx, u)
	if err != nil {
		return "", &IOError{Op: OpRead, Location: location, Err: err}
	}
	return string(data), nil
}

// Write implements Writer.Write. The existing file mode is kept when the
// location already exists.
func (s *Store) Write(ctx context.Context, location string, content string) error {
	u, err := URL(location)
	if err != nil {
		return &IOError{Op: OpWrite, Location: location, Err: err}
	}

	mode := DefaultFileMode
	if obj, err := s.fs.Object(ctx, u); err == nil && obj != nil && !obj.IsDir() {
		mode = obj.Mode().Perm()
	}

	zerolog.Ctx(ctx).Debug().Str("url", u).Int("bytes", len(content)).Stringer("mode", mode).Msg("writing document")

	if err := s.fs.Upload(ctx, u, mode, strings.NewReader(content)); err != nil {
		return &IOError{Op: OpWrite, Location: location, Err: err}
	}
	return nil
}

// URL turns a location into an afs URL. Plain paths become absolute file:// URLs.
func URL(location string) (string, error) {
	if IsURL(location) {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// IsURL reports whether location carries a scheme
func IsURL(location string) bool {
	return strings.Contains(location, "://")
}
