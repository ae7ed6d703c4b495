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

package opts

import (
	"io"

	"github.com/walteh/splicerc/pkg/document"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Debug   bool
	NoColor bool

	Store      *document.Store
	UserLogger *UserLogger
}

// New creates RootOpts bound to the given streams
func New(stdin io.Reader, stdout, stderr io.Writer) *RootOpts {
	return &RootOpts{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Store:  document.NewStore(),
	}
}
