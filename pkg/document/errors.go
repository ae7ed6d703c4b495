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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrIO matches every *IOError with errors.Is.
var ErrIO = errors.Base("document i/o failure")

// Op names the store operation that failed
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
	OpGlob  Op = "glob"
)

// 💥 IOError wraps a failure of the underlying storage. It is never retried.
type IOError struct {
	Op       Op
	Location string
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Location, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIO) hold for any IOError.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
