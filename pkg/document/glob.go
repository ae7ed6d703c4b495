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
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// IsPattern reports whether a local path contains glob metacharacters
func IsPattern(path string) bool {
	return !IsURL(path) && strings.ContainsAny(path, "*?[{")
}

// 🔍 Glob expands a doublestar pattern into sorted file paths. Plain paths
// and URLs are returned as-is, whether or not they exist, so that the read
// reports the failure.
func Glob(pattern string) ([]string, error) {
	if !IsPattern(pattern) {
		return []string{pattern}, nil
	}

	if !doublestar.ValidatePathPattern(pattern) {
		return nil, errors.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &IOError{Op: OpGlob, Location: pattern, Err: err}
	}

	sort.Strings(matches)
	return matches, nil
}
