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
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/splicerc/pkg/config"
	"github.com/walteh/splicerc/pkg/document"
	"github.com/walteh/splicerc/pkg/splice"
	"gitlab.com/tozd/go/errors"
)

// 🗺️ Plan turns configured splices into targets. Path patterns expand to one
// target per matching file, and replacement files are read once per splice.
func Plan(ctx context.Context, splices []config.Splice, reader document.Reader) ([]Target, error) {
	logger := zerolog.Ctx(ctx)

	var targets []Target
	for _, s := range splices {
		replacement, err := replacementFor(ctx, s, reader)
		if err != nil {
			return nil, errors.Errorf("splice %s: %w", s.Name, err)
		}

		locations, err := document.Glob(s.Path)
		if err != nil {
			return nil, errors.Errorf("splice %s: expanding path: %w", s.Name, err)
		}
		if len(locations) == 0 {
			return nil, errors.Errorf("splice %s: pattern %q matched no files", s.Name, s.Path)
		}

		mode := splice.ModeVerbatim
		if s.KeepStart {
			mode = splice.ModeKeepStart
		}

		for _, loc := range locations {
			name := s.Name
			if len(locations) > 1 {
				name = s.Name + ":" + loc
			}
			targets = append(targets, Target{
				Name:        name,
				Location:    loc,
				Start:       s.Start,
				End:         s.End,
				Replacement: replacement,
				Mode:        mode,
			})
		}

		logger.Debug().Str("splice", s.Name).Int("targets", len(locations)).Msg("planned splice")
	}
	return targets, nil
}

func replacementFor(ctx context.Context, s config.Splice, reader document.Reader) (string, error) {
	if s.Replacement != nil {
		return *s.Replacement, nil
	}
	content, err := reader.Read(ctx, s.ReplacementFile)
	if err != nil {
		return "", errors.Errorf("reading replacement file: %w", err)
	}
	return content, nil
}
