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

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultConcurrency bounds how many files a run processes at once
const DefaultConcurrency = 4

// ✂️ Splice describes one marker-delimited replacement in one target
type Splice struct {
	Name            string  `json:"name,omitempty" yaml:"name,omitempty"`                         // Display name, defaults to Path
	Path            string  `json:"path" yaml:"path"`                                             // Target path, glob pattern or afs URL
	Start           string  `json:"start" yaml:"start"`                                           // Start marker
	End             string  `json:"end" yaml:"end"`                                               // End marker
	Replacement     *string `json:"replacement,omitempty" yaml:"replacement,omitempty"`           // Inline replacement block
	ReplacementFile string  `json:"replacement_file,omitempty" yaml:"replacement_file,omitempty"` // File holding the replacement block
	KeepStart       bool    `json:"keep_start,omitempty" yaml:"keep_start,omitempty"`             // Re-emit the start marker automatically

	defaultName bool
}

// 📚 Config represents a splicerc job file
type Config struct {
	Splices     []Splice `json:"splices" yaml:"splices"`
	DryRun      bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Concurrency int      `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`

	location string
}

// Location returns the path the config was loaded from
func (cfg *Config) Location() string {
	return cfg.location
}

// Dir returns the directory relative paths are resolved against
func (cfg *Config) Dir() string {
	if cfg.location == "" {
		return "."
	}
	return filepath.Dir(cfg.location)
}

// 🔍 Validate checks the configuration and fills in defaults. Unnamed splices
// are named after their path, with a "#index" suffix when that name is taken.
func Validate(ctx context.Context, cfg *Config) error {
	logger := zerolog.Ctx(ctx)

	if len(cfg.Splices) == 0 {
		return errors.Errorf("at least one splice is required")
	}
	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative")
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	seen := make(map[string]int, len(cfg.Splices))
	for i := range cfg.Splices {
		s := &cfg.Splices[i]
		if err := s.Validate(); err != nil {
			return errors.Errorf("splice %d: %w", i, err)
		}
		s.defaultName = s.defaultName || s.Name == ""
		if s.Name == "" {
			s.Name = s.Path
		}
		if _, ok := seen[s.Name]; ok && s.defaultName {
			s.Name = fmt.Sprintf("%s#%d", s.Name, i)
		}
		if prev, ok := seen[s.Name]; ok {
			return errors.Errorf("splice %d: name %q already used by splice %d", i, s.Name, prev)
		}
		seen[s.Name] = i
	}

	logger.Debug().Int("splices", len(cfg.Splices)).Int("concurrency", cfg.Concurrency).Msg("validated config")
	return nil
}

// Validate checks a single splice definition
func (s *Splice) Validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return errors.Errorf("path is required")
	}
	if s.Start == "" {
		return errors.Errorf("start marker is required")
	}
	if s.End == "" {
		return errors.Errorf("end marker is required")
	}
	if s.Replacement == nil && s.ReplacementFile == "" {
		return errors.Errorf("one of replacement or replacement_file is required")
	}
	if s.Replacement != nil && s.ReplacementFile != "" {
		return errors.Errorf("replacement and replacement_file are mutually exclusive")
	}
	return nil
}

// 📂 resolve makes relative paths relative to dir. URLs and absolute paths
// are left alone.
func (cfg *Config) resolve(dir string) {
	for i := range cfg.Splices {
		s := &cfg.Splices[i]
		if s.Name == "" {
			s.Name = s.Path
			s.defaultName = true
		}
		s.Path = resolvePath(dir, s.Path)
		if s.ReplacementFile != "" {
			s.ReplacementFile = resolvePath(dir, s.ReplacementFile)
		}
	}
}

func resolvePath(dir, p string) string {
	if p == "" || strings.Contains(p, "://") || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// 📝 String returns a string representation of the splice
func (s Splice) String() string {
	return fmt.Sprintf("%s [%q .. %q]", s.Path, s.Start, s.End)
}

// Select returns the splices whose names are in names, in config order.
// An empty names list selects everything.
func (cfg *Config) Select(names ...string) ([]Splice, error) {
	if len(names) == 0 {
		return cfg.Splices, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var out []Splice
	for _, s := range cfg.Splices {
		if want[s.Name] {
			out = append(out, s)
			delete(want, s.Name)
		}
	}

	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for _, n := range names {
			if want[n] {
				missing = append(missing, n)
			}
		}
		return nil, errors.Errorf("unknown splice name(s): %s", strings.Join(missing, ", "))
	}
	return out, nil
}
