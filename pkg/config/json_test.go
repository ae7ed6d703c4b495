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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid",
			input: `{
				"concurrency": 3,
				"splices": [
					{
						"name": "usage",
						"path": "README.md",
						"start": "<!-- BEGIN USAGE -->",
						"end": "<!-- END USAGE -->",
						"replacement": "<!-- BEGIN USAGE -->\nusage\n",
						"keep_start": false
					}
				]
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Concurrency)
				require.Len(t, cfg.Splices, 1)
				assert.Equal(t, "usage", cfg.Splices[0].Name)
				require.NotNil(t, cfg.Splices[0].Replacement)
				assert.Equal(t, "<!-- BEGIN USAGE -->\nusage\n", *cfg.Splices[0].Replacement)
			},
		},
		{
			name:        "unknown_field",
			input:       `{"splices": [], "destination": "x"}`,
			errContains: `unknown field "destination"`,
		},
		{
			name:        "invalid_json",
			input:       `{"splices": [`,
			errContains: "parsing JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &JSONParser{}
			assert.True(t, p.CanParse("splicerc.json"))
			assert.True(t, p.CanParse("SPLICERC.JSON"))
			assert.False(t, p.CanParse("splicerc.yaml"))

			cfg, err := p.Parse(context.Background(), []byte(tt.input), "splicerc.json")
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: "splicerc.yaml", want: &YAMLParser{}},
		{filename: "splicerc.yml", want: &YAMLParser{}},
		{filename: "splicerc.hcl", want: &HCLParser{}},
		{filename: "splicerc.json", want: &JSONParser{}},
		{filename: "SPLICERC.YAML", want: &YAMLParser{}},
		{filename: "splicerc.YML", want: &YAMLParser{}},
		{filename: "splicerc.HCL", want: &HCLParser{}},
		{filename: "splicerc.Json", want: &JSONParser{}},
		{filename: "splicerc.txt", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}
