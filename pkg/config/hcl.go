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
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
//
//	concurrency = 2
//
//	splice "usage" {
//	  path        = "README.md"
//	  start       = "<!-- BEGIN USAGE -->"
//	  end         = "<!-- END USAGE -->"
//	  replacement = file("usage.md")
//	  keep_start  = true
//	}
type HCLParser struct{}

type hclSplice struct {
	Name            string  `hcl:"name,label"`
	Path            string  `hcl:"path"`
	Start           string  `hcl:"start"`
	End             string  `hcl:"end"`
	Replacement     *string `hcl:"replacement,optional"`
	ReplacementFile string  `hcl:"replacement_file,optional"`
	KeepStart       bool    `hcl:"keep_start,optional"`
}

type hclConfig struct {
	DryRun      bool        `hcl:"dry_run,optional"`
	Concurrency int         `hcl:"concurrency,optional"`
	Splices     []hclSplice `hcl:"splice,block"`
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := newEvalContext(filepath.Dir(filename))

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		DryRun:      hclCfg.DryRun,
		Concurrency: hclCfg.Concurrency,
	}
	for _, s := range hclCfg.Splices {
		cfg.Splices = append(cfg.Splices, Splice{
			Name:            s.Name,
			Path:            s.Path,
			Start:           s.Start,
			End:             s.End,
			Replacement:     s.Replacement,
			ReplacementFile: s.ReplacementFile,
			KeepStart:       s.KeepStart,
		})
	}

	return cfg, nil
}

// newEvalContext exposes env.NAME and file(path), with path relative to dir
func newEvalContext(dir string) *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"file": fileFunc(dir),
		},
	}
}

func fileFunc(dir string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "path", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			path := resolvePath(dir, args[0].AsString())
			data, err := os.ReadFile(path)
			if err != nil {
				return cty.NilVal, errors.Errorf("reading %s: %w", path, err)
			}
			return cty.StringVal(string(data)), nil
		},
	})
}
