// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fueltools/dynamic-abi/abitypes"
)

// Param describes one declared function parameter.
type Param struct {
	// Name is the Go argument name; defaults to argN when empty.
	Name string

	// Type is the wire type of the parameter.
	Type *abitypes.ParamType

	// SigType overrides how the parameter is rendered inside the call
	// signature, for named custom types (e.g. "MyStruct" instead of the
	// canonical "struct(u8,bool)"). The canonical rendering is used when
	// empty.
	SigType string
}

// Function declares one ABI entry point to generate bindings for.
type Function struct {
	Name   string // entry point name as it appears in the call signature
	Params []Param
}

// Signature returns the textual call signature the selector is derived
// from, e.g. "entry_one(u64)".
func (f *Function) Signature() string {
	parts := make([]string, len(f.Params))
	for i, param := range f.Params {
		if param.SigType != "" {
			parts[i] = param.SigType
		} else {
			parts[i] = param.Type.String()
		}
	}
	return f.Name + "(" + strings.Join(parts, ",") + ")"
}

// GenerationRequest represents a request to generate bindings for a set of
// functions into a single file.
type GenerationRequest struct {
	FileName  string
	Package   string
	Functions []Function
}

// CodeGenerator manages batch generation of call bindings for multiple
// output files.
type CodeGenerator struct {
	requests []*GenerationRequest
	options  *CodeGenOptions
}

// NewCodeGenerator creates a new code generator instance.
func NewCodeGenerator(opts ...CodeGenOption) *CodeGenerator {
	options := &CodeGenOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &CodeGenerator{
		requests: make([]*GenerationRequest, 0),
		options:  options,
	}
}

// BuildFile queues the given functions for generation into fileName within
// the named package.
func (cg *CodeGenerator) BuildFile(fileName string, pkgName string, fns ...Function) error {
	if fileName == "" {
		return fmt.Errorf("file name is required")
	}
	if pkgName == "" {
		return fmt.Errorf("package name is required")
	}
	if len(fns) == 0 {
		return fmt.Errorf("no functions requested for %s", fileName)
	}

	seen := map[string]bool{}
	for i := range fns {
		fn := &fns[i]
		if fn.Name == "" {
			return fmt.Errorf("function %d has no name", i)
		}
		if seen[fn.Name] {
			return fmt.Errorf("duplicate function %s in %s", fn.Name, fileName)
		}
		seen[fn.Name] = true

		for j := range fn.Params {
			if fn.Params[j].Type == nil {
				return fmt.Errorf("function %s: parameter %d has no type", fn.Name, j)
			}
			if fn.Params[j].Name == "" {
				fn.Params[j].Name = fmt.Sprintf("arg%d", j)
			}
		}
	}

	cg.requests = append(cg.requests, &GenerationRequest{
		FileName:  fileName,
		Package:   pkgName,
		Functions: fns,
	})

	return nil
}

// GenerateToMap generates bindings for all requested files and returns
// them as a map of file name to formatted source code.
func (cg *CodeGenerator) GenerateToMap() (map[string]string, error) {
	if len(cg.requests) == 0 {
		return nil, fmt.Errorf("no files requested for generation")
	}
	if cg.options.NoSelectorVars && cg.options.NoCallHelpers {
		return nil, fmt.Errorf("nothing to generate: selector variables and call helpers are both disabled")
	}

	results := make(map[string]string)
	for _, req := range cg.requests {
		code, err := generateFile(req, cg.options)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", req.FileName, err)
		}
		results[req.FileName] = code
	}

	return results, nil
}

// Generate generates bindings for all requested files and writes them to
// disk, creating parent directories as needed.
func (cg *CodeGenerator) Generate() error {
	results, err := cg.GenerateToMap()
	if err != nil {
		return err
	}

	for fileName, code := range results {
		if dir := filepath.Dir(fileName); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory for %s: %w", fileName, err)
			}
		}
		if err := os.WriteFile(fileName, []byte(code), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", fileName, err)
		}
	}

	return nil
}
