// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package codegen_test

import (
	"strings"
	"testing"

	"github.com/fueltools/dynamic-abi/abitypes"
	"github.com/fueltools/dynamic-abi/codegen"
)

func entryOne() codegen.Function {
	return codegen.Function{
		Name: "entry_one",
		Params: []codegen.Param{
			{Name: "arg", Type: abitypes.U64Type()},
		},
	}
}

func TestGenerateToMap(t *testing.T) {
	cg := codegen.NewCodeGenerator()
	err := cg.BuildFile("bindings.go", "bindings", entryOne(), codegen.Function{
		Name: "takes_two_types",
		Params: []codegen.Param{
			{Name: "first", Type: abitypes.U32Type()},
			{Name: "second", Type: abitypes.BoolType()},
		},
	})
	if err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}

	results, err := cg.GenerateToMap()
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	code, ok := results["bindings.go"]
	if !ok {
		t.Fatalf("no code generated for bindings.go")
	}

	for _, expected := range []string{
		"// Code generated by dynamic-abi codegen; DO NOT EDIT.",
		"package bindings",
		`var EntryOneSelector = dynabi.EncodeFunctionSelector([]byte("entry_one(u64)"))`,
		"func EncodeEntryOneCall(arg uint64) ([]byte, error) {",
		`var TakesTwoTypesSelector = dynabi.EncodeFunctionSelector([]byte("takes_two_types(u32,bool)"))`,
		"func EncodeTakesTwoTypesCall(first uint32, second bool) ([]byte, error) {",
		"abitypes.U32Token(first)",
		"abitypes.BoolToken(second)",
		"return dynabi.NewABIEncoder().Encode(tokens)",
	} {
		if !strings.Contains(code, expected) {
			t.Errorf("generated code is missing %q\n%s", expected, code)
		}
	}
}

func TestGenerateSigTypeOverride(t *testing.T) {
	cg := codegen.NewCodeGenerator(codegen.WithNoCallHelpers())
	err := cg.BuildFile("bindings.go", "bindings", codegen.Function{
		Name: "takes_my_struct",
		Params: []codegen.Param{
			{
				Name:    "value",
				Type:    abitypes.StructType(abitypes.U8Type(), abitypes.BoolType()),
				SigType: "MyStruct",
			},
		},
	})
	if err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}

	results, err := cg.GenerateToMap()
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	code := results["bindings.go"]
	if !strings.Contains(code, `"takes_my_struct(MyStruct)"`) {
		t.Errorf("signature does not use the override:\n%s", code)
	}
	if strings.Contains(code, "EncodeTakesMyStructCall") {
		t.Errorf("call helper generated despite WithNoCallHelpers:\n%s", code)
	}
	// with helpers disabled the formatter must drop the abitypes import
	if strings.Contains(code, "dynamic-abi/abitypes") {
		t.Errorf("unused abitypes import survived formatting:\n%s", code)
	}
}

func TestGenerateNoSelectorVars(t *testing.T) {
	cg := codegen.NewCodeGenerator(codegen.WithNoSelectorVars())
	if err := cg.BuildFile("bindings.go", "bindings", entryOne()); err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}

	results, err := cg.GenerateToMap()
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	code := results["bindings.go"]
	if strings.Contains(code, "EntryOneSelector") {
		t.Errorf("selector variable generated despite WithNoSelectorVars:\n%s", code)
	}
	if !strings.Contains(code, "func EncodeEntryOneCall(arg uint64) ([]byte, error) {") {
		t.Errorf("call helper missing:\n%s", code)
	}
}

func TestGenerateHeaderComment(t *testing.T) {
	cg := codegen.NewCodeGenerator(codegen.WithHeaderComment("Source: contract v2"))
	if err := cg.BuildFile("bindings.go", "bindings", entryOne()); err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}

	results, err := cg.GenerateToMap()
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if !strings.Contains(results["bindings.go"], "// Source: contract v2") {
		t.Errorf("header comment missing:\n%s", results["bindings.go"])
	}
}

func TestGenerateUnitParam(t *testing.T) {
	cg := codegen.NewCodeGenerator()
	err := cg.BuildFile("bindings.go", "bindings", codegen.Function{
		Name:   "takes_unit",
		Params: []codegen.Param{{Type: abitypes.UnitType(), SigType: "()"}},
	})
	if err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}

	results, err := cg.GenerateToMap()
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	code := results["bindings.go"]
	if !strings.Contains(code, `"takes_unit(())"`) {
		t.Errorf("unit signature missing:\n%s", code)
	}
	if !strings.Contains(code, "func EncodeTakesUnitCall() ([]byte, error) {") {
		t.Errorf("unit parameter should produce no Go argument:\n%s", code)
	}
	if !strings.Contains(code, "abitypes.UnitToken()") {
		t.Errorf("unit token missing:\n%s", code)
	}
}

func TestBuildFileValidation(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		pkgName  string
		fns      []codegen.Function
	}{
		{"empty file name", "", "bindings", []codegen.Function{entryOne()}},
		{"empty package", "bindings.go", "", []codegen.Function{entryOne()}},
		{"no functions", "bindings.go", "bindings", nil},
		{"unnamed function", "bindings.go", "bindings", []codegen.Function{{}}},
		{"duplicate function", "bindings.go", "bindings", []codegen.Function{entryOne(), entryOne()}},
		{"untyped parameter", "bindings.go", "bindings", []codegen.Function{
			{Name: "broken", Params: []codegen.Param{{Name: "arg"}}},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cg := codegen.NewCodeGenerator()
			if err := cg.BuildFile(test.fileName, test.pkgName, test.fns...); err == nil {
				t.Errorf("expected BuildFile to fail")
			}
		})
	}
}

func TestGenerateNothingEnabled(t *testing.T) {
	cg := codegen.NewCodeGenerator(codegen.WithNoSelectorVars(), codegen.WithNoCallHelpers())
	if err := cg.BuildFile("bindings.go", "bindings", entryOne()); err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}
	if _, err := cg.GenerateToMap(); err == nil {
		t.Errorf("expected generation to fail with both flavors disabled")
	}
}

func TestDefaultParamNames(t *testing.T) {
	cg := codegen.NewCodeGenerator()
	err := cg.BuildFile("bindings.go", "bindings", codegen.Function{
		Name: "takes_two",
		Params: []codegen.Param{
			{Type: abitypes.U32Type()},
			{Type: abitypes.U32Type()},
		},
	})
	if err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}

	results, err := cg.GenerateToMap()
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if !strings.Contains(results["bindings.go"], "func EncodeTakesTwoCall(arg0 uint32, arg1 uint32) ([]byte, error) {") {
		t.Errorf("default argument names missing:\n%s", results["bindings.go"])
	}
}
