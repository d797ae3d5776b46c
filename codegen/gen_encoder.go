// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"

	"github.com/fueltools/dynamic-abi/abitypes"
)

// generateFile renders the bindings for one request and runs the result
// through the imports-aware formatter, which also drops the unused import
// when only one of the two binding flavors is enabled.
func generateFile(req *GenerationRequest, opts *CodeGenOptions) (string, error) {
	code := strings.Builder{}

	code.WriteString("// Code generated by dynamic-abi codegen; DO NOT EDIT.\n")
	if opts.HeaderComment != "" {
		for _, line := range strings.Split(strings.TrimRight(opts.HeaderComment, "\n"), "\n") {
			code.WriteString("// " + line + "\n")
		}
	}
	code.WriteString("\n")
	code.WriteString("package " + req.Package + "\n\n")
	code.WriteString("import (\n")
	code.WriteString("\tdynabi \"github.com/fueltools/dynamic-abi\"\n")
	code.WriteString("\t\"github.com/fueltools/dynamic-abi/abitypes\"\n")
	code.WriteString(")\n")

	for i := range req.Functions {
		if err := generateFunction(&code, &req.Functions[i], opts); err != nil {
			return "", err
		}
	}

	formatted, err := imports.Process(req.FileName, []byte(code.String()), nil)
	if err != nil {
		return "", fmt.Errorf("failed to format generated code: %w", err)
	}

	return string(formatted), nil
}

func generateFunction(code *strings.Builder, fn *Function, opts *CodeGenOptions) error {
	goName := toGoName(fn.Name)
	signature := fn.Signature()

	if !opts.NoSelectorVars {
		fmt.Fprintf(code, "\n// %sSelector is the function selector for %q.\n", goName, signature)
		fmt.Fprintf(code, "var %sSelector = dynabi.EncodeFunctionSelector([]byte(%q))\n", goName, signature)
	}

	if opts.NoCallHelpers {
		return nil
	}

	args := make([]string, 0, len(fn.Params))
	tokens := make([]string, 0, len(fn.Params))
	for i := range fn.Params {
		param := &fn.Params[i]

		goType, ok := goParamType(param.Type)
		if !ok {
			return fmt.Errorf("function %s: parameter %s has unsupported type kind %v", fn.Name, param.Name, param.Type.Kind)
		}
		if goType != "" {
			args = append(args, param.Name+" "+goType)
		}
		tokens = append(tokens, tokenExpr(param.Type, param.Name))
	}

	fmt.Fprintf(code, "\n// Encode%sCall encodes a call to %q.\n", goName, signature)
	fmt.Fprintf(code, "func Encode%sCall(%s) ([]byte, error) {\n", goName, strings.Join(args, ", "))
	if len(tokens) == 0 {
		code.WriteString("\treturn dynabi.NewABIEncoder().Encode(nil)\n")
	} else {
		code.WriteString("\ttokens := []*abitypes.Token{\n")
		for _, token := range tokens {
			code.WriteString("\t\t" + token + ",\n")
		}
		code.WriteString("\t}\n")
		code.WriteString("\treturn dynabi.NewABIEncoder().Encode(tokens)\n")
	}
	code.WriteString("}\n")

	return nil
}

// goParamType maps a wire type to the Go argument type of the generated
// helper. Composite parameters are passed as caller-built token trees.
// The empty string marks parameters that produce no Go argument (unit).
func goParamType(t *abitypes.ParamType) (string, bool) {
	switch t.Kind {
	case abitypes.Unit:
		return "", true
	case abitypes.U8:
		return "uint8", true
	case abitypes.U16:
		return "uint16", true
	case abitypes.U32:
		return "uint32", true
	case abitypes.U64:
		return "uint64", true
	case abitypes.Bool:
		return "bool", true
	case abitypes.Byte:
		return "byte", true
	case abitypes.B256:
		return "[32]byte", true
	case abitypes.String:
		return "string", true
	case abitypes.Array, abitypes.Struct, abitypes.Tuple, abitypes.Enum:
		return "*abitypes.Token", true
	default:
		return "", false
	}
}

func tokenExpr(t *abitypes.ParamType, argName string) string {
	switch t.Kind {
	case abitypes.Unit:
		return "abitypes.UnitToken()"
	case abitypes.U8:
		return fmt.Sprintf("abitypes.U8Token(%s)", argName)
	case abitypes.U16:
		return fmt.Sprintf("abitypes.U16Token(%s)", argName)
	case abitypes.U32:
		return fmt.Sprintf("abitypes.U32Token(%s)", argName)
	case abitypes.U64:
		return fmt.Sprintf("abitypes.U64Token(%s)", argName)
	case abitypes.Bool:
		return fmt.Sprintf("abitypes.BoolToken(%s)", argName)
	case abitypes.Byte:
		return fmt.Sprintf("abitypes.ByteToken(%s)", argName)
	case abitypes.B256:
		return fmt.Sprintf("abitypes.B256Token(%s)", argName)
	case abitypes.String:
		return fmt.Sprintf("abitypes.StringToken(%s)", argName)
	default:
		return argName
	}
}

// toGoName converts an entry point name like "entry_one" into an exported
// Go identifier like "EntryOne".
func toGoName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	result := strings.Builder{}
	for _, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		result.WriteString(string(runes))
	}
	return result.String()
}
