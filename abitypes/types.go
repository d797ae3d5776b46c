// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

// Package abitypes defines the static type descriptors (ParamType) and the
// value trees (Token) consumed by the ABI encoder. A ParamType describes the
// wire layout of a value without carrying data; a Token carries the actual
// data and structurally mirrors its ParamType. Both form a closed variant
// set identified by a TypeKind tag.
package abitypes

import (
	"fmt"
	"strings"
)

// TypeKind identifies the shape of a ParamType or Token.
type TypeKind uint8

const (
	Unit TypeKind = iota
	U8
	U16
	U32
	U64
	Bool
	Byte
	B256
	Array
	String
	Struct
	Tuple
	Enum
)

// String returns the canonical name of the kind.
func (k TypeKind) String() string {
	switch k {
	case Unit:
		return "()"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case B256:
		return "b256"
	case Array:
		return "array"
	case String:
		return "str"
	case Struct:
		return "struct"
	case Tuple:
		return "tuple"
	case Enum:
		return "enum"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ParamType describes the static wire layout of a value. Only the fields
// relevant for the Kind are populated:
//   - Array: Elem and Length (element count)
//   - String: Length (byte length of the UTF-8 content)
//   - Struct/Tuple: Fields in declared order
//   - Enum: Variants
//
// Array and String descriptors may alternatively carry a LengthExpr, a
// symbolic expression referencing runtime specification values (for example
// "MAX_INPUTS*2"). Such descriptors must be resolved to concrete lengths
// via DynAbi.ResolveType before they are used for enum width calculation.
//
// ParamType trees are built once by the caller and never mutated by the
// encoder. Recursive nesting is finite by construction.
type ParamType struct {
	Kind       TypeKind
	Elem       *ParamType    // element type for arrays
	Length     uint32        // array element count / string byte length
	LengthExpr string        // symbolic length, resolved against spec values
	Fields     []*ParamType  // struct fields / tuple elements, in order
	Variants   *EnumVariants // enum variant universe
}

// UnitType returns the descriptor for the zero-sized unit type.
func UnitType() *ParamType { return &ParamType{Kind: Unit} }

// U8Type returns the descriptor for an unsigned 8-bit integer.
func U8Type() *ParamType { return &ParamType{Kind: U8} }

// U16Type returns the descriptor for an unsigned 16-bit integer.
func U16Type() *ParamType { return &ParamType{Kind: U16} }

// U32Type returns the descriptor for an unsigned 32-bit integer.
func U32Type() *ParamType { return &ParamType{Kind: U32} }

// U64Type returns the descriptor for an unsigned 64-bit integer.
func U64Type() *ParamType { return &ParamType{Kind: U64} }

// BoolType returns the descriptor for a boolean.
func BoolType() *ParamType { return &ParamType{Kind: Bool} }

// ByteType returns the descriptor for a single octet.
func ByteType() *ParamType { return &ParamType{Kind: Byte} }

// B256Type returns the descriptor for a 256-bit byte array.
func B256Type() *ParamType { return &ParamType{Kind: B256} }

// ArrayType returns the descriptor for a fixed-length array of elem.
func ArrayType(elem *ParamType, length uint32) *ParamType {
	return &ParamType{Kind: Array, Elem: elem, Length: length}
}

// ArrayTypeExpr returns an array descriptor whose length is a symbolic
// expression resolved against runtime spec values.
func ArrayTypeExpr(elem *ParamType, lengthExpr string) *ParamType {
	return &ParamType{Kind: Array, Elem: elem, LengthExpr: lengthExpr}
}

// StringType returns the descriptor for a fixed-length UTF-8 string of
// length bytes.
func StringType(length uint32) *ParamType {
	return &ParamType{Kind: String, Length: length}
}

// StringTypeExpr returns a string descriptor whose byte length is a symbolic
// expression resolved against runtime spec values.
func StringTypeExpr(lengthExpr string) *ParamType {
	return &ParamType{Kind: String, LengthExpr: lengthExpr}
}

// StructType returns the descriptor for a struct with the given fields in
// declared order.
func StructType(fields ...*ParamType) *ParamType {
	return &ParamType{Kind: Struct, Fields: fields}
}

// TupleType returns the descriptor for a tuple with the given elements in
// declared order.
func TupleType(elems ...*ParamType) *ParamType {
	return &ParamType{Kind: Tuple, Fields: elems}
}

// EnumType returns the descriptor for an enum over the given variant
// universe.
func EnumType(variants *EnumVariants) *ParamType {
	return &ParamType{Kind: Enum, Variants: variants}
}

// HasUnresolvedLength reports whether t or any nested descriptor still
// carries a symbolic length expression.
func (t *ParamType) HasUnresolvedLength() bool {
	if t == nil {
		return false
	}
	if t.LengthExpr != "" {
		return true
	}
	if t.Elem.HasUnresolvedLength() {
		return true
	}
	for _, field := range t.Fields {
		if field.HasUnresolvedLength() {
			return true
		}
	}
	if t.Variants != nil {
		for _, variant := range t.Variants.Types() {
			if variant.HasUnresolvedLength() {
				return true
			}
		}
	}
	return false
}

// String renders the descriptor in the canonical textual form used for
// diagnostics and signature fragments: "u64", "u8[3]", "str[23]",
// "struct(u8,bool)", "(u32,u32)", "enum(b256,u64)".
func (t *ParamType) String() string {
	switch t.Kind {
	case Array:
		return fmt.Sprintf("%s[%s]", t.Elem, t.lengthString())
	case String:
		return fmt.Sprintf("str[%s]", t.lengthString())
	case Struct:
		return "struct" + joinTypes(t.Fields)
	case Tuple:
		return joinTypes(t.Fields)
	case Enum:
		if t.Variants == nil {
			return "enum()"
		}
		return "enum" + joinTypes(t.Variants.Types())
	default:
		return t.Kind.String()
	}
}

func (t *ParamType) lengthString() string {
	if t.LengthExpr != "" {
		return t.LengthExpr
	}
	return fmt.Sprintf("%d", t.Length)
}

func joinTypes(types []*ParamType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}
