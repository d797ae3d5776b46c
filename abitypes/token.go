// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package abitypes

// Token is a concrete value paired with a TypeKind, structurally mirroring
// a ParamType. Only the fields relevant for the Kind are populated:
//   - U8/U16/U32/U64/Byte: Uint
//   - Bool: Bool
//   - B256: B256
//   - String: Str
//   - Array/Struct/Tuple: Items, one per element/field, in declared order
//   - Enum: Enum
//
// The encoder trusts that a Token's shape matches its intended ParamType;
// use ValidateTokens for a strict pre-encode check.
type Token struct {
	Kind  TypeKind
	Uint  uint64
	Bool  bool
	B256  [32]byte
	Str   string
	Items []*Token
	Enum  *EnumSelector
}

// UnitToken returns the unit value token.
func UnitToken() *Token { return &Token{Kind: Unit} }

// U8Token returns a token holding an unsigned 8-bit integer.
func U8Token(v uint8) *Token { return &Token{Kind: U8, Uint: uint64(v)} }

// U16Token returns a token holding an unsigned 16-bit integer.
func U16Token(v uint16) *Token { return &Token{Kind: U16, Uint: uint64(v)} }

// U32Token returns a token holding an unsigned 32-bit integer.
func U32Token(v uint32) *Token { return &Token{Kind: U32, Uint: uint64(v)} }

// U64Token returns a token holding an unsigned 64-bit integer.
func U64Token(v uint64) *Token { return &Token{Kind: U64, Uint: v} }

// BoolToken returns a token holding a boolean.
func BoolToken(v bool) *Token { return &Token{Kind: Bool, Bool: v} }

// ByteToken returns a token holding a single octet.
func ByteToken(v byte) *Token { return &Token{Kind: Byte, Uint: uint64(v)} }

// B256Token returns a token holding a 32-byte array.
func B256Token(v [32]byte) *Token { return &Token{Kind: B256, B256: v} }

// StringToken returns a token holding UTF-8 text.
func StringToken(v string) *Token { return &Token{Kind: String, Str: v} }

// ArrayToken returns a token holding the ordered array elements.
func ArrayToken(items ...*Token) *Token { return &Token{Kind: Array, Items: items} }

// StructToken returns a token holding the ordered struct field values.
func StructToken(fields ...*Token) *Token { return &Token{Kind: Struct, Items: fields} }

// TupleToken returns a token holding the ordered tuple elements.
func TupleToken(elems ...*Token) *Token { return &Token{Kind: Tuple, Items: elems} }

// EnumToken returns a token selecting the variant at discriminant within
// the given variant universe, carrying value as the payload.
func EnumToken(discriminant uint8, value *Token, variants *EnumVariants) *Token {
	return &Token{Kind: Enum, Enum: &EnumSelector{
		Discriminant: discriminant,
		Value:        value,
		Variants:     variants,
	}}
}
