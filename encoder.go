// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package dynabi

import (
	"fmt"

	"github.com/fueltools/dynamic-abi/abitypes"
	"github.com/fueltools/dynamic-abi/abiutils"
)

// maxEncodeDepth bounds the token tree nesting accepted by Encode and
// ValidateTokens, protecting against stack exhaustion on adversarial or
// malformed type trees.
const maxEncodeDepth = 128

// ABIEncoder encodes token trees into the word-aligned wire format. The
// FunctionSelector is computed once at construction from a call signature,
// or left all-zero when constructed without one.
//
// Encode is stateless: every call encodes into a fresh buffer and returns
// exactly the bytes for the tokens passed. Use EncodeTo to append multiple
// encode results into one caller-managed buffer.
//
// An ABIEncoder holds no mutable state and may be shared, but the usual
// pattern is one encoder per call signature.
type ABIEncoder struct {
	FunctionSelector [8]byte
}

// NewABIEncoder creates an encoder with an all-zero function selector.
func NewABIEncoder() *ABIEncoder {
	return &ABIEncoder{}
}

// NewABIEncoderWithFunctionSelector creates an encoder whose selector is
// derived from the given call signature (for example "entry_one(u64)").
func NewABIEncoderWithFunctionSelector(signature []byte) *ABIEncoder {
	return &ABIEncoder{
		FunctionSelector: EncodeFunctionSelector(signature),
	}
}

// Encode walks the given tokens in order and returns their wire encoding.
//
// All output is big-endian. Integers narrower than 64 bits, bytes and
// booleans are right-justified into one 8-byte word; u64 and b256 values
// are emitted raw; arrays, structs and tuples are the concatenation of
// their members with no framing; strings are UTF-8 bytes zero-padded to
// the next word boundary; unit is one all-zero word. Enums emit one
// discriminant word, zero padding up to the widest sibling variant, then
// the payload, so every instance of an enum type occupies identical wire
// space.
//
// Encode fails with an error wrapping abiutils.ErrInvalidData when an enum
// discriminant does not index its variant list. No partial result is
// returned on failure.
func (e *ABIEncoder) Encode(tokens []*abitypes.Token) ([]byte, error) {
	return e.EncodeTo(tokens, nil)
}

// EncodeTo is like Encode but appends the encoding to buf, enabling
// explicit batching of multiple encode calls into one buffer.
func (e *ABIEncoder) EncodeTo(tokens []*abitypes.Token, buf []byte) ([]byte, error) {
	return encodeTokens(tokens, buf, 0)
}

// encodeTokens is the core recursive walk. Each composite token recurses
// one level deeper; depth is bounded by maxEncodeDepth.
func encodeTokens(tokens []*abitypes.Token, buf []byte, depth int) ([]byte, error) {
	if depth > maxEncodeDepth {
		return nil, fmt.Errorf("token nesting exceeds %d levels: %w", maxEncodeDepth, abiutils.ErrMaxDepthExceeded)
	}

	var err error
	for _, token := range tokens {
		switch token.Kind {
		case abitypes.U8:
			buf = abiutils.PadUint8(buf, uint8(token.Uint))
		case abitypes.U16:
			buf = abiutils.PadUint16(buf, uint16(token.Uint))
		case abitypes.U32:
			buf = abiutils.PadUint32(buf, uint32(token.Uint))
		case abitypes.U64:
			buf = abiutils.AppendUint64(buf, token.Uint)
		case abitypes.Byte:
			buf = abiutils.PadUint8(buf, uint8(token.Uint))
		case abitypes.Bool:
			buf = abiutils.PadBool(buf, token.Bool)
		case abitypes.B256:
			buf = append(buf, token.B256[:]...)
		case abitypes.String:
			buf = abiutils.PadString(buf, token.Str)
		case abitypes.Array, abitypes.Struct, abitypes.Tuple:
			buf, err = encodeTokens(token.Items, buf, depth+1)
			if err != nil {
				return nil, err
			}
		case abitypes.Unit:
			buf = abiutils.AppendZeroPadding(buf, abiutils.WordSize)
		case abitypes.Enum:
			buf, err = encodeEnum(token.Enum, buf, depth+1)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown token kind: %v", token.Kind)
		}
	}

	return buf, nil
}

// encodeEnum emits the discriminant word, the uniform-size padding up to
// the widest sibling variant, and the recursively encoded payload.
func encodeEnum(selector *abitypes.EnumSelector, buf []byte, depth int) ([]byte, error) {
	if selector == nil || selector.Variants == nil {
		return nil, fmt.Errorf("enum token carries no variant universe: %w", abiutils.ErrInvalidData)
	}

	variants := selector.Variants
	chosen, ok := variants.Get(selector.Discriminant)
	if !ok {
		return nil, fmt.Errorf("discriminant '%d' doesn't point to any of the variants %s: %w",
			selector.Discriminant, variants, abiutils.ErrInvalidData)
	}

	for _, variant := range variants.Types() {
		if variant.HasUnresolvedLength() {
			return nil, fmt.Errorf("enum variant %s must be resolved before encoding: %w",
				variant, abiutils.ErrUnresolvedLength)
		}
	}

	buf = abiutils.PadUint8(buf, selector.Discriminant)

	// every instance of the enum type serializes to 1 + widest variant words
	padding := (MaxByEncodingWidth(variants) - EncodingWidth(chosen)) * abiutils.WordSize
	buf = abiutils.AppendZeroPadding(buf, int(padding))

	return encodeTokens([]*abitypes.Token{selector.Value}, buf, depth)
}
