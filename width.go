// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package dynabi

import (
	"github.com/fueltools/dynamic-abi/abitypes"
	"github.com/fueltools/dynamic-abi/abiutils"
)

// EncodingWidth returns the footprint of t in 8-byte words:
//
//	()                   0
//	u8/u16/u32/u64       1
//	bool/byte            1
//	b256                 4
//	elem[n]              width(elem) * n
//	str[len]             ceil(len / 8)
//	struct/tuple         sum of member widths
//	enum                 1 + width of the widest variant
//
// The enum case adds one word for the discriminant and reserves space for
// the largest variant, so every instance of an enum type occupies identical
// wire space regardless of the active variant.
//
// EncodingWidth is pure and total over resolved descriptors. Descriptors
// still carrying symbolic length expressions must go through
// DynAbi.ResolveType first.
func EncodingWidth(t *abitypes.ParamType) uint32 {
	switch t.Kind {
	case abitypes.Unit:
		return 0
	case abitypes.U8, abitypes.U16, abitypes.U32, abitypes.U64, abitypes.Bool, abitypes.Byte:
		return 1
	case abitypes.B256:
		return 4
	case abitypes.Array:
		return EncodingWidth(t.Elem) * t.Length
	case abitypes.String:
		return (t.Length + abiutils.WordSize - 1) / abiutils.WordSize
	case abitypes.Struct, abitypes.Tuple:
		var width uint32
		for _, field := range t.Fields {
			width += EncodingWidth(field)
		}
		return width
	case abitypes.Enum:
		return abiutils.DiscriminantWordWidth + MaxByEncodingWidth(t.Variants)
	default:
		return 0
	}
}

// MaxByEncodingWidth returns the width in words of the widest variant in
// the universe. Variant universes are non-empty by construction.
func MaxByEncodingWidth(variants *abitypes.EnumVariants) uint32 {
	var widest uint32
	for _, variant := range variants.Types() {
		if width := EncodingWidth(variant); width > widest {
			widest = width
		}
	}
	return widest
}
