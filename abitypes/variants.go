// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package abitypes

import (
	"fmt"
	"strings"
)

// ErrEmptyEnumVariants is returned when constructing an enum variant
// universe from an empty type list. Empty enums are not representable.
var ErrEmptyEnumVariants = fmt.Errorf("enum variants cannot be empty")

// EnumVariants is the ordered, non-empty variant universe of an enum type.
// The variant at index i is selected by discriminant i. The encoder relies
// on the full universe being present to size the uniform enum padding
// without an external type registry.
type EnumVariants struct {
	types []*ParamType
}

// NewEnumVariants builds an enum variant universe from the given ordered
// variant types. It returns ErrEmptyEnumVariants if types is empty.
func NewEnumVariants(types []*ParamType) (*EnumVariants, error) {
	if len(types) == 0 {
		return nil, ErrEmptyEnumVariants
	}
	return &EnumVariants{types: types}, nil
}

// MustNewEnumVariants is like NewEnumVariants but panics on invalid input.
// Intended for statically known variant universes.
func MustNewEnumVariants(types ...*ParamType) *EnumVariants {
	variants, err := NewEnumVariants(types)
	if err != nil {
		panic(err)
	}
	return variants
}

// Types returns the ordered variant types.
func (v *EnumVariants) Types() []*ParamType {
	return v.types
}

// Len returns the number of variants.
func (v *EnumVariants) Len() int {
	return len(v.types)
}

// Get returns the variant type selected by the given discriminant and
// whether the discriminant indexes a valid entry.
func (v *EnumVariants) Get(discriminant uint8) (*ParamType, bool) {
	if int(discriminant) >= len(v.types) {
		return nil, false
	}
	return v.types[discriminant], true
}

// String renders the variant universe as "(t0,t1,...)".
func (v *EnumVariants) String() string {
	parts := make([]string, len(v.types))
	for i, t := range v.types {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// EnumSelector pairs a chosen enum variant with the full variant universe
// of its enum type. Discriminant selects the active variant, Value carries
// the payload. The discriminant is checked against Variants at encode time,
// not at construction time.
type EnumSelector struct {
	Discriminant uint8
	Value        *Token
	Variants     *EnumVariants
}
