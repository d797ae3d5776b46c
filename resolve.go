// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package dynabi

import (
	"fmt"

	"github.com/fueltools/dynamic-abi/abitypes"
	"github.com/fueltools/dynamic-abi/abiutils"
)

// ResolveType returns a copy of t in which every symbolic length
// expression has been evaluated against the instance's specification
// values and replaced by a concrete length. The input tree is never
// mutated.
//
// Resolution fails with an error wrapping abiutils.ErrUnresolvedLength
// when an expression references unknown specification values, naming the
// failing expression.
func (d *DynAbi) ResolveType(t *abitypes.ParamType) (*abitypes.ParamType, error) {
	resolved := *t

	if t.LengthExpr != "" {
		ok, value, err := d.getSpecValue(t.LengthExpr)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("cannot resolve length expression %q: %w", t.LengthExpr, abiutils.ErrUnresolvedLength)
		}
		resolved.Length = uint32(value)
		resolved.LengthExpr = ""
	}

	if t.Elem != nil {
		elem, err := d.ResolveType(t.Elem)
		if err != nil {
			return nil, err
		}
		resolved.Elem = elem
	}

	if len(t.Fields) > 0 {
		fields := make([]*abitypes.ParamType, len(t.Fields))
		for i, field := range t.Fields {
			resolvedField, err := d.ResolveType(field)
			if err != nil {
				return nil, err
			}
			fields[i] = resolvedField
		}
		resolved.Fields = fields
	}

	if t.Variants != nil {
		types := t.Variants.Types()
		resolvedTypes := make([]*abitypes.ParamType, len(types))
		for i, variant := range types {
			resolvedVariant, err := d.ResolveType(variant)
			if err != nil {
				return nil, err
			}
			resolvedTypes[i] = resolvedVariant
		}
		variants, err := abitypes.NewEnumVariants(resolvedTypes)
		if err != nil {
			return nil, err
		}
		resolved.Variants = variants
	}

	return &resolved, nil
}
