// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package dynabi

import (
	"fmt"

	"github.com/fueltools/dynamic-abi/abitypes"
	"github.com/fueltools/dynamic-abi/abiutils"
)

// ValidateTokens checks that each token structurally matches its declared
// parameter type: kind, member arity, array and string lengths, and enum
// discriminant plus payload against the chosen variant.
//
// Encoding itself stays permissive and performs only the enum discriminant
// check; this is the optional strict pass for callers that want shape
// errors surfaced before any bytes are produced. Errors wrap
// abiutils.ErrInvalidType (or abiutils.ErrArgumentCount for arity
// mismatches at the top level).
func ValidateTokens(params []*abitypes.ParamType, tokens []*abitypes.Token) error {
	if len(params) != len(tokens) {
		return fmt.Errorf("expected %d tokens, got %d: %w", len(params), len(tokens), abiutils.ErrArgumentCount)
	}
	for i := range tokens {
		if err := validateToken(params[i], tokens[i], 0); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return nil
}

func validateToken(param *abitypes.ParamType, token *abitypes.Token, depth int) error {
	if depth > maxEncodeDepth {
		return fmt.Errorf("token nesting exceeds %d levels: %w", maxEncodeDepth, abiutils.ErrMaxDepthExceeded)
	}
	if token == nil {
		return fmt.Errorf("missing token for type %s: %w", param, abiutils.ErrInvalidType)
	}
	if token.Kind != param.Kind {
		return fmt.Errorf("have %v token for %s type: %w", token.Kind, param, abiutils.ErrInvalidType)
	}

	switch param.Kind {
	case abitypes.Array:
		if param.LengthExpr == "" && uint32(len(token.Items)) != param.Length {
			return fmt.Errorf("array %s holds %d elements: %w", param, len(token.Items), abiutils.ErrInvalidType)
		}
		for i, item := range token.Items {
			if err := validateToken(param.Elem, item, depth+1); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	case abitypes.String:
		if param.LengthExpr == "" && uint32(len(token.Str)) != param.Length {
			return fmt.Errorf("string %s holds %d bytes: %w", param, len(token.Str), abiutils.ErrInvalidType)
		}
	case abitypes.Struct, abitypes.Tuple:
		if len(token.Items) != len(param.Fields) {
			return fmt.Errorf("%s holds %d members: %w", param, len(token.Items), abiutils.ErrInvalidType)
		}
		for i, field := range param.Fields {
			if err := validateToken(field, token.Items[i], depth+1); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
		}
	case abitypes.Enum:
		return validateEnum(param, token, depth)
	}

	return nil
}

func validateEnum(param *abitypes.ParamType, token *abitypes.Token, depth int) error {
	selector := token.Enum
	if selector == nil || selector.Variants == nil {
		return fmt.Errorf("enum token carries no variant universe: %w", abiutils.ErrInvalidType)
	}
	if !variantsEqual(param.Variants, selector.Variants) {
		return fmt.Errorf("enum token variants %s don't match declared variants %s: %w",
			selector.Variants, param.Variants, abiutils.ErrInvalidType)
	}
	chosen, ok := selector.Variants.Get(selector.Discriminant)
	if !ok {
		return fmt.Errorf("discriminant '%d' doesn't point to any of the variants %s: %w",
			selector.Discriminant, selector.Variants, abiutils.ErrInvalidData)
	}
	return validateToken(chosen, selector.Value, depth+1)
}

func variantsEqual(a, b *abitypes.EnumVariants) bool {
	if a == nil || b == nil {
		return a == b
	}
	aTypes, bTypes := a.Types(), b.Types()
	if len(aTypes) != len(bTypes) {
		return false
	}
	for i := range aTypes {
		if !typesEqual(aTypes[i], bTypes[i]) {
			return false
		}
	}
	return true
}

func typesEqual(a, b *abitypes.ParamType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Length != b.Length || a.LengthExpr != b.LengthExpr {
		return false
	}
	if !typesEqual(a.Elem, b.Elem) {
		return false
	}
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		if !typesEqual(a.Fields[i], b.Fields[i]) {
			return false
		}
	}
	return variantsEqual(a.Variants, b.Variants)
}
