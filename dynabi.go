// Package dynabi encodes structured call arguments into the fixed
// word-aligned binary format consumed by the Fuel-style execution engine,
// and derives deterministic 8-byte function selectors from textual call
// signatures.
//
// The caller builds a value tree (abitypes.Token) matching a type tree
// (abitypes.ParamType) and hands it to an ABIEncoder, which walks the
// tokens recursively and emits big-endian, 8-byte-word-aligned output.
// Enums serialize to a uniform size regardless of the active variant:
// one discriminant word, zero padding up to the widest sibling variant,
// then the payload.
//
// Copyright (c) 2025 fueltools. See LICENSE file for details.
package dynabi

// DynAbi resolves type descriptors whose lengths are given as symbolic
// expressions against a set of runtime specification values. This allows
// one ParamType tree to be declared once and sized differently per
// deployment target (for example "MAX_INPUTS*2" as an array length).
//
// The instance caches parsed expressions, so reusing the same DynAbi
// across resolutions avoids repeated parsing. A DynAbi is not safe for
// concurrent use; concurrent goroutines must use separate instances.
//
// Example usage:
//
//	specs := map[string]any{
//	    "MAX_INPUTS": float64(8),
//	}
//	da := dynabi.NewDynAbi(specs)
//
//	declared := abitypes.ArrayTypeExpr(abitypes.U64Type(), "MAX_INPUTS*2")
//	resolved, err := da.ResolveType(declared) // u64[16]
type DynAbi struct {
	specValues     map[string]any              // Runtime specification values
	specValueCache map[string]*cachedSpecValue // Cache for parsed length expressions
}

// NewDynAbi creates a new DynAbi instance with the given specification
// values. The specs map supplies the variables referenced by LengthExpr
// expressions on ParamType descriptors. It can be nil when no symbolic
// lengths are used.
func NewDynAbi(specs map[string]any) *DynAbi {
	if specs == nil {
		specs = map[string]any{}
	}

	return &DynAbi{
		specValues:     specs,
		specValueCache: map[string]*cachedSpecValue{},
	}
}
