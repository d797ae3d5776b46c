// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

// Package codegen generates typed Go call bindings for ABI functions.
// Given programmatic function declarations (name plus ordered, typed
// parameters), it emits a Go source file containing, per function, the
// precomputed selector and an encode helper that builds the token tree
// from typed Go arguments. Inputs are ParamType values built by the
// caller; no textual schema is parsed.
package codegen

type CodeGenOption func(*CodeGenOptions)

type CodeGenOptions struct {
	NoSelectorVars bool   // skip the per-function selector variables
	NoCallHelpers  bool   // skip the per-function encode helpers
	HeaderComment  string // extra comment emitted below the generated-code marker
}

func WithNoSelectorVars() CodeGenOption {
	return func(opts *CodeGenOptions) {
		opts.NoSelectorVars = true
	}
}

func WithNoCallHelpers() CodeGenOption {
	return func(opts *CodeGenOptions) {
		opts.NoCallHelpers = true
	}
}

func WithHeaderComment(comment string) CodeGenOption {
	return func(opts *CodeGenOptions) {
		opts.HeaderComment = comment
	}
}
