// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package dynabi

import "crypto/sha256"

// EncodeFunctionSelector derives the 8-byte selector addressing a remote
// entry point from its UTF-8 call signature (for example
// "entry_one(u64)"): the first 4 bytes of the signature's SHA-256 digest,
// placed in the last 4 bytes of an otherwise-zero 8-byte array.
//
// The derivation is deterministic. Two distinct signatures may collide
// through digest truncation; selectors are identifiers, not security
// boundaries.
func EncodeFunctionSelector(signature []byte) [8]byte {
	digest := sha256.Sum256(signature)

	var selector [8]byte
	copy(selector[4:], digest[:4])

	return selector
}
