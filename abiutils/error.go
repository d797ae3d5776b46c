// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package abiutils

import "fmt"

var (
	ErrInvalidData      = fmt.Errorf("invalid data")
	ErrInvalidType      = fmt.Errorf("token does not match the declared type")
	ErrMaxDepthExceeded = fmt.Errorf("maximum encode depth exceeded")
	ErrUnresolvedLength = fmt.Errorf("unresolved length expression")
	ErrArgumentCount    = fmt.Errorf("argument count mismatch")
)
