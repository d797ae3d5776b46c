// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

package dynabi

import (
	"fmt"

	"github.com/casbin/govaluate"
)

type cachedSpecValue struct {
	resolved bool
	value    uint64
}

func (d *DynAbi) getSpecValue(name string) (bool, uint64, error) {
	if cachedValue := d.specValueCache[name]; cachedValue != nil {
		return cachedValue.resolved, cachedValue.value, nil
	}

	cachedValue := &cachedSpecValue{}
	expression, err := govaluate.NewEvaluableExpression(name)
	if err != nil {
		return false, 0, fmt.Errorf("error parsing length expression: %v", err)
	}

	result, err := expression.Evaluate(d.specValues)
	if err == nil {
		value, ok := result.(float64)
		if ok {
			cachedValue.resolved = true
			cachedValue.value = uint64(value)
			if float64(cachedValue.value) < value {
				// lengths are whole elements, round fractional results up
				cachedValue.value++
			}
		}
	}

	d.specValueCache[name] = cachedValue
	return cachedValue.resolved, cachedValue.value, nil
}
