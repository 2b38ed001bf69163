// Copyright (C) 2022 Creditor Corp. Group.
// See LICENSE for copying information.

package numbers

import (
	"math"
)

// MaxInt64Value defines maximum value of int64 type as uint64.
const MaxInt64Value uint64 = math.MaxInt64

// SubUint64 returns a - b, false if the result underflows.
func SubUint64(a, b uint64) (uint64, bool) {
	if b > a {
		return 0, false
	}

	return a - b, true
}

// AddUint64 returns a + b, false if the result overflows.
func AddUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}

	return sum, true
}

// ToInt64 returns value as int64, false if it does not fit.
func ToInt64(value uint64) (int64, bool) {
	if value > MaxInt64Value {
		return 0, false
	}

	return int64(value), true
}

