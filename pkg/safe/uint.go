// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math/big"
)

// Uint64 converts an integer to uint64, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// BigUint64 converts an on-chain uint256 value to uint64.
func BigUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, errors.New("nil value")
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v)
	}
	return v.Uint64(), nil
}

// BigInt64 converts an on-chain uint256 value to int64, rejecting negatives.
func BigInt64(v *big.Int) (int64, error) {
	if v == nil {
		return 0, errors.New("nil value")
	}
	if v.Sign() < 0 || !v.IsInt64() {
		return 0, fmt.Errorf("value %s out of int64 range", v)
	}
	return v.Int64(), nil
}
