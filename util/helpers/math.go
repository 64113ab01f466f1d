package helpers

import "golang.org/x/exp/constraints"

// RoundUp rounds n up to the next multiple of mul. mul must be positive.
func RoundUp[T constraints.Integer](n, mul T) T {
	rem := n % mul
	if rem == 0 {
		return n
	}
	return n + mul - rem
}
