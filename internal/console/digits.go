package console

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")

// Digits splits a positive integer into its base-10 digits, most significant first.
func Digits(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d is not a positive number", ErrInvalidInput, n)
	}

	var ds []int
	for ; n > 0; n /= 10 {
		ds = append(ds, n%10)
	}
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}
	return ds, nil
}
