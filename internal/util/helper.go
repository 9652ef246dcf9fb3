package util

import "github.com/arloliu/go-thermocouple/internal/poly"

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// ConvertFloats returns a new slice holding every value of src converted to the storage type To.
//
// Converting float64 values to float32 rounds each value to the nearest representable float32,
// which is how single-precision coefficient sets are materialised.
func ConvertFloats[To poly.Float, From poly.Float](src []From) []To {
	dst := make([]To, len(src))
	for i, v := range src {
		dst[i] = To(v)
	}

	return dst
}
