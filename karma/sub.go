// Package karma implements the karma score arithmetic.
package karma

// Integer is any signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Sub returns a - b.
//
// Overflow wraps around.
func Sub(a, b int32) int32 {
	return a - b
}

// SubOf returns a - b for any integer type, wrapping on overflow.
func SubOf[T Integer](a, b T) T {
	return a - b
}
