package stdlib

// Memset2 is a conversion of C's memset function for Go slices.
func Memset2[T any](data []T, value T) {
	for i := range data {
		data[i] = value
	}
}
