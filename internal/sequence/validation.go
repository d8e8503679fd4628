package sequence

import "fmt"

// InvalidSizeError is returned when a chunk size is not positive.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("chunk size must be positive, got %d", e.Size)
}

// IsLetter reports whether c survives Clean.
func IsLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
