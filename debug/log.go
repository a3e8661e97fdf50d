package debug

import (
	"fmt"
	"os"
)

// Logf writes debug output to stderr. Callers with expression arguments
// render them first.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
