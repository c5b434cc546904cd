//go:build !unix

package stdio

import (
	"fmt"
	"os"
)

// Redirect swaps os.Stdout and os.Stderr for a file at path.
// Output written by the runtime directly to the original descriptors is not captured.
func Redirect(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stdio log: %w", err)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
