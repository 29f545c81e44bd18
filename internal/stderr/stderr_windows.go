//go:build windows

// Package stderr provides a no-op implementation for Windows.
// Windows audio libraries don't produce the same stderr noise as ALSA.
package stderr

// Start is a no-op on Windows; sink is never called.
func Start(func(line string)) error {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}
