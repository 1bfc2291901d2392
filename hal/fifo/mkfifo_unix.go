//go:build unix

package fifo

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func createFIFO(path string) error {
	// Remove existing file if any
	os.Remove(path)

	if err := unix.Mkfifo(path, 0o666); err != nil {
		return fmt.Errorf("mkfifo %s: %w", path, err)
	}
	return nil
}
