//go:build !unix

package fifo

import (
	"fmt"

	"github.com/ardnew/softps2/pkg"
)

func createFIFO(path string) error {
	return fmt.Errorf("mkfifo %s: %w", path, pkg.ErrUnsupportedSource)
}
