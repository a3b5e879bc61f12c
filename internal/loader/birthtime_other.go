//go:build !darwin

package loader

import (
	"os"
	"time"
)

// birthtime returns nil: the portable stat API carries no creation time.
func birthtime(os.FileInfo) *time.Time {
	return nil
}
