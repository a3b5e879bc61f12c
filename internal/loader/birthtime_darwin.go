//go:build darwin

package loader

import (
	"os"
	"syscall"
	"time"
)

// birthtime extracts the file creation time where darwin exposes it.
func birthtime(fi os.FileInfo) *time.Time {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	t := time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	return &t
}
