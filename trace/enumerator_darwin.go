//go:build darwin

package trace

import (
	"io/fs"
	"syscall"
)

// ctime returns the file's inode change time in nanoseconds since the
// epoch, per spec.md's requirement to sort trace files by creation time.
func ctime(info fs.FileInfo) int64 {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime().UnixNano()
	}
	return stat.Ctimespec.Sec*1e9 + stat.Ctimespec.Nsec
}
