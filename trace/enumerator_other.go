//go:build !windows && !linux && !darwin

package trace

import "io/fs"

// ctime falls back to modification time on platforms where this
// decoder has no verified inode-change-time mapping.
func ctime(info fs.FileInfo) int64 {
	return info.ModTime().UnixNano()
}
