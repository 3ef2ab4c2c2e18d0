package core

import (
	"io/fs"
	"time"
)

// SimpleFileInfo is a minimal os.FileInfo used for tree nodes that are
// built without touching the filesystem, mainly in tests and previews.
type SimpleFileInfo struct {
	name string
	dir  bool
}

// NewSimpleFileInfo creates a SimpleFileInfo with the given name and
// directory flag.
func NewSimpleFileInfo(name string, isDir bool) *SimpleFileInfo {
	return &SimpleFileInfo{name: name, dir: isDir}
}

func (fi *SimpleFileInfo) Name() string { return fi.name }
func (fi *SimpleFileInfo) Size() int64  { return 0 }
func (fi *SimpleFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (fi *SimpleFileInfo) ModTime() time.Time { return time.Unix(0, 0) }
func (fi *SimpleFileInfo) IsDir() bool        { return fi.dir }
func (fi *SimpleFileInfo) Sys() any           { return nil }
