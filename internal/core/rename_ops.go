package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Digital-Shane/treeview"

	"seriestidy/internal/log"
)

// RenameNode renames a node to its proposed NewName within its current
// directory; returns true only when an actual filesystem rename occurred.
// Directory renames are journaled separately so undo can restore them in
// the right order relative to the file renames inside them.
func RenameNode(node *treeview.Node[treeview.FileInfo], mm *MediaMeta) (bool, error) {
	oldPath := node.Data().Path
	isDir := node.Data().IsDir()

	logOp := log.LogRename
	if isDir {
		logOp = log.LogRenameDir
	}

	newName, err := sanitizeFilename(mm.NewName)
	if err != nil {
		logOp(oldPath, "", false, err)
		return false, mm.Fail(err)
	}
	if newName != mm.NewName {
		mm.NewName = newName
	}

	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if oldPath == newPath {
		return false, nil
	}
	if _, err := os.Stat(newPath); err == nil {
		err := fmt.Errorf("destination already exists")
		logOp(oldPath, newPath, false, err)
		return false, mm.Fail(err)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		logOp(oldPath, newPath, false, err)
		return false, mm.Fail(err)
	}
	logOp(oldPath, newPath, true, nil)
	mm.Success()
	node.Data().Path = newPath

	// Children of a renamed directory keep stale paths otherwise
	if isDir {
		updateChildPaths(node, newPath)
	}
	return true, nil
}

func updateChildPaths(node *treeview.Node[treeview.FileInfo], dirPath string) {
	for _, child := range node.Children() {
		childPath := filepath.Join(dirPath, filepath.Base(child.Data().Path))
		child.Data().Path = childPath
		if child.Data().IsDir() {
			updateChildPaths(child, childPath)
		}
	}
}
