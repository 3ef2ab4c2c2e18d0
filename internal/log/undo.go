package log

import (
	"fmt"
	"os"
	"path/filepath"
)

type UndoResult struct {
	Operation OperationLog
	Success   bool
	Error     error
}

// UndoOperation reverses a single logged rename. Both file and
// directory renames revert the same way: rename the destination back
// to the source, refusing to overwrite anything that reappeared at the
// original path.
func UndoOperation(op OperationLog) UndoResult {
	result := UndoResult{
		Operation: op,
		Success:   false,
	}

	switch op.Type {
	case OpRename, OpRenameDir:
		if op.DestPath == "" {
			result.Error = fmt.Errorf("cannot undo rename: destination path missing")
			return result
		}

		// The renamed file must still be where we left it
		if _, err := os.Stat(op.DestPath); os.IsNotExist(err) {
			result.Error = fmt.Errorf("cannot undo rename: file %s not found", op.DestPath)
			return result
		}

		// Check if reverting would overwrite an existing file
		if _, err := os.Stat(op.SourcePath); err == nil {
			result.Error = fmt.Errorf("cannot undo rename: original path %s already exists", op.SourcePath)
			return result
		}

		if err := os.Rename(op.DestPath, op.SourcePath); err != nil {
			result.Error = fmt.Errorf("failed to rename %s back to %s: %w", op.DestPath, op.SourcePath, err)
			return result
		}

		result.Success = true

	default:
		result.Error = fmt.Errorf("unknown operation type: %s", op.Type)
	}

	return result
}

// UndoSession replays a session's successful operations in reverse
// order. Directory renames were logged after the file renames inside
// them, so the reverse walk restores directories first and file paths
// inside them resolve again.
func UndoSession(session *LogSession) (successful int, failed int, errors []error) {
	for i := len(session.Operations) - 1; i >= 0; i-- {
		op := session.Operations[i]

		// Only undo successful operations
		if !op.Success {
			continue
		}

		result := UndoOperation(op)
		if result.Success {
			successful++
		} else {
			failed++
			if result.Error != nil {
				errors = append(errors, result.Error)
			}
		}
	}

	return successful, failed, errors
}

func FindLatestSession() (*LogSession, string, error) {
	dir, err := logDir()
	if err != nil {
		return nil, "", err
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, "", fmt.Errorf("no log directory found")
	}

	sessions, err := ReadSessions(1)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, "", fmt.Errorf("no sessions found")
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(files) == 0 {
		return nil, "", fmt.Errorf("no log files found")
	}

	// Glob output is sorted ascending; the latest session is the last file
	latestFile := files[len(files)-1]

	return sessions[0], latestFile, nil
}
