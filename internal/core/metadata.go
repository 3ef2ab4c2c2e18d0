package core

import "github.com/Digital-Shane/treeview"

// MediaType enumerates the semantic classification of a node within the library tree.
type MediaType int

const (
	MediaSeason  MediaType = iota // Season directory inside the series root
	MediaEpisode                  // Individual episode file
)

// RenameStatus represents the lifecycle stage of a proposed rename operation.
// A node starts at RenameStatusNone; after execution it is marked success or
// error with an accompanying message when relevant.
type RenameStatus int

const (
	RenameStatusNone    RenameStatus = iota // Rename not yet attempted, or no change needed
	RenameStatusSuccess                     // Rename succeeded
	RenameStatusError                       // Rename failed; see RenameError for detail
)

// SkipReason explains why a node was left out of the rename plan. Skipped
// nodes still appear in the preview so the user sees what was not handled.
type SkipReason int

const (
	SkipNone         SkipReason = iota // Not skipped
	SkipNoMatch                        // No filename rule matched
	SkipNoSeason                       // Directory yielded no season number
	SkipNoResolution                   // Season resolution could not be determined
)

func (r SkipReason) String() string {
	switch r {
	case SkipNoMatch:
		return "no pattern matched"
	case SkipNoSeason:
		return "no season number"
	case SkipNoResolution:
		return "resolution unknown"
	default:
		return ""
	}
}

// MediaMeta holds per-node rename intent and results.
//
// NewName is the proposed final name (filename or directory name); empty
// means no proposal. Season is the resolved season number for both season
// directories and the episodes inside them. Skip marks nodes excluded from
// the plan with the reason shown in the preview.
//
// The zero value is meaningful: it encodes an untyped, unprocessed node
// with no rename proposal.
type MediaMeta struct {
	Type         MediaType
	Season       int
	NewName      string
	Skip         SkipReason
	RenameStatus RenameStatus
	RenameError  string
}

// GetMeta retrieves the existing *MediaMeta attached to n or nil when absent.
// It is safe to call with a nil node.
func GetMeta(n *treeview.Node[treeview.FileInfo]) *MediaMeta {
	if n == nil || n.Data().Extra == nil {
		return nil
	}
	if m, ok := n.Data().Extra["meta"].(*MediaMeta); ok {
		return m
	}
	return nil
}

// EnsureMeta returns the existing *MediaMeta for n, creating and attaching a
// new instance if needed. The returned pointer is always non-nil.
func EnsureMeta(n *treeview.Node[treeview.FileInfo]) *MediaMeta {
	if n.Data().Extra == nil {
		n.Data().Extra = map[string]any{}
	}
	if m, ok := n.Data().Extra["meta"].(*MediaMeta); ok {
		return m
	}
	m := &MediaMeta{}
	n.Data().Extra["meta"] = m
	return m
}

func (m *MediaMeta) Fail(err error) error {
	m.RenameStatus = RenameStatusError
	m.RenameError = err.Error()
	return err
}

func (m *MediaMeta) Success() {
	m.RenameStatus = RenameStatusSuccess
}
