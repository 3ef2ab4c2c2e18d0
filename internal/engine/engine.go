package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/Digital-Shane/treeview"
	tea "github.com/charmbracelet/bubbletea"

	"seriestidy/internal/core"
	"seriestidy/internal/log"
)

// RenameCompleteMsg is emitted once all queued operations finish running.
type RenameCompleteMsg struct{ successCount, errorCount int }

// SuccessCount returns the number of successful operations.
func (r RenameCompleteMsg) SuccessCount() int { return r.successCount }

// ErrorCount returns the number of failed operations.
func (r RenameCompleteMsg) ErrorCount() int { return r.errorCount }

// OperationProgressMsg reports incremental progress while the engine
// processes queued actions.
type OperationProgressMsg struct {
	Progress OperationProgress
}

// OperationProgress captures aggregate progress information for the current
// batch run. It is intentionally value-based so the UI can cache the snapshot.
type OperationProgress struct {
	OverallCompleted int
	OverallTotal     int
	SuccessCount     int
	ErrorCount       int
	Current          string
}

// OperationFunctions bundles the filesystem callbacks used by the engine.
// Tests can override any subset of these handlers.
type OperationFunctions struct {
	Rename       func(*treeview.Node[treeview.FileInfo], *core.MediaMeta) (bool, error)
	StartSession func(string, []string) error
	EndSession   func() error
}

func (f OperationFunctions) withDefaults() OperationFunctions {
	if f.Rename == nil {
		f.Rename = core.RenameNode
	}
	if f.StartSession == nil {
		f.StartSession = log.StartSession
	}
	if f.EndSession == nil {
		f.EndSession = log.EndSession
	}
	return f
}

// Config configures the operation engine.
type Config struct {
	Plan        *Plan
	Command     string
	CommandArgs []string
	Functions   OperationFunctions
	Stderr      io.Writer
}

// Engine executes a plan's renames one at a time so the TUI can remain
// responsive. Operations are queued in two phases: every file rename
// first, then the directory renames. A directory rename failing therefore
// never strands already-renamed files under a half-renamed path, and each
// failure is isolated to its own operation.
type Engine struct {
	cfg            Config
	fns            OperationFunctions
	ops            []*Item
	idx            int
	successes      int
	failures       int
	startedLogging bool
	finished       bool
	stderr         io.Writer
}

// New builds a queue-driven executor for the plan's operations.
func New(cfg Config) *Engine {
	cfg.Functions = cfg.Functions.withDefaults()
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}

	e := &Engine{
		cfg:    cfg,
		fns:    cfg.Functions,
		stderr: cfg.Stderr,
	}
	e.collectOperations()
	return e
}

// TotalOperations returns the total number of queued operations.
func (e *Engine) TotalOperations() int { return len(e.ops) }

// ProcessNext runs the next queued operation and returns a Bubble Tea message.
func (e *Engine) ProcessNext() tea.Msg {
	if e.finished {
		return RenameCompleteMsg{successCount: e.successes, errorCount: e.failures}
	}
	e.ensureLoggingStarted()

	if e.idx >= len(e.ops) {
		e.finishLogging()
		e.finished = true
		return RenameCompleteMsg{successCount: e.successes, errorCount: e.failures}
	}

	op := e.ops[e.idx]
	renamed, err := e.fns.Rename(op.Node, op.Meta)
	switch {
	case err != nil:
		e.failures++
	case renamed:
		e.successes++
	}
	e.idx++

	return OperationProgressMsg{Progress: OperationProgress{
		OverallCompleted: e.idx,
		OverallTotal:     len(e.ops),
		SuccessCount:     e.successes,
		ErrorCount:       e.failures,
		Current:          op.NewName,
	}}
}

// ProcessNextCmd returns a Bubble Tea command that advances the engine by
// one step.
func (e *Engine) ProcessNextCmd() tea.Cmd {
	return func() tea.Msg {
		return e.ProcessNext()
	}
}

// RunToCompletion executes every queued operation synchronously.
func (e *Engine) RunToCompletion() RenameCompleteMsg {
	for {
		msg := e.ProcessNext()
		if complete, ok := msg.(RenameCompleteMsg); ok {
			return complete
		}
	}
}

func (e *Engine) ensureLoggingStarted() {
	if e.startedLogging {
		return
	}
	e.startedLogging = true
	if err := e.fns.StartSession(e.cfg.Command, e.cfg.CommandArgs); err != nil {
		fmt.Fprintf(e.stderr, "Warning: Failed to start operation log: %v\n", err)
	}
}

func (e *Engine) finishLogging() {
	if !e.startedLogging || e.finished {
		return
	}
	if err := e.fns.EndSession(); err != nil {
		fmt.Fprintf(e.stderr, "Warning: Failed to save operation log: %v\n", err)
	}
}

func (e *Engine) collectOperations() {
	if e.cfg.Plan == nil {
		return
	}

	// Phase 1: file renames across every season
	for _, item := range e.cfg.Plan.Files() {
		if item.NoOp {
			continue
		}
		e.ops = append(e.ops, item)
	}

	// Phase 2: season directory renames
	for _, item := range e.cfg.Plan.Dirs() {
		if item.NoOp {
			continue
		}
		e.ops = append(e.ops, item)
	}
}
