package tui

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Digital-Shane/treeview"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"seriestidy/internal/config"
	"seriestidy/internal/core"
	"seriestidy/internal/engine"
	"seriestidy/internal/resolution"
	"seriestidy/internal/tui/theme"
)

func previewFixture(t *testing.T) (*engine.Plan, *engine.Engine) {
	t.Helper()

	base := filepath.Join(t.TempDir(), "Money Heist")
	seasonDir := filepath.Join(base, "Season 2")
	if err := os.MkdirAll(seasonDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	name := "Money.Heist.S02E01.1080p.WEB-DL.mkv"
	if err := os.WriteFile(filepath.Join(seasonDir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	series := config.SeriesForDir(base, "")
	plan, err := engine.BuildPlan(context.Background(), series, resolution.New(nil, nil))
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	eng := engine.New(engine.Config{
		Plan: plan,
		Functions: engine.OperationFunctions{
			Rename:       func(*treeview.Node[treeview.FileInfo], *core.MediaMeta) (bool, error) { return true, nil },
			StartSession: func(string, []string) error { return nil },
			EndSession:   func() error { return nil },
		},
		Stderr: io.Discard,
	})
	return plan, eng
}

func TestPreviewShowsPlanAndQuits(t *testing.T) {
	plan, eng := previewFixture(t)
	m := NewPreviewModel(plan, eng, theme.Default())

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 28))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Money.Heist.S02E01.1080p.mkv"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

func TestPreviewAppliesOnConfirm(t *testing.T) {
	plan, eng := previewFixture(t)
	m := NewPreviewModel(plan, eng, theme.Default())

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 28))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("enter apply"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("done: 2 renamed, 0 failed"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
