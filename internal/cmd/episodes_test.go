package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func testCommand(out *bytes.Buffer) *cobra.Command {
	c := &cobra.Command{}
	c.SetOut(out)
	c.SetErr(out)
	return c
}

func TestEpisodesCommandDryRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	origDryRun := dryRun
	defer func() { dryRun = origDryRun }()
	dryRun = true

	dir := t.TempDir()
	messy := "Money.Heist.S02E01.1080p.WEB-DL.x264-EDHD_Kyle.mkv"
	for _, name := range []string{messy, "The Office 09.01(169) - New Guys.mkv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	var out bytes.Buffer
	if err := runEpisodes(testCommand(&out), []string{dir}); err != nil {
		t.Fatalf("runEpisodes() error = %v", err)
	}

	if !strings.Contains(out.String(), messy+" -> Money.Heist.S02E01.1080p.mkv") {
		t.Errorf("output missing rename proposal:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "1 renamed, 0 unchanged, 1 skipped, 0 failed") {
		t.Errorf("output missing summary:\n%s", out.String())
	}

	// Dry run leaves the disk alone.
	if _, err := os.Stat(filepath.Join(dir, messy)); err != nil {
		t.Errorf("original file missing after dry run: %v", err)
	}
}

func TestEpisodesCommandApplies(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	origDryRun := dryRun
	defer func() { dryRun = origDryRun }()
	dryRun = false

	dir := t.TempDir()
	for _, name := range []string{
		"The.Good.Doctor.S06E12.WEBDL.1080p.RGzsRutracker.mkv",
		"Shaman.King.S01E24.480p.avi", // already canonical
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	var out bytes.Buffer
	if err := runEpisodes(testCommand(&out), []string{dir}); err != nil {
		t.Fatalf("runEpisodes() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "The.Good.Doctor.S06E12.1080p.mkv")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Shaman.King.S01E24.480p.avi")); err != nil {
		t.Errorf("canonical file should be untouched: %v", err)
	}
	if !strings.Contains(out.String(), "1 renamed, 1 unchanged, 0 skipped, 0 failed") {
		t.Errorf("output missing summary:\n%s", out.String())
	}
}

func TestEpisodesCommandMissingDir(t *testing.T) {
	var out bytes.Buffer
	err := runEpisodes(testCommand(&out), []string{filepath.Join(t.TempDir(), "absent")})
	if err == nil {
		t.Error("runEpisodes() error = nil, want error for missing directory")
	}
}
