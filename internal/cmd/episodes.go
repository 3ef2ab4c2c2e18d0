package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Digital-Shane/treeview"
	"github.com/spf13/cobra"

	"seriestidy/internal/config"
	"seriestidy/internal/core"
	"seriestidy/internal/log"
	"seriestidy/internal/media"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes <dir>",
	Short: "Normalize a flat directory of episode files",
	Long: `Rename loose episode files in a single directory, with no season folder
context. Each file must carry its own season, episode, and resolution in
the name; files that do not are reported and left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runEpisodes,
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	dir := args[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)

	out := cmd.OutOrStdout()

	if !dryRun {
		if err := log.StartSession("episodes", args); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to start operation log: %v\n", err)
		}
		defer func() {
			if err := log.EndSession(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to save operation log: %v\n", err)
			}
		}()
	}

	renamed, unchanged, skipped, failed := 0, 0, 0, 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !media.IsVideo(name) {
			continue
		}

		newName, ok := media.Normalize(name)
		if !ok {
			fmt.Fprintf(out, "skip %s (no recognizable episode structure)\n", name)
			skipped++
			continue
		}
		if newName == name {
			unchanged++
			continue
		}

		if dryRun {
			fmt.Fprintf(out, "%s -> %s\n", name, newName)
			renamed++
			continue
		}

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(out, "skip %s: %v\n", name, err)
			failed++
			continue
		}
		path := filepath.Join(dir, name)
		node := treeview.NewNode(path, name, treeview.FileInfo{
			FileInfo: info,
			Path:     path,
			Extra:    map[string]any{},
		})
		mm := core.EnsureMeta(node)
		mm.Type = core.MediaEpisode
		mm.NewName = newName

		if _, err := core.RenameNode(node, mm); err != nil {
			fmt.Fprintf(out, "failed %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s -> %s\n", name, newName)
		renamed++
	}

	fmt.Fprintf(out, "%d renamed, %d unchanged, %d skipped, %d failed\n", renamed, unchanged, skipped, failed)
	return nil
}

func init() {
	rootCmd.AddCommand(episodesCmd)
}
