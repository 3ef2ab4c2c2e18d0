package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"seriestidy/internal/log"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent rename session",
	Long: `Replay the most recent rename session in reverse, renaming every file
and directory back to its original name. Operations that cannot be
reverted (the file moved, or the original name is taken again) are
reported and skipped.`,
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	session, path, err := log.FindLatestSession()
	if err != nil {
		return fmt.Errorf("no session to undo: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Undoing session %s (%d operations)\n",
		session.Metadata.SessionID, session.Metadata.TotalOps)

	successful, failed, errs := log.UndoSession(session)
	for _, err := range errs {
		fmt.Fprintf(out, "  %v\n", err)
	}
	fmt.Fprintf(out, "%d reverted, %d failed (journal: %s)\n", successful, failed, path)
	return nil
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
