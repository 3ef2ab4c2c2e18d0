/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seriestidy",
	Short: "A tool for normalizing TV series file names",
	Long: `seriestidy standardizes messy episode file names and season directories
into a canonical dotted form like Show.Name.S02E01.1080p.mkv.

Season directories are scanned for episode files, resolutions are read from
the filename or probed from the container, and every rename is previewed
before anything is touched. Completed runs are journaled and can be undone.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	dryRun     bool
	instant    bool
	seriesName string
	seriesFile string
)

func init() {
	// Global flags for all commands
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the rename plan without touching any files")
	rootCmd.PersistentFlags().BoolVarP(&instant, "instant", "i", false, "Apply renames immediately without interactive preview")
	rootCmd.PersistentFlags().StringVarP(&seriesName, "series", "s", "", "Override the show name derived from the directory")
	rootCmd.PersistentFlags().StringVar(&seriesFile, "series-config", "", "Path to a per-series pattern file")
}
