package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"seriestidy/internal/config"
	"seriestidy/internal/engine"
	"seriestidy/internal/log"
	"seriestidy/internal/resolution"
	"seriestidy/internal/tui"
	"seriestidy/internal/tui/theme"
)

var renameCmd = &cobra.Command{
	Use:   "rename <series-dir>",
	Short: "Normalize every season directory under a series directory",
	Long: `Scan a series directory for season folders, compute the canonical name
for every episode file and the folders themselves, and apply the renames.

All episode files are renamed before any season directory, so a directory
failure never strands files under a half-renamed path. Items no rule can
handle are reported and skipped; they never abort the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	baseDir := args[0]
	if _, err := os.Stat(baseDir); err != nil {
		return fmt.Errorf("series directory %s: %w", baseDir, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)

	var series *config.SeriesConfig
	if seriesFile != "" {
		series, err = config.LoadSeries(seriesFile, baseDir)
		if err != nil {
			return err
		}
		if seriesName != "" {
			override := config.SeriesForDir(baseDir, seriesName)
			series.ShowName = override.ShowName
			series.ShowNameSpaced = override.ShowNameSpaced
		}
	} else {
		series = config.SeriesForDir(baseDir, seriesName)
	}

	plan, err := engine.BuildPlan(cmd.Context(), series, buildResolver(cfg, series))
	if err != nil {
		return err
	}

	th := theme.Default()
	if dryRun {
		fmt.Fprint(cmd.OutOrStdout(), engine.Report(plan, th, true))
		return nil
	}

	eng := engine.New(engine.Config{
		Plan:        plan,
		Command:     "rename",
		CommandArgs: args,
	})

	if instant {
		fmt.Fprint(cmd.OutOrStdout(), engine.Report(plan, th, false))
		result := eng.RunToCompletion()
		fmt.Fprintf(cmd.OutOrStdout(), "%d renamed, %d failed\n", result.SuccessCount(), result.ErrorCount())
		return nil
	}

	p := tea.NewProgram(tui.NewPreviewModel(plan, eng, th), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// buildResolver wires the configured probers behind the series' optional
// filename extractor.
func buildResolver(cfg *config.Config, series *config.SeriesConfig) *resolution.Resolver {
	timeout := time.Duration(cfg.ProbeTimeoutSeconds) * time.Second
	var probers []resolution.Prober
	for _, name := range cfg.Probers {
		switch name {
		case "mkvinfo":
			p := resolution.NewMKVInfoProber()
			p.Timeout = timeout
			probers = append(probers, p)
		case "ffprobe":
			p := resolution.NewFFProbeProber()
			p.Timeout = timeout
			probers = append(probers, p)
		}
	}
	return resolution.New(series.ResolutionExtractor, probers)
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
