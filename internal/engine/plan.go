package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Digital-Shane/treeview"

	"seriestidy/internal/config"
	"seriestidy/internal/core"
	"seriestidy/internal/media"
	"seriestidy/internal/resolution"
)

// Item is one planned rename. NoOp items already carry their canonical
// name and are shown in the preview but never executed.
type Item struct {
	Node    *treeview.Node[treeview.FileInfo]
	Meta    *core.MediaMeta
	OldName string
	NewName string
	NoOp    bool
}

// Skipped records a node left out of the plan and why.
type Skipped struct {
	Path   string
	Name   string
	Reason core.SkipReason
}

// Season groups the planned work for one season directory. Dir is nil
// when the directory itself needs no rename proposal (season skipped).
type Season struct {
	Number int
	Path   string
	Dir    *Item
	Files  []*Item
	Skips  []Skipped
}

// Plan is the complete computed rename proposal for a series directory.
// Building it never mutates the filesystem; the same plan backs both the
// dry-run report and the executing engine.
type Plan struct {
	Tree    *treeview.Tree[treeview.FileInfo]
	Seasons []*Season
	Skips   []Skipped // base-level entries that joined no season
}

// Files returns every planned file rename across all seasons, in plan order.
func (p *Plan) Files() []*Item {
	var items []*Item
	for _, s := range p.Seasons {
		items = append(items, s.Files...)
	}
	return items
}

// Dirs returns every planned directory rename, in plan order.
func (p *Plan) Dirs() []*Item {
	var items []*Item
	for _, s := range p.Seasons {
		if s.Dir != nil {
			items = append(items, s.Dir)
		}
	}
	return items
}

// AllSkips returns base-level and per-season skips combined.
func (p *Plan) AllSkips() []Skipped {
	skips := append([]Skipped{}, p.Skips...)
	for _, s := range p.Seasons {
		skips = append(skips, s.Skips...)
	}
	return skips
}

// BuildPlan indexes series.BaseDir and computes the full rename proposal.
// Directory entries are visited in lexical order so repeated runs produce
// identical plans. Unreadable or unmatched items become skips; only a
// missing or unreadable base directory is an error.
func BuildPlan(ctx context.Context, series *config.SeriesConfig, resolver *resolution.Resolver) (*Plan, error) {
	entries, err := os.ReadDir(series.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("read series directory: %w", err)
	}

	rootInfo, err := os.Stat(series.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("stat series directory: %w", err)
	}
	root := treeview.NewNode(series.BaseDir, filepath.Base(series.BaseDir), treeview.FileInfo{
		FileInfo: rootInfo,
		Path:     series.BaseDir,
		Extra:    map[string]any{},
	})

	plan := &Plan{}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(series.BaseDir, name)

		if !entry.IsDir() {
			// Loose files at the base level belong to the flat episodes
			// command, not the season batch.
			if media.IsVideo(name) {
				plan.Skips = append(plan.Skips, Skipped{Path: path, Name: name, Reason: core.SkipNoSeason})
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			plan.Skips = append(plan.Skips, Skipped{Path: path, Name: name, Reason: core.SkipNoMatch})
			continue
		}
		node := treeview.NewNode(path, name, treeview.FileInfo{
			FileInfo: info,
			Path:     path,
			Extra:    map[string]any{},
		})
		root.AddChild(node)

		seasonNum, ok := media.SeasonFromDirectory(name, series.SeasonDirPatterns)
		if !ok {
			plan.Skips = append(plan.Skips, Skipped{Path: path, Name: name, Reason: core.SkipNoSeason})
			continue
		}

		season, err := planSeason(ctx, series, resolver, node, seasonNum)
		if err != nil {
			return nil, err
		}
		plan.Seasons = append(plan.Seasons, season)
	}

	plan.Tree = treeview.NewTree([]*treeview.Node[treeview.FileInfo]{root})
	return plan, nil
}

// planSeason computes the proposal for one season directory: every
// qualifying file first, then the directory itself. When the season's
// resolution cannot be established the entire season degrades to skips,
// directory included.
func planSeason(ctx context.Context, series *config.SeriesConfig, resolver *resolution.Resolver, dirNode *treeview.Node[treeview.FileInfo], seasonNum int) (*Season, error) {
	dirPath := dirNode.Data().Path
	season := &Season{Number: seasonNum, Path: dirPath}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		season.Skips = append(season.Skips, Skipped{Path: dirPath, Name: dirNode.Name(), Reason: core.SkipNoMatch})
		return season, nil
	}

	type candidate struct {
		node *treeview.Node[treeview.FileInfo]
		info media.EpisodeInfo
	}
	var matched []candidate

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !media.IsSeasonVideo(name) {
			continue
		}
		path := filepath.Join(dirPath, name)

		fi, err := entry.Info()
		if err != nil {
			season.Skips = append(season.Skips, Skipped{Path: path, Name: name, Reason: core.SkipNoMatch})
			continue
		}
		node := treeview.NewNode(path, name, treeview.FileInfo{
			FileInfo: fi,
			Path:     path,
			Extra:    map[string]any{},
		})
		dirNode.AddChild(node)

		info, ok := media.ParseEpisodeInfo(name, seasonNum, true, series.EpisodePatterns)
		if !ok {
			season.Skips = append(season.Skips, Skipped{Path: path, Name: name, Reason: core.SkipNoMatch})
			continue
		}
		matched = append(matched, candidate{node: node, info: info})
	}

	if len(matched) > 0 {
		first := matched[0]
		if _, err := resolver.SeasonResolution(ctx, dirPath, first.info, first.node.Data().Path); err != nil {
			for _, c := range matched {
				season.Skips = append(season.Skips, Skipped{
					Path:   c.node.Data().Path,
					Name:   c.node.Name(),
					Reason: core.SkipNoResolution,
				})
			}
			season.Skips = append(season.Skips, Skipped{Path: dirPath, Name: dirNode.Name(), Reason: core.SkipNoResolution})
			return season, nil
		}

		for _, c := range matched {
			res, ok := resolver.FileResolution(c.info, c.node.Data().Path, dirPath)
			if !ok {
				season.Skips = append(season.Skips, Skipped{
					Path:   c.node.Data().Path,
					Name:   c.node.Name(),
					Reason: core.SkipNoResolution,
				})
				continue
			}
			newName := media.FormatEpisodeName(series.ShowName, c.info.Season, c.info.Episodes, res, media.ExtractExtension(c.node.Name()))
			meta := core.EnsureMeta(c.node)
			meta.Type = core.MediaEpisode
			meta.Season = c.info.Season
			meta.NewName = newName
			season.Files = append(season.Files, &Item{
				Node:    c.node,
				Meta:    meta,
				OldName: c.node.Name(),
				NewName: newName,
				NoOp:    newName == c.node.Name(),
			})
		}
	}

	newDirName := media.FormatSeasonDirName(series.ShowNameSpaced, seasonNum)
	meta := core.EnsureMeta(dirNode)
	meta.Type = core.MediaSeason
	meta.Season = seasonNum
	meta.NewName = newDirName
	season.Dir = &Item{
		Node:    dirNode,
		Meta:    meta,
		OldName: dirNode.Name(),
		NewName: newDirName,
		NoOp:    newDirName == dirNode.Name(),
	}

	return season, nil
}
