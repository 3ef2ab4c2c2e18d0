package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"seriestidy/internal/media"
)

// SeriesConfig is the compiled matching configuration for one series
// directory: the canonical show names plus the ordered rule lists the
// planner applies. Rule order is significant and preserved as declared.
type SeriesConfig struct {
	BaseDir        string
	ShowName       string // dotted, used in filenames
	ShowNameSpaced string // spaced, used in directory names

	SeasonDirPatterns []*regexp.Regexp
	EpisodePatterns   []media.EpisodePattern

	// ResolutionExtractor is an optional programmatic hook consulted
	// between a file's inline label and the probers. It has no file
	// representation; callers wire it in code.
	ResolutionExtractor func(filename string) string
}

// groupRef is a capture locator in a series file: either a group name or a
// one-based index. YAML allows both `season_group: season` and
// `season_group: 2`.
type groupRef struct {
	name  string
	index int
	set   bool
}

func (g *groupRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: group reference must be a name or index", value.Line)
	}
	var idx int
	if err := value.Decode(&idx); err == nil {
		if idx < 1 {
			return fmt.Errorf("line %d: group index must be positive", value.Line)
		}
		*g = groupRef{index: idx, set: true}
		return nil
	}
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	*g = groupRef{name: name, set: true}
	return nil
}

func (g groupRef) toGroup() media.Group {
	return media.Group{Name: g.name, Index: g.index}
}

// patternFile is the on-disk form of one episode rule.
type patternFile struct {
	Pattern         string    `yaml:"pattern"`
	SeasonGroup     *groupRef `yaml:"season_group"`
	EpisodesGroup   *groupRef `yaml:"episodes_group"`
	ResolutionGroup *groupRef `yaml:"resolution_group"`
}

// seriesFile is the on-disk form of a series configuration.
type seriesFile struct {
	ShowName          string        `yaml:"show_name"`
	SeasonDirPatterns []string      `yaml:"season_dir_patterns"`
	EpisodePatterns   []patternFile `yaml:"episode_patterns"`
}

// LoadSeries reads and compiles a series file for baseDir. Rules are kept
// in declaration order. Unspecified pattern lists fall back to the shipped
// defaults; an empty show name is derived from the directory name.
func LoadSeries(path, baseDir string) (*SeriesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read series file: %w", err)
	}

	var sf seriesFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse series file: %w", err)
	}
	return sf.compile(baseDir)
}

// SeriesForDir builds a series configuration from the directory name alone,
// using the default pattern sets. showName overrides the derived name when
// non-empty.
func SeriesForDir(baseDir, showName string) *SeriesConfig {
	if showName == "" {
		showName = filepath.Base(filepath.Clean(baseDir))
	}
	dotted, spaced := canonicalShowNames(showName)
	return &SeriesConfig{
		BaseDir:           baseDir,
		ShowName:          dotted,
		ShowNameSpaced:    spaced,
		SeasonDirPatterns: DefaultSeasonDirPatterns(),
		EpisodePatterns:   DefaultEpisodePatterns(),
	}
}

func (sf seriesFile) compile(baseDir string) (*SeriesConfig, error) {
	showName := sf.ShowName
	if showName == "" {
		showName = filepath.Base(filepath.Clean(baseDir))
	}
	dotted, spaced := canonicalShowNames(showName)

	sc := &SeriesConfig{
		BaseDir:        baseDir,
		ShowName:       dotted,
		ShowNameSpaced: spaced,
	}

	if len(sf.SeasonDirPatterns) == 0 {
		sc.SeasonDirPatterns = DefaultSeasonDirPatterns()
	} else {
		for _, expr := range sf.SeasonDirPatterns {
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("season dir pattern %q: %w", expr, err)
			}
			sc.SeasonDirPatterns = append(sc.SeasonDirPatterns, re)
		}
	}

	if len(sf.EpisodePatterns) == 0 {
		sc.EpisodePatterns = DefaultEpisodePatterns()
		return sc, nil
	}
	for _, pf := range sf.EpisodePatterns {
		re, err := regexp.Compile(pf.Pattern)
		if err != nil {
			return nil, fmt.Errorf("episode pattern %q: %w", pf.Pattern, err)
		}
		if pf.EpisodesGroup == nil || !pf.EpisodesGroup.set {
			return nil, fmt.Errorf("episode pattern %q: episodes_group is required", pf.Pattern)
		}
		ep := media.EpisodePattern{
			Pattern:       re,
			EpisodesGroup: pf.EpisodesGroup.toGroup(),
		}
		if pf.SeasonGroup != nil && pf.SeasonGroup.set {
			g := pf.SeasonGroup.toGroup()
			ep.SeasonGroup = &g
		}
		if pf.ResolutionGroup != nil && pf.ResolutionGroup.set {
			g := pf.ResolutionGroup.toGroup()
			ep.ResolutionGroup = &g
		}
		sc.EpisodePatterns = append(sc.EpisodePatterns, ep)
	}
	return sc, nil
}

// canonicalShowNames derives the dotted and spaced forms from whichever
// style the input uses.
func canonicalShowNames(name string) (dotted, spaced string) {
	name = strings.Trim(name, ". ")
	if strings.Contains(name, " ") {
		return strings.ReplaceAll(name, " ", "."), name
	}
	return name, strings.ReplaceAll(name, ".", " ")
}
