package media

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// EpisodeInfo is the structured result of parsing one episode filename.
// Episodes preserves appearance order, including duplicates, and is
// never empty. Resolution is a display label like "1080p", or empty
// when the filename carried none.
type EpisodeInfo struct {
	Season     int
	Episodes   []int
	Resolution string
}

// episodeTokenRe extracts individual episode numbers from multi-episode
// fields like "E01E02".
var episodeTokenRe = regexp.MustCompile(`[Ee](\d+)`)

// ParseEpisodeInfo tries each pattern in order against filename and
// returns the first structurally complete result.
//
// A pattern only produces a result when a season is available: either
// its own parseable season capture or dirSeason (hasDirSeason). The
// episodes field is read two ways: one or more "E<digits>" tokens in
// left-to-right order, or a single bare integer. Patterns that yield no
// season or no episode numbers are treated as non-matching and the next
// rule is tried.
func ParseEpisodeInfo(filename string, dirSeason int, hasDirSeason bool, patterns []EpisodePattern) (EpisodeInfo, bool) {
	for _, p := range patterns {
		m, ok := p.Match(filename)
		if !ok {
			continue
		}

		season := 0
		haveSeason := false
		if m.Season != "" {
			if n, err := strconv.Atoi(m.Season); err == nil {
				season, haveSeason = n, true
			}
		}
		if !haveSeason {
			if !hasDirSeason {
				continue
			}
			season = dirSeason
		}

		episodes := parseEpisodeNumbers(m.Episodes)
		if len(episodes) == 0 {
			continue
		}

		info := EpisodeInfo{Season: season, Episodes: episodes}
		if m.Resolution != "" {
			info.Resolution = EnsureResolutionLabel(m.Resolution)
		}
		return info, true
	}
	return EpisodeInfo{}, false
}

// parseEpisodeNumbers interprets a captured episodes field. "E01E02"
// style fields contribute every token; anything else must be a single
// integer.
func parseEpisodeNumbers(field string) []int {
	if field == "" {
		return nil
	}
	if tokens := episodeTokenRe.FindAllStringSubmatch(field, -1); len(tokens) > 0 {
		episodes := make([]int, 0, len(tokens))
		for _, t := range tokens {
			if n, err := strconv.Atoi(t[1]); err == nil {
				episodes = append(episodes, n)
			}
		}
		return episodes
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return nil
	}
	return []int{n}
}

// EnsureResolutionLabel appends the trailing "p" unless already present.
func EnsureResolutionLabel(res string) string {
	if strings.HasSuffix(res, "p") {
		return res
	}
	return res + "p"
}

// FormatEpisodeName builds the canonical episode filename. Season and
// every episode number are zero-padded to at least two digits; episodes
// are concatenated with no separator, each prefixed "E". ext includes
// the leading dot.
func FormatEpisodeName(show string, season int, episodes []int, resolution, ext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s.S%02d", show, season)
	for _, ep := range episodes {
		fmt.Fprintf(&b, "E%02d", ep)
	}
	fmt.Fprintf(&b, ".%s%s", resolution, ext)
	return b.String()
}

// FormatSeasonDirName builds the canonical season directory name. The
// season is intentionally unpadded here, unlike in filenames.
func FormatSeasonDirName(showSpaced string, season int) string {
	return showSpaced + " " + strconv.Itoa(season)
}
