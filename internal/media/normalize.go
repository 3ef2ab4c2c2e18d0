package media

import (
	"fmt"
	"regexp"
	"strings"
)

// Standalone filename normalization for flat directories of episode
// files, plus the extension filters shared with the batch engine.
var (
	// episodeNameRe is the generic catch-all form: show name, SxxEyy,
	// an inline resolution, then a recognized extension. The match must
	// reach the extension, so trailing junk after it fails the rule.
	episodeNameRe = regexp.MustCompile(`^(?P<name>.*)([Ss](?P<season>\d+))([Ee]?(?P<episode>\d+)).*?(?P<resolution>\d+[pi]).*?\.(?P<extension>mkv|mp4|wmv|avi)$`)

	// videoRe is the default recognized video set. Deliberately
	// case-sensitive: the canonical output always carries lowercase
	// extensions, and uppercase variants are rare enough to surface as
	// reported skips rather than silently renamed.
	videoRe = regexp.MustCompile(`\.(mkv|mp4|wmv|avi)$`)

	// seasonVideoRe is the narrower filter used by season-level batch
	// processing, which handles .mkv only (case-insensitive). The
	// narrowing is intentional, not an oversight; the flat episodes
	// command keeps the full set above.
	seasonVideoRe = regexp.MustCompile(`(?i)\.mkv$`)
)

// IsVideo reports whether filename has a recognized video extension.
func IsVideo(filename string) bool {
	return videoRe.MatchString(filename)
}

// IsSeasonVideo reports whether filename qualifies for season-level
// batch renaming.
func IsSeasonVideo(filename string) bool {
	return seasonVideoRe.MatchString(filename)
}

// ExtractExtension returns the file extension including the dot, or ""
// when the filename has none.
func ExtractExtension(filename string) string {
	if dotIndex := strings.LastIndex(filename, "."); dotIndex != -1 {
		return filename[dotIndex:]
	}
	return ""
}

// Normalize rewrites a single episode filename into the canonical
// dotted form using the generic pattern. It returns false when the name
// has no recognizable season/episode/extension structure, or no inline
// resolution (there is no interactive fallback; batch callers use the
// resolver chain instead). Normalize is idempotent: applying it to its
// own output returns the same string.
func Normalize(filename string) (string, bool) {
	m := episodeNameRe.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	group := func(name string) string {
		return m[episodeNameRe.SubexpIndex(name)]
	}

	show := strings.ReplaceAll(strings.Trim(group("name"), ". "), " ", ".")
	season := zeroPad(group("season"))
	episode := zeroPad(group("episode"))
	resolution := group("resolution")
	extension := group("extension")

	return fmt.Sprintf("%s.S%sE%s.%s.%s", show, season, episode, resolution, extension), true
}

// zeroPad widens a single-digit capture; wider captures pass through
// untruncated.
func zeroPad(num string) string {
	if len(num) == 1 {
		return "0" + num
	}
	return num
}
