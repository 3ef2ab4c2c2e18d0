package config

import (
	"regexp"

	"seriestidy/internal/media"
)

// Shipped rule sets. Order matters: the first matching rule wins, so the
// most specific forms come first and the bare episode-number fallback last.

func DefaultSeasonDirPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)season[ ._-]*(?P<s_num>\d+)`),
		regexp.MustCompile(`(?i)\bs(?P<season>\d{1,2})\b`),
		regexp.MustCompile(`(\d{1,2})$`),
	}
}

func DefaultEpisodePatterns() []media.EpisodePattern {
	return []media.EpisodePattern{
		// SxxEyy with an inline resolution
		{
			Pattern:         regexp.MustCompile(`^.*?[Ss](?P<season>\d+)(?P<episodes>(?:[Ee]\d+)+).*?(?P<resolution>\d{3,4})[pi].*?\.(mkv|mp4|wmv|avi)$`),
			SeasonGroup:     &media.Group{Name: "season"},
			EpisodesGroup:   media.Group{Name: "episodes"},
			ResolutionGroup: &media.Group{Name: "resolution"},
		},
		// SxxEyy without resolution; the resolver chain fills it in
		{
			Pattern:       regexp.MustCompile(`^.*?[Ss](?P<season>\d+)(?P<episodes>(?:[Ee]\d+)+).*?\.(mkv|mp4|wmv|avi)$`),
			SeasonGroup:   &media.Group{Name: "season"},
			EpisodesGroup: media.Group{Name: "episodes"},
		},
		// Bare leading episode number; season comes from the directory
		{
			Pattern:       regexp.MustCompile(`^(?P<episodes>\d{1,3})\b.*\.(mkv|mp4|wmv|avi)$`),
			EpisodesGroup: media.Group{Name: "episodes"},
		},
	}
}
