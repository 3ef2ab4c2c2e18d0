package resolution

import (
	"context"
	"errors"
	"fmt"

	"github.com/patrickmn/go-cache"

	"seriestidy/internal/media"
)

// ErrUnresolved means every step of the resolution chain came up empty
// for a season's representative file. The caller skips the season and
// reports it; nothing about the batch as a whole fails.
var ErrUnresolved = errors.New("resolution could not be determined")

// Resolver determines the display resolution label for episode files.
//
// The chain for a season's first matched file runs inline label, then
// the configured extractor, then each prober in order. The winning
// label is cached per season directory and reused by every later file
// in that season that lacks its own label.
type Resolver struct {
	// Extractor is an optional site-specific hook that derives a label
	// from the filename alone. Whatever it returns is used verbatim.
	Extractor func(filename string) string

	Probers []Prober

	seasons *cache.Cache
}

// New returns a Resolver with an empty season cache. Entries never
// expire; a resolver lives for one batch run.
func New(extractor func(string) string, probers []Prober) *Resolver {
	return &Resolver{
		Extractor: extractor,
		Probers:   probers,
		seasons:   cache.New(cache.NoExpiration, 0),
	}
}

// SeasonResolution establishes the cached label for seasonKey from the
// season's first matched file. info is that file's parse result and
// path its location on disk for probing. Returns ErrUnresolved (wrapped)
// when the whole chain fails.
func (r *Resolver) SeasonResolution(ctx context.Context, seasonKey string, info media.EpisodeInfo, path string) (string, error) {
	if label, ok := r.seasons.Get(seasonKey); ok {
		return label.(string), nil
	}

	if info.Resolution != "" {
		r.seasons.Set(seasonKey, info.Resolution, cache.DefaultExpiration)
		return info.Resolution, nil
	}
	if r.Extractor != nil {
		if label := r.Extractor(path); label != "" {
			r.seasons.Set(seasonKey, label, cache.DefaultExpiration)
			return label, nil
		}
	}
	for _, p := range r.Probers {
		height, err := p.PixelHeight(ctx, path)
		if err != nil {
			continue
		}
		label := LabelForHeight(height)
		r.seasons.Set(seasonKey, label, cache.DefaultExpiration)
		return label, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnresolved)
}

// FileResolution picks the label for one file: its own inline label
// first, then the extractor, then the season's cached label. The
// boolean is false only when no source produced a label, which cannot
// happen for files in a season that passed SeasonResolution.
func (r *Resolver) FileResolution(info media.EpisodeInfo, path, seasonKey string) (string, bool) {
	if info.Resolution != "" {
		return info.Resolution, true
	}
	if r.Extractor != nil {
		if label := r.Extractor(path); label != "" {
			return label, true
		}
	}
	if label, ok := r.seasons.Get(seasonKey); ok {
		return label.(string), true
	}
	return "", false
}

// LabelForHeight buckets a probed pixel height into the nearest
// standard display label. Off-spec heights from anamorphic or cropped
// encodes round up to the class they belong to; anything below the
// lowest bucket is labeled literally.
func LabelForHeight(height int) string {
	switch {
	case height >= 2000:
		return "2160p"
	case height >= 1000:
		return "1080p"
	case height >= 680:
		return "720p"
	case height >= 450:
		return "480p"
	default:
		return fmt.Sprintf("%dp", height)
	}
}
