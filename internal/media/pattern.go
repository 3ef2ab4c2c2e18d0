package media

import (
	"regexp"
)

// Episode filename matching.
//
// Episode names are matched against an ordered list of EpisodePattern
// rules; the first rule that matches wins. Rule order is configuration,
// not an implementation detail: callers must never resort the list.

// Group addresses a capture inside a pattern match, either by name or by
// one-based index. A non-empty Name takes precedence over Index.
type Group struct {
	Name  string
	Index int
}

// resolve returns the submatch index this group refers to within re, or
// -1 when the group does not exist in the expression.
func (g Group) resolve(re *regexp.Regexp) int {
	if g.Name != "" {
		return re.SubexpIndex(g.Name)
	}
	if g.Index > 0 && g.Index < re.NumSubexp()+1 {
		return g.Index
	}
	return -1
}

// EpisodePattern is a single immutable matching rule. SeasonGroup and
// ResolutionGroup may be nil, meaning the rule carries no such field
// (the season then comes from the containing directory, and the
// resolution from the resolver chain).
type EpisodePattern struct {
	Pattern         *regexp.Regexp
	SeasonGroup     *Group
	EpisodesGroup   Group
	ResolutionGroup *Group
}

// PatternMatch holds the raw substrings captured by a successful rule
// evaluation. Fields for absent locators are empty.
type PatternMatch struct {
	Season     string
	Episodes   string
	Resolution string
}

// Match evaluates the rule against filename, anchored at the start of
// the string. The episodes field is mandatory: a rule whose episodes
// group captures nothing does not match. Season and resolution groups
// that capture nothing simply yield empty fields so the caller can fall
// back (directory season, resolver chain). Match never panics on a
// group that does not exist in the expression.
func (p EpisodePattern) Match(filename string) (PatternMatch, bool) {
	if p.Pattern == nil {
		return PatternMatch{}, false
	}
	loc := p.Pattern.FindStringSubmatchIndex(filename)
	if loc == nil || loc[0] != 0 {
		return PatternMatch{}, false
	}

	capture := func(g Group) string {
		idx := g.resolve(p.Pattern)
		if idx < 0 || 2*idx+1 >= len(loc) {
			return ""
		}
		start, end := loc[2*idx], loc[2*idx+1]
		if start < 0 {
			return ""
		}
		return filename[start:end]
	}

	m := PatternMatch{Episodes: capture(p.EpisodesGroup)}
	if m.Episodes == "" {
		return PatternMatch{}, false
	}
	if p.SeasonGroup != nil {
		m.Season = capture(*p.SeasonGroup)
	}
	if p.ResolutionGroup != nil {
		m.Resolution = capture(*p.ResolutionGroup)
	}
	return m, true
}
