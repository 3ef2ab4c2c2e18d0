package media

import (
	"regexp"
	"strconv"
)

// seasonGroupNames is the fixed preference order for named captures when
// pulling a season number out of a directory pattern match. Positional
// group 1 is the fallback when no named group yields an integer.
var seasonGroupNames = []string{"s_num", "season_num", "season"}

// SeasonFromDirectory extracts a season number from a directory name by
// trying each pattern in order. Matches are searched anywhere in the
// name. Captures that are not integers are treated as undetermined and
// the search continues; the function never panics on malformed input.
func SeasonFromDirectory(name string, patterns []*regexp.Regexp) (int, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		for _, groupName := range seasonGroupNames {
			idx := re.SubexpIndex(groupName)
			if idx < 1 || idx >= len(m) || m[idx] == "" {
				continue
			}
			if n, err := strconv.Atoi(m[idx]); err == nil {
				return n, true
			}
		}
		if len(m) > 1 && m[1] != "" {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
