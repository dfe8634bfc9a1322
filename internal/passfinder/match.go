package passfinder

import (
	"strings"

	"cdvrpass/internal/channelsdvr"
)

// Criteria selects programs by title and, optionally, season and episode.
// Zero season or episode means "not given".
type Criteria struct {
	Title   string
	Season  int
	Episode int
}

// Matches reports whether p satisfies the criteria. The title test is a
// case-sensitive substring match. The episode is only compared when a season
// is given, and a program lacking a required number never matches.
func (c Criteria) Matches(p Program) bool {
	if !strings.Contains(p.Title, c.Title) {
		return false
	}
	if c.Season == 0 {
		return true
	}
	if p.SeasonNumber == 0 || p.SeasonNumber != c.Season {
		return false
	}
	if c.Episode == 0 {
		return true
	}
	return p.EpisodeNumber != 0 && p.EpisodeNumber == c.Episode
}

// Filter returns the records matching c, in input order.
func Filter(records []channelsdvr.Record, c Criteria) []Program {
	var matches []Program
	for _, rec := range records {
		p := NewProgram(rec)
		if c.Matches(p) {
			matches = append(matches, p)
		}
	}
	return matches
}
