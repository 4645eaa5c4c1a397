package standings

import (
	"strings"

	"github.com/riskibarqy/match-forecast/internal/domain/team"
)

// Resolve maps a free-text team name to a table entry. Matching is
// case-insensitive: first an exact match on normalized name, short name
// or TLA, then a substring match in either direction between the query
// and the entry name. The first matching entry in table order wins, so
// an ambiguous query resolves to the higher-placed team.
//
// A blank query, or a query no entry matches, returns ok=false. The
// zero Entry then stands in for the unresolved team downstream.
func (s Snapshot) Resolve(name string) (Entry, bool) {
	query := team.NormalizeName(name)
	if query == "" {
		return Entry{}, false
	}

	for _, entry := range s.Table {
		if entryMatches(entry, query) {
			return entry, true
		}
	}

	return Entry{}, false
}

func entryMatches(entry Entry, query string) bool {
	entryName := team.NormalizeName(entry.Team.Name)
	shortName := team.NormalizeName(entry.Team.ShortName)
	tla := team.NormalizeName(entry.Team.TLA)

	if query == entryName || query == shortName || query == tla {
		return true
	}

	if entryName == "" {
		return false
	}

	return strings.Contains(entryName, query) || strings.Contains(query, entryName)
}
