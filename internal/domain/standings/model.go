package standings

import "github.com/riskibarqy/match-forecast/internal/domain/team"

// Entry represents one row of a league table.
type Entry struct {
	Position       int
	Team           team.Ref
	PlayedGames    int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
}

// Snapshot is the full table for one competition at one retrieval
// instant. It is replaced wholesale on each successful retrieval and
// never patched in place.
type Snapshot struct {
	CompetitionName string
	SeasonStart     string
	Table           []Entry
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Table) == 0
}
