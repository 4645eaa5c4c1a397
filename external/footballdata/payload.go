package footballdata

import (
	"time"

	"github.com/riskibarqy/match-forecast/internal/domain/fixture"
	"github.com/riskibarqy/match-forecast/internal/domain/standings"
	"github.com/riskibarqy/match-forecast/internal/domain/team"
)

// Provider payload shapes. Fields the engine does not consume are left
// out; sonic ignores them on decode.

type competitionData struct {
	Name string `json:"name"`
}

type teamData struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type standingsEnvelope struct {
	Competition competitionData `json:"competition"`
	Season      struct {
		StartDate string `json:"startDate"`
	} `json:"season"`
	Standings []standingsBlock `json:"standings"`
}

type standingsBlock struct {
	Type  string       `json:"type"`
	Table []tableEntry `json:"table"`
}

type tableEntry struct {
	Position       int      `json:"position"`
	Team           teamData `json:"team"`
	PlayedGames    int      `json:"playedGames"`
	Won            int      `json:"won"`
	Draw           int      `json:"draw"`
	Lost           int      `json:"lost"`
	Points         int      `json:"points"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
}

type matchesEnvelope struct {
	Competition competitionData `json:"competition"`
	Matches     []matchData     `json:"matches"`
}

type matchData struct {
	UTCDate  string   `json:"utcDate"`
	Status   string   `json:"status"`
	HomeTeam teamData `json:"homeTeam"`
	AwayTeam teamData `json:"awayTeam"`
	Venue    string   `json:"venue"`
}

func mapStandings(envelope standingsEnvelope) standings.Snapshot {
	block := selectTotalBlock(envelope.Standings)

	table := make([]standings.Entry, 0, len(block.Table))
	for _, row := range block.Table {
		table = append(table, standings.Entry{
			Position:       row.Position,
			Team:           mapTeam(row.Team),
			PlayedGames:    row.PlayedGames,
			Won:            row.Won,
			Draw:           row.Draw,
			Lost:           row.Lost,
			Points:         row.Points,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
		})
	}

	return standings.Snapshot{
		CompetitionName: envelope.Competition.Name,
		SeasonStart:     envelope.Season.StartDate,
		Table:           table,
	}
}

func selectTotalBlock(blocks []standingsBlock) standingsBlock {
	for _, block := range blocks {
		if block.Type == standingsTotal {
			return block
		}
	}
	if len(blocks) > 0 {
		return blocks[0]
	}
	return standingsBlock{}
}

func mapMatches(envelope matchesEnvelope) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(envelope.Matches))
	for _, match := range envelope.Matches {
		out = append(out, fixture.Fixture{
			HomeTeam:        mapTeam(match.HomeTeam),
			AwayTeam:        mapTeam(match.AwayTeam),
			UTCDate:         parseUTCDate(match.UTCDate),
			Status:          fixture.NormalizeStatus(match.Status),
			CompetitionName: envelope.Competition.Name,
			Venue:           match.Venue,
		})
	}
	return out
}

func mapTeam(data teamData) team.Ref {
	return team.Ref{
		Name:      data.Name,
		ShortName: data.ShortName,
		TLA:       data.TLA,
		CrestURL:  data.Crest,
	}
}

func parseUTCDate(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
