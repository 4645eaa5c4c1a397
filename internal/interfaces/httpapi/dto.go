package httpapi

import (
	"time"

	"github.com/riskibarqy/match-forecast/internal/domain/fixture"
	"github.com/riskibarqy/match-forecast/internal/domain/forecast"
	"github.com/riskibarqy/match-forecast/internal/domain/standings"
	"github.com/riskibarqy/match-forecast/internal/domain/team"
)

type teamDTO struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	TLA       string `json:"tla,omitempty"`
	CrestURL  string `json:"crestUrl,omitempty"`
}

type standingDTO struct {
	Position       int     `json:"position"`
	Team           teamDTO `json:"team"`
	PlayedGames    int     `json:"playedGames"`
	Won            int     `json:"won"`
	Draw           int     `json:"draw"`
	Lost           int     `json:"lost"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

type snapshotDTO struct {
	CompetitionName string        `json:"competitionName,omitempty"`
	SeasonStart     string        `json:"seasonStart,omitempty"`
	Table           []standingDTO `json:"table"`
}

type fixtureDTO struct {
	HomeTeam        teamDTO   `json:"homeTeam"`
	AwayTeam        teamDTO   `json:"awayTeam"`
	UTCDate         time.Time `json:"utcDate"`
	Status          string    `json:"status"`
	CompetitionName string    `json:"competitionName,omitempty"`
	Venue           string    `json:"venue,omitempty"`
}

type probabilityDTO struct {
	HomePct int `json:"homePct"`
	DrawPct int `json:"drawPct"`
	AwayPct int `json:"awayPct"`
}

type scorelineDTO struct {
	HomeGoals int `json:"homeGoals"`
	AwayGoals int `json:"awayGoals"`
}

type forecastDTO struct {
	Fixture     fixtureDTO     `json:"fixture"`
	Probability probabilityDTO `json:"probability"`
	Scoreline   scorelineDTO   `json:"scoreline"`
}

func teamToDTO(ref team.Ref) teamDTO {
	return teamDTO{
		Name:      ref.Name,
		ShortName: ref.ShortName,
		TLA:       ref.TLA,
		CrestURL:  ref.CrestURL,
	}
}

func snapshotToDTO(snapshot standings.Snapshot) snapshotDTO {
	table := make([]standingDTO, 0, len(snapshot.Table))
	for _, entry := range snapshot.Table {
		table = append(table, standingDTO{
			Position:       entry.Position,
			Team:           teamToDTO(entry.Team),
			PlayedGames:    entry.PlayedGames,
			Won:            entry.Won,
			Draw:           entry.Draw,
			Lost:           entry.Lost,
			Points:         entry.Points,
			GoalsFor:       entry.GoalsFor,
			GoalsAgainst:   entry.GoalsAgainst,
			GoalDifference: entry.GoalDifference,
		})
	}

	return snapshotDTO{
		CompetitionName: snapshot.CompetitionName,
		SeasonStart:     snapshot.SeasonStart,
		Table:           table,
	}
}

func fixtureToDTO(f fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		HomeTeam:        teamToDTO(f.HomeTeam),
		AwayTeam:        teamToDTO(f.AwayTeam),
		UTCDate:         f.UTCDate,
		Status:          f.Status,
		CompetitionName: f.CompetitionName,
		Venue:           f.Venue,
	}
}

func forecastToDTO(f forecast.Forecast) forecastDTO {
	return forecastDTO{
		Fixture: fixtureToDTO(f.Fixture),
		Probability: probabilityDTO{
			HomePct: f.Probability.HomePct,
			DrawPct: f.Probability.DrawPct,
			AwayPct: f.Probability.AwayPct,
		},
		Scoreline: scorelineDTO{
			HomeGoals: f.Scoreline.HomeGoals,
			AwayGoals: f.Scoreline.AwayGoals,
		},
	}
}
