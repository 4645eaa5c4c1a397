package forecast

import (
	"math"

	"github.com/riskibarqy/match-forecast/internal/domain/standings"
)

const (
	homeBaselineGoals = 1.0
	awayBaselineGoals = 0.8
)

// PredictScoreline derives a scoreline from the difference in goal
// difference per match between the two sides, offset by asymmetric
// baselines that model home advantage. A side with no played games
// contributes a rate of zero, as does an unresolved (zero) entry.
//
// An exact 0-0 prediction is forced to 1-1; near-zero rates that round
// down on one side only are left alone.
func PredictScoreline(home, away standings.Entry) Scoreline {
	diff := goalDiffPerMatch(home) - goalDiffPerMatch(away)

	predHome := math.Max(0, diff+homeBaselineGoals)
	predAway := math.Max(0, -diff+awayBaselineGoals)

	homeGoals := int(math.Round(predHome))
	awayGoals := int(math.Round(predAway))
	if homeGoals < 0 {
		homeGoals = 0
	}
	if awayGoals < 0 {
		awayGoals = 0
	}

	if homeGoals == 0 && awayGoals == 0 {
		return Scoreline{HomeGoals: 1, AwayGoals: 1}
	}

	return Scoreline{HomeGoals: homeGoals, AwayGoals: awayGoals}
}

func goalDiffPerMatch(entry standings.Entry) float64 {
	if entry.PlayedGames <= 0 {
		return 0
	}
	return float64(entry.GoalDifference) / float64(entry.PlayedGames)
}
