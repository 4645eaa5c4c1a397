package forecast

import "github.com/riskibarqy/match-forecast/internal/domain/fixture"

// Probability is a three-way outcome split in whole percent. The three
// values always sum to exactly 100.
type Probability struct {
	HomePct int
	DrawPct int
	AwayPct int
}

// Scoreline is a predicted final score. Both counts are non-negative
// and never both zero.
type Scoreline struct {
	HomeGoals int
	AwayGoals int
}

// Forecast is the per-fixture result handed to the presentation
// boundary.
type Forecast struct {
	Fixture     fixture.Fixture
	Probability Probability
	Scoreline   Scoreline
}
