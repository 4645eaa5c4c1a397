package forecast

import (
	"math"

	"github.com/riskibarqy/match-forecast/internal/domain/standings"
)

// fallbackProbability is returned when neither side has any win/draw/
// loss history, e.g. before the season starts or when both teams failed
// to resolve against the table.
var fallbackProbability = Probability{HomePct: 50, DrawPct: 30, AwayPct: 20}

// PredictOutcome converts two table entries into an outcome split. A
// zero Entry stands in for an unresolved team, so every missing
// statistic contributes zero.
//
// The away score reuses the home side's draw count rather than its own
// win count being paired with the away draws. That asymmetry is part of
// the model, not an accident.
func PredictOutcome(home, away standings.Entry) Probability {
	homeScore := home.Won + away.Lost
	drawScore := home.Draw + away.Draw
	awayScore := away.Won + home.Draw

	total := homeScore + drawScore + awayScore
	if total <= 0 {
		return fallbackProbability
	}

	homePct := roundPct(homeScore, total)
	drawPct := roundPct(drawScore, total)
	awayPct := 100 - homePct - drawPct

	// Rounding both shares half-up can overshoot 100 by one (e.g.
	// shares of 50.5 and 49.5), which would leave awayPct at -1. Fold
	// the overshoot back into the draw share so the split stays
	// non-negative and sums to 100.
	if awayPct < 0 {
		drawPct += awayPct
		awayPct = 0
	}

	return Probability{HomePct: homePct, DrawPct: drawPct, AwayPct: awayPct}
}

func roundPct(part, total int) int {
	return int(math.Round(100 * float64(part) / float64(total)))
}
