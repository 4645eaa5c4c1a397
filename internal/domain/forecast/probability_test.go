package forecast

import (
	"testing"

	"github.com/riskibarqy/match-forecast/internal/domain/standings"
)

func TestPredictOutcome_KnownSplit(t *testing.T) {
	t.Parallel()

	home := standings.Entry{Won: 10, Draw: 5, Lost: 3, PlayedGames: 18, GoalDifference: 20}
	away := standings.Entry{Won: 4, Draw: 6, Lost: 8, PlayedGames: 18, GoalDifference: -6}

	// homeScore=10+8=18, drawScore=5+6=11, awayScore=4+5=9, total=38.
	got := PredictOutcome(home, away)
	want := Probability{HomePct: 47, DrawPct: 29, AwayPct: 24}
	if got != want {
		t.Fatalf("unexpected split: got=%+v want=%+v", got, want)
	}
}

func TestPredictOutcome_FallbackWithoutHistory(t *testing.T) {
	t.Parallel()

	got := PredictOutcome(standings.Entry{}, standings.Entry{})
	if got != fallbackProbability {
		t.Fatalf("expected fallback split, got=%+v", got)
	}
}

func TestPredictOutcome_RoundingOvershootClamped(t *testing.T) {
	t.Parallel()

	// Shares of exactly 50.5% and 49.5% both round up, which would
	// leave the away share at -1 without the clamp.
	home := standings.Entry{Won: 505}
	away := standings.Entry{Draw: 495}

	got := PredictOutcome(home, away)
	if got.AwayPct != 0 {
		t.Fatalf("expected away share clamped to 0, got=%+v", got)
	}
	if got.HomePct+got.DrawPct+got.AwayPct != 100 {
		t.Fatalf("split must sum to 100, got=%+v", got)
	}
}

func TestPredictOutcome_AlwaysSumsTo100AndNonNegative(t *testing.T) {
	t.Parallel()

	for hw := 0; hw <= 12; hw += 3 {
		for hd := 0; hd <= 12; hd += 3 {
			for hl := 0; hl <= 12; hl += 3 {
				for aw := 0; aw <= 12; aw += 3 {
					for ad := 0; ad <= 12; ad += 3 {
						for al := 0; al <= 12; al += 3 {
							home := standings.Entry{Won: hw, Draw: hd, Lost: hl}
							away := standings.Entry{Won: aw, Draw: ad, Lost: al}

							got := PredictOutcome(home, away)
							if got.HomePct+got.DrawPct+got.AwayPct != 100 {
								t.Fatalf("split does not sum to 100 for home=%+v away=%+v: %+v", home, away, got)
							}
							if got.HomePct < 0 || got.DrawPct < 0 || got.AwayPct < 0 {
								t.Fatalf("negative share for home=%+v away=%+v: %+v", home, away, got)
							}
						}
					}
				}
			}
		}
	}
}
