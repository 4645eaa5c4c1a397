package fixture

import (
	"strings"
	"time"

	"github.com/riskibarqy/match-forecast/internal/domain/team"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusTimed     = "TIMED"
	StatusPostponed = "POSTPONED"
	StatusInPlay    = "IN_PLAY"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
	StatusSuspended = "SUSPENDED"
	StatusCancelled = "CANCELLED"
)

// Fixture represents one match as retrieved from the provider. Fixtures
// are immutable once retrieved; only the selection chosen for display is
// program state.
type Fixture struct {
	HomeTeam        team.Ref
	AwayTeam        team.Ref
	UTCDate         time.Time
	Status          string
	CompetitionName string
	Venue           string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

// IsUpcomingStatus reports whether a status denotes a match that has
// not been played yet. Postponed matches count as upcoming: they still
// want a forecast once rescheduled.
func IsUpcomingStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusScheduled, StatusTimed, StatusPostponed:
		return true
	default:
		return false
	}
}

// SelectUpcoming filters to unplayed matches and truncates to max,
// preserving the provider's order. max <= 0 means no limit.
func SelectUpcoming(fixtures []Fixture, max int) []Fixture {
	out := make([]Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if !IsUpcomingStatus(f.Status) {
			continue
		}
		out = append(out, f)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
