package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/match-forecast/internal/domain/fixture"
	"github.com/riskibarqy/match-forecast/internal/platform/resilience"
	"github.com/riskibarqy/match-forecast/internal/usecase"
)

const standingsBody = `{
	"competition": {"name": "Premier League"},
	"season": {"startDate": "2026-08-14"},
	"standings": [
		{"type": "HOME", "table": [
			{"position": 9, "team": {"name": "Wrong Block FC"}, "playedGames": 9}
		]},
		{"type": "TOTAL", "table": [
			{
				"position": 1,
				"team": {"name": "Arsenal FC", "shortName": "Arsenal", "tla": "ARS", "crest": "https://crests.example/57.png"},
				"playedGames": 18, "won": 10, "draw": 5, "lost": 3,
				"points": 35, "goalsFor": 40, "goalsAgainst": 20, "goalDifference": 20
			}
		]}
	]
}`

const matchesBody = `{
	"competition": {"name": "Premier League"},
	"matches": [
		{
			"utcDate": "2026-09-12T14:00:00Z",
			"status": "TIMED",
			"homeTeam": {"name": "Arsenal FC", "tla": "ARS"},
			"awayTeam": {"name": "Everton FC", "tla": "EVE"},
			"venue": "Emirates Stadium"
		},
		{
			"utcDate": "2026-09-05T14:00:00Z",
			"status": "FINISHED",
			"homeTeam": {"name": "Chelsea FC"},
			"awayTeam": {"name": "Fulham FC"}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:    server.URL,
		Token:      "test-token",
		MaxRetries: 1,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	})
}

func TestFetchStandings_SelectsTotalBlock(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(authTokenHeader); got != "test-token" {
			t.Errorf("expected auth token header, got %q", got)
		}
		if r.URL.Path != "/competitions/PL/standings" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(standingsBody))
	})

	snapshot, err := client.FetchStandings(context.Background(), "PL")
	if err != nil {
		t.Fatalf("FetchStandings: %v", err)
	}

	if snapshot.CompetitionName != "Premier League" {
		t.Fatalf("unexpected competition %q", snapshot.CompetitionName)
	}
	if snapshot.SeasonStart != "2026-08-14" {
		t.Fatalf("unexpected season start %q", snapshot.SeasonStart)
	}
	if len(snapshot.Table) != 1 {
		t.Fatalf("expected the TOTAL table, got %d rows", len(snapshot.Table))
	}

	row := snapshot.Table[0]
	if row.Team.Name != "Arsenal FC" || row.Team.TLA != "ARS" {
		t.Fatalf("unexpected team mapping: %+v", row.Team)
	}
	if row.Won != 10 || row.Draw != 5 || row.Lost != 3 || row.GoalDifference != 20 {
		t.Fatalf("unexpected stats mapping: %+v", row)
	}
}

func TestFetchStandings_FallsBackToFirstBlock(t *testing.T) {
	t.Parallel()

	const body = `{
		"competition": {"name": "Cup"},
		"standings": [
			{"type": "GROUP_A", "table": [{"position": 1, "team": {"name": "First FC"}}]},
			{"type": "GROUP_B", "table": [{"position": 1, "team": {"name": "Second FC"}}]}
		]
	}`

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	snapshot, err := client.FetchStandings(context.Background(), "CUP")
	if err != nil {
		t.Fatalf("FetchStandings: %v", err)
	}
	if len(snapshot.Table) != 1 || snapshot.Table[0].Team.Name != "First FC" {
		t.Fatalf("expected first block fallback, got %+v", snapshot.Table)
	}
}

func TestFetchFixtures_MapsAllMatches(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/competitions/PL/matches" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(matchesBody))
	})

	fixtures, err := client.FetchFixtures(context.Background(), "PL")
	if err != nil {
		t.Fatalf("FetchFixtures: %v", err)
	}

	// Status filtering is a domain concern; the client maps everything.
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(fixtures))
	}
	if fixtures[0].Status != fixture.StatusTimed || fixtures[0].Venue != "Emirates Stadium" {
		t.Fatalf("unexpected first fixture: %+v", fixtures[0])
	}
	if fixtures[0].UTCDate.IsZero() {
		t.Fatalf("expected parsed kickoff time")
	}
	if fixtures[0].CompetitionName != "Premier League" {
		t.Fatalf("competition name must be carried onto fixtures, got %q", fixtures[0].CompetitionName)
	}
}

func TestDoJSON_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(matchesBody))
	})

	fixtures, err := client.FetchFixtures(context.Background(), "PL")
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected fixtures after retry, got %d", len(fixtures))
	}
	if got := attempts.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestDoJSON_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := client.FetchStandings(context.Background(), "XX"); err == nil {
		t.Fatalf("expected error for 404")
	}
	if got := attempts.Load(); got != 1 {
		t.Fatalf("client errors must not be retried, got %d attempts", got)
	}
}

func TestDoJSON_CircuitBreakerRejectsWhenOpen(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		MaxRetries: 0,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	if _, err := client.FetchStandings(context.Background(), "PL"); err == nil {
		t.Fatalf("expected failure to trip the breaker")
	}

	_, err := client.FetchStandings(context.Background(), "PL")
	if err == nil {
		t.Fatalf("expected open breaker rejection")
	}
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency-unavailable error, got %v", err)
	}
}
