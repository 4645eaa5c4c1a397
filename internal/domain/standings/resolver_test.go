package standings

import (
	"testing"

	"github.com/riskibarqy/match-forecast/internal/domain/team"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		CompetitionName: "Premier League",
		Table: []Entry{
			{Position: 1, Team: team.Ref{Name: "Manchester City FC", ShortName: "Man City", TLA: "MCI"}, Won: 10},
			{Position: 2, Team: team.Ref{Name: "Manchester United FC", ShortName: "Man United", TLA: "MUN"}, Won: 8},
			{Position: 3, Team: team.Ref{Name: "Arsenal FC", ShortName: "Arsenal", TLA: "ARS"}, Won: 7},
		},
	}
}

func TestResolve_ExactShortNameAndTLA(t *testing.T) {
	t.Parallel()

	snapshot := sampleSnapshot()

	entry, ok := snapshot.Resolve("Man United")
	if !ok || entry.Position != 2 {
		t.Fatalf("expected Man United at position 2, got ok=%v entry=%+v", ok, entry)
	}

	entry, ok = snapshot.Resolve("ars")
	if !ok || entry.Position != 3 {
		t.Fatalf("expected TLA lookup for Arsenal, got ok=%v entry=%+v", ok, entry)
	}
}

func TestResolve_SubstringBothDirections(t *testing.T) {
	t.Parallel()

	snapshot := sampleSnapshot()

	// Query contained in entry name.
	entry, ok := snapshot.Resolve("arsenal")
	if !ok || entry.Team.TLA != "ARS" {
		t.Fatalf("expected substring match for Arsenal, got ok=%v entry=%+v", ok, entry)
	}

	// Entry name contained in query.
	entry, ok = snapshot.Resolve("Arsenal FC London")
	if !ok || entry.Team.TLA != "ARS" {
		t.Fatalf("expected reverse substring match, got ok=%v entry=%+v", ok, entry)
	}
}

func TestResolve_FirstMatchInTableOrderWins(t *testing.T) {
	t.Parallel()

	snapshot := sampleSnapshot()

	// "manchester" is a substring of both Manchester entries; table
	// order decides.
	entry, ok := snapshot.Resolve("  MANCHESTER ")
	if !ok || entry.Position != 1 {
		t.Fatalf("expected first Manchester entry, got ok=%v entry=%+v", ok, entry)
	}
}

func TestResolve_BlankAndUnknownQueries(t *testing.T) {
	t.Parallel()

	snapshot := sampleSnapshot()

	if _, ok := snapshot.Resolve("   "); ok {
		t.Fatalf("blank query must not resolve")
	}
	if _, ok := snapshot.Resolve("Real Madrid"); ok {
		t.Fatalf("unknown team must not resolve")
	}
	if _, ok := (Snapshot{}).Resolve("Arsenal"); ok {
		t.Fatalf("empty snapshot must not resolve")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	snapshot := sampleSnapshot()

	first, ok1 := snapshot.Resolve("man city")
	second, ok2 := snapshot.Resolve("man city")
	if !ok1 || !ok2 || first != second {
		t.Fatalf("resolution must be stable for an unchanged snapshot: %+v vs %+v", first, second)
	}
}
