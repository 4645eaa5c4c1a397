package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/riskibarqy/match-forecast/internal/domain/fixture"
	"github.com/riskibarqy/match-forecast/internal/domain/forecast"
	"github.com/riskibarqy/match-forecast/internal/domain/standings"
	"github.com/riskibarqy/match-forecast/internal/domain/team"
	"github.com/riskibarqy/match-forecast/internal/platform/cache"
)

const (
	modeStandings = "standings"
	modeFixtures  = "fixtures"

	// DefaultMaxFixtures bounds the selection of upcoming matches.
	DefaultMaxFixtures = 16
)

// DataProvider retrieves standings and fixtures for one league. The
// implementation lives at the external boundary; the service only sees
// the mapped domain shapes.
type DataProvider interface {
	FetchStandings(ctx context.Context, leagueID string) (standings.Snapshot, error)
	FetchFixtures(ctx context.Context, leagueID string) ([]fixture.Fixture, error)
}

// View is the session state the presentation layer re-renders from: the
// standings snapshot and forecasts of the most recent request whose
// result was applied.
type View struct {
	LeagueID  string
	Standings standings.Snapshot
	Forecasts []forecast.Forecast
}

// ForecastService orchestrates retrieval, team resolution and the two
// prediction models. Session state is owned exclusively here; domain
// types never retain the snapshot between calls.
type ForecastService struct {
	provider    DataProvider
	memo        *cache.Store
	maxFixtures int
	logger      *slog.Logger

	mu   sync.Mutex
	seq  uint64
	view View
}

func NewForecastService(provider DataProvider, memo *cache.Store, maxFixtures int, logger *slog.Logger) *ForecastService {
	if logger == nil {
		logger = slog.Default()
	}
	if maxFixtures <= 0 {
		maxFixtures = DefaultMaxFixtures
	}

	return &ForecastService{
		provider:    provider,
		memo:        memo,
		maxFixtures: maxFixtures,
		logger:      logger,
	}
}

// Forecasts ensures standings and fixtures are loaded for the league,
// derives a probability split and predicted scoreline for each upcoming
// fixture, and returns the result filtered by query.
//
// Standings are fetched before fixtures since both models depend on the
// table. A failed standings retrieval degrades to an empty snapshot so
// fixtures still render with the fallback distributions; a failed
// fixture retrieval degrades to an empty selection. Neither failure is
// memoized, so the next request retries.
func (s *ForecastService) Forecasts(ctx context.Context, leagueID, query string) ([]forecast.Forecast, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ForecastService.Forecasts")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	reqID := s.beginRequest()

	snapshot := s.loadStandings(ctx, leagueID)
	fixtures := s.loadFixtures(ctx, leagueID)
	upcoming := fixture.SelectUpcoming(fixtures, s.maxFixtures)

	forecasts := buildForecasts(snapshot, upcoming)

	s.commit(reqID, View{
		LeagueID:  leagueID,
		Standings: snapshot,
		Forecasts: forecasts,
	})

	return FilterForecasts(forecasts, query), nil
}

// Standings ensures the table for the league is loaded and returns it.
func (s *ForecastService) Standings(ctx context.Context, leagueID string) (standings.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ForecastService.Standings")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return standings.Snapshot{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	value, err := s.memo.GetOrLoad(ctx, memoKey(modeStandings, leagueID), func(ctx context.Context) (any, error) {
		return s.provider.FetchStandings(ctx, leagueID)
	})
	if err != nil {
		return standings.Snapshot{}, fmt.Errorf("fetch standings league=%s: %w", leagueID, err)
	}

	snapshot, ok := value.(standings.Snapshot)
	if !ok {
		return standings.Snapshot{}, fmt.Errorf("unexpected memo payload type %T for league=%s", value, leagueID)
	}

	return snapshot, nil
}

// UpcomingFixtures ensures fixtures for the league are loaded and
// returns the bounded upcoming selection in provider order.
func (s *ForecastService) UpcomingFixtures(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ForecastService.UpcomingFixtures")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	value, err := s.memo.GetOrLoad(ctx, memoKey(modeFixtures, leagueID), func(ctx context.Context) (any, error) {
		return s.provider.FetchFixtures(ctx, leagueID)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures league=%s: %w", leagueID, err)
	}

	fixtures, ok := value.([]fixture.Fixture)
	if !ok {
		return nil, fmt.Errorf("unexpected memo payload type %T for league=%s", value, leagueID)
	}

	return fixture.SelectUpcoming(fixtures, s.maxFixtures), nil
}

// View returns the session state applied by the most recent committed
// request.
func (s *ForecastService) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// FilterForecasts is the pure re-render pass behind the search box. It
// keeps forecasts where the normalized query is a substring of either
// side's normalized name; a blank query keeps everything. No retrieval
// happens here.
func FilterForecasts(items []forecast.Forecast, query string) []forecast.Forecast {
	normalized := team.NormalizeName(query)
	if normalized == "" {
		return items
	}

	out := make([]forecast.Forecast, 0, len(items))
	for _, item := range items {
		home := team.NormalizeName(item.Fixture.HomeTeam.Name)
		away := team.NormalizeName(item.Fixture.AwayTeam.Name)
		if strings.Contains(home, normalized) || strings.Contains(away, normalized) {
			out = append(out, item)
		}
	}
	return out
}

// beginRequest hands out a monotonically increasing request identity.
// commit applies a view only while its request is still the newest one,
// so a slow retrieval finishing after a later selection cannot clobber
// the later selection's state.
func (s *ForecastService) beginRequest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

func (s *ForecastService) commit(reqID uint64, view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reqID != s.seq {
		s.logger.Debug("discarding stale view",
			"league_id", view.LeagueID,
			"request", reqID,
			"latest", s.seq,
		)
		return
	}
	s.view = view
}

func (s *ForecastService) loadStandings(ctx context.Context, leagueID string) standings.Snapshot {
	snapshot, err := s.Standings(ctx, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "standings unavailable, proceeding with empty snapshot",
			"league_id", leagueID, "error", err)
		return standings.Snapshot{}
	}
	return snapshot
}

func (s *ForecastService) loadFixtures(ctx context.Context, leagueID string) []fixture.Fixture {
	value, err := s.memo.GetOrLoad(ctx, memoKey(modeFixtures, leagueID), func(ctx context.Context) (any, error) {
		return s.provider.FetchFixtures(ctx, leagueID)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "fixtures unavailable, proceeding with empty selection",
			"league_id", leagueID, "error", err)
		return nil
	}

	fixtures, ok := value.([]fixture.Fixture)
	if !ok {
		s.logger.WarnContext(ctx, "unexpected memo payload for fixtures",
			"league_id", leagueID, "type", fmt.Sprintf("%T", value))
		return nil
	}
	return fixtures
}

func buildForecasts(snapshot standings.Snapshot, upcoming []fixture.Fixture) []forecast.Forecast {
	out := make([]forecast.Forecast, 0, len(upcoming))
	for _, f := range upcoming {
		home, _ := snapshot.Resolve(f.HomeTeam.Name)
		away, _ := snapshot.Resolve(f.AwayTeam.Name)

		out = append(out, forecast.Forecast{
			Fixture:     f,
			Probability: forecast.PredictOutcome(home, away),
			Scoreline:   forecast.PredictScoreline(home, away),
		})
	}
	return out
}

func memoKey(mode, leagueID string) string {
	return mode + ":" + leagueID
}
