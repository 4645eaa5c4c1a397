package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/match-forecast/external/footballdata"
	"github.com/riskibarqy/match-forecast/internal/config"
	"github.com/riskibarqy/match-forecast/internal/interfaces/httpapi"
	"github.com/riskibarqy/match-forecast/internal/platform/cache"
	"github.com/riskibarqy/match-forecast/internal/platform/logging"
	"github.com/riskibarqy/match-forecast/internal/platform/resilience"
	"github.com/riskibarqy/match-forecast/internal/usecase"
)

// App owns the wired object graph for one service session. The memo
// store lives here: constructed at session start, discarded with the
// process.
type App struct {
	Server          *http.Server
	ForecastService *usecase.ForecastService

	cfg    config.Config
	logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	memo := cache.NewStore()

	provider := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:    cfg.FootballDataBaseURL,
		Token:      cfg.FootballDataToken,
		Timeout:    cfg.FootballDataTimeout,
		MaxRetries: cfg.FootballDataMaxRetries,
		Logger:     logging.Default(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenReq,
		},
	})

	forecastSvc := usecase.NewForecastService(provider, memo, cfg.ForecastMaxFixtures, logger)
	handler := httpapi.NewHandler(forecastSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server:          server,
		ForecastService: forecastSvc,
		cfg:             cfg,
		logger:          logger,
	}, nil
}

// PrefetchLeagues warms the memo store for the configured leagues so
// the first user request per league is served from memory. Retrieval
// failures only log; the session retries lazily on demand since failed
// loads are never memoized.
func (a *App) PrefetchLeagues(ctx context.Context) error {
	leagues := a.cfg.PrefetchLeagues
	if len(leagues) == 0 {
		return nil
	}

	pool, err := ants.NewPool(a.cfg.PrefetchWorkers)
	if err != nil {
		return fmt.Errorf("create prefetch pool: %w", err)
	}
	defer pool.Release()

	started := time.Now()
	var workers sync.WaitGroup
	for _, leagueID := range leagues {
		leagueID := leagueID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if _, err := a.ForecastService.Standings(ctx, leagueID); err != nil {
				a.logger.WarnContext(ctx, "prefetch standings failed", "league_id", leagueID, "error", err)
			}
			if _, err := a.ForecastService.UpcomingFixtures(ctx, leagueID); err != nil {
				a.logger.WarnContext(ctx, "prefetch fixtures failed", "league_id", leagueID, "error", err)
			}
		}); err != nil {
			workers.Done()
			a.logger.WarnContext(ctx, "prefetch submit failed", "league_id", leagueID, "error", err)
		}
	}
	workers.Wait()

	a.logger.InfoContext(ctx, "league prefetch finished",
		"leagues", len(leagues),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return nil
}
