package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/match-forecast/internal/domain/fixture"
	"github.com/riskibarqy/match-forecast/internal/domain/standings"
	"github.com/riskibarqy/match-forecast/internal/platform/logging"
	"github.com/riskibarqy/match-forecast/internal/platform/resilience"
	"github.com/riskibarqy/match-forecast/internal/usecase"
)

const (
	defaultBaseURL   = "https://api.football-data.org/v4"
	authTokenHeader  = "X-Auth-Token"
	standingsTotal   = "TOTAL"
	maxResponseBytes = 6 << 20
)

var errFootballDataTransient = crerr.New("football-data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to a football-data.org v4 shaped API and maps its loose
// payloads to the domain types at this boundary.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchStandings retrieves the current table for a competition. The
// provider returns several standings blocks (total, home, away); the
// TOTAL block is selected, with the first block as fallback for
// payloads that carry no TOTAL type.
func (c *Client) FetchStandings(ctx context.Context, leagueID string) (standings.Snapshot, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return standings.Snapshot{}, fmt.Errorf("%w: league id is required", usecase.ErrInvalidInput)
	}

	var envelope standingsEnvelope
	path := "/competitions/" + url.PathEscape(leagueID) + "/standings"
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return standings.Snapshot{}, fmt.Errorf("fetch standings league=%s: %w", leagueID, err)
	}

	return mapStandings(envelope), nil
}

// FetchFixtures retrieves all matches for a competition in provider
// order. Status filtering happens in the domain, not here.
func (c *Client) FetchFixtures(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", usecase.ErrInvalidInput)
	}

	var envelope matchesEnvelope
	path := "/competitions/" + url.PathEscape(leagueID) + "/matches"
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch matches league=%s: %w", leagueID, err)
	}

	return mapMatches(envelope), nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, c.baseURL+path)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errFootballDataTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set(authTokenHeader, c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errFootballDataTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errFootballDataTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errFootballDataTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
