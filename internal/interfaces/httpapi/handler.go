package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/match-forecast/internal/usecase"
)

type Handler struct {
	forecastService *usecase.ForecastService
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(forecastService *usecase.ForecastService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		forecastService: forecastService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type leagueRequest struct {
	LeagueID string `validate:"required,min=2,max=40"`
	Query    string `validate:"omitempty,max=80"`
}

func (h *Handler) leagueRequestFrom(r *http.Request) (leagueRequest, error) {
	req := leagueRequest{
		LeagueID: strings.TrimSpace(r.PathValue("leagueID")),
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
	}
	if err := h.validator.Struct(req); err != nil {
		return leagueRequest{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return req, nil
}

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	req, err := h.leagueRequestFrom(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshot, err := h.forecastService.Standings(ctx, req.LeagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(snapshot))
}

func (h *Handler) ListUpcomingFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingFixtures")
	defer span.End()

	req, err := h.leagueRequestFrom(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.forecastService.UpcomingFixtures(ctx, req.LeagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListForecasts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListForecasts")
	defer span.End()

	req, err := h.leagueRequestFrom(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	forecasts, err := h.forecastService.Forecasts(ctx, req.LeagueID, req.Query)
	if err != nil {
		h.logger.WarnContext(ctx, "list forecasts failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]forecastDTO, 0, len(forecasts))
	for _, f := range forecasts {
		items = append(items, forecastToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
