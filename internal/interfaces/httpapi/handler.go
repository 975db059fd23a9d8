package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/user"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/platform/logging"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/usecase"
)

const (
	defaultSortBy      = "goals"
	defaultResultLimit = 10
)

type Handler struct {
	queryService *usecase.QueryService
	adminService *usecase.AdminService
	adminGuard   *user.AdminGuard
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(
	queryService *usecase.QueryService,
	adminService *usecase.AdminService,
	adminGuard *user.AdminGuard,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		queryService: queryService,
		adminService: adminService,
		adminGuard:   adminGuard,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.queryService.GetAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.queryService.ListUniqueTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	team := strings.TrimSpace(r.PathValue("team"))
	players, err := h.queryService.GetByTeam(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by team failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListNationalities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNationalities")
	defer span.End()

	nationalities, err := h.queryService.ListUniqueNationalities(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list nationalities failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nationalities)
}

func (h *Handler) ListPlayersByNationality(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByNationality")
	defer span.End()

	country := strings.TrimSpace(r.PathValue("country"))
	players, err := h.queryService.GetByNationality(ctx, country)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by nationality failed", "country", country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions, err := h.queryService.ListUniquePositions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list positions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, positions)
}

func (h *Handler) ListPlayersByPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByPosition")
	defer span.End()

	position := strings.TrimSpace(r.PathValue("position"))
	players, err := h.queryService.GetByPosition(ctx, position)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by position failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Leaderboard")
	defer span.End()

	metric := strings.TrimSpace(r.URL.Query().Get("metric"))
	limit, err := queryInt(r, "limit", defaultResultLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.queryService.GetTop(ctx, metric)
	if err != nil {
		h.logger.WarnContext(ctx, "leaderboard failed", "metric", metric, "error", err)
		writeError(ctx, w, err)
		return
	}

	if limit < len(players) {
		players = players[:limit]
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) FilterPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FilterPlayers")
	defer span.End()

	query := r.URL.Query()
	minGoals, err := queryInt(r, "minGoals", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", defaultResultLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	sortBy := strings.TrimSpace(query.Get("sortBy"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	players, err := h.queryService.AdvancedFilter(ctx, usecase.FilterInput{
		Nationality: strings.TrimSpace(query.Get("nationality")),
		Position:    strings.TrimSpace(query.Get("position")),
		Team:        strings.TrimSpace(query.Get("team")),
		MinGoals:    minGoals,
		SortBy:      sortBy,
		Limit:       limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "filter players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	players, err := h.queryService.SearchByName(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid player id %q", usecase.ErrInvalidInput, raw)
	}
	return id, nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return value, nil
}
