package httpapi

import (
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/usecase"
)

// playerRequest mirrors the stored record minus the id. Stat fields
// are pointers so an absent field and an explicit zero stay distinct.
type playerRequest struct {
	Name          string   `json:"name" validate:"required"`
	Nationality   string   `json:"nationality" validate:"required"`
	Position      string   `json:"position" validate:"required"`
	Team          string   `json:"team" validate:"required"`
	Age           *int     `json:"age" validate:"omitempty,gte=0"`
	MatchesPlayed *int     `json:"matchesPlayed" validate:"omitempty,gte=0"`
	Starts        *int     `json:"starts" validate:"omitempty,gte=0"`
	Minutes       *int     `json:"minutes" validate:"omitempty,gte=0"`
	Goals         *int     `json:"goals" validate:"omitempty,gte=0"`
	Assists       *int     `json:"assists" validate:"omitempty,gte=0"`
	PKMade        *int     `json:"pkMade" validate:"omitempty,gte=0"`
	XG            *float64 `json:"xg" validate:"omitempty,gte=0"`
	XAG           *float64 `json:"xag" validate:"omitempty,gte=0"`
}

func (req playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{
		Name:          req.Name,
		Nationality:   req.Nationality,
		Position:      req.Position,
		Team:          req.Team,
		Age:           req.Age,
		MatchesPlayed: req.MatchesPlayed,
		Starts:        req.Starts,
		Minutes:       req.Minutes,
		Goals:         req.Goals,
		Assists:       req.Assists,
		PKMade:        req.PKMade,
		XG:            req.XG,
		XAG:           req.XAG,
	}
}

func decodePlayerRequest(body io.Reader, out *playerRequest) error {
	decoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.adminService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no authenticated principal", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, principalToProfileDTO(principal, h.adminGuard.IsAdmin(principal)))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := decodePlayerRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.adminService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRequest
	if err := decodePlayerRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	updated, err := h.adminService.Update(ctx, id, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) PatchPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchPlayer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// Partial payload: required-field checks happen in the usecase
	// against the merged record.
	var req playerRequest
	if err := decodePlayerRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patched, err := h.adminService.Patch(ctx, id, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "patch player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(patched))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.adminService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
