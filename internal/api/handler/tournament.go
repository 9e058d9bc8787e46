package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PranavOaR/leaguehub/internal/api/middleware"
	"github.com/PranavOaR/leaguehub/internal/api/response"
	"github.com/PranavOaR/leaguehub/internal/api/validation"
	"github.com/PranavOaR/leaguehub/internal/tournament"
)

type tournamentRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	HostCountry string `json:"hostCountry"`
	TeamCount   int    `json:"teamCount"`
	MatchCount  int    `json:"matchCount"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type tournamentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	HostCountry string `json:"hostCountry"`
	TeamCount   int    `json:"teamCount"`
	MatchCount  int    `json:"matchCount"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func toTournamentResponse(t *tournament.Tournament) tournamentResponse {
	return tournamentResponse{
		ID:          t.ID,
		Name:        t.Name,
		Type:        t.Type,
		HostCountry: t.HostCountry,
		TeamCount:   t.TeamCount,
		MatchCount:  t.MatchCount,
		StartDate:   t.StartDate.UTC().Format(validation.DateLayout),
		EndDate:     t.EndDate.UTC().Format(validation.DateLayout),
	}
}

// TournamentHandler handles tournament CRUD endpoints.
type TournamentHandler struct {
	repo tournament.Repository
}

// NewTournamentHandler creates a new TournamentHandler.
func NewTournamentHandler(repo tournament.Repository) *TournamentHandler {
	return &TournamentHandler{repo: repo}
}

func (h *TournamentHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string) (*tournament.Tournament, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req tournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return nil, false
	}

	fieldErrors := validation.ValidateTournamentRequest(validation.TournamentRequest{
		Name:        req.Name,
		Type:        req.Type,
		HostCountry: req.HostCountry,
		TeamCount:   req.TeamCount,
		MatchCount:  req.MatchCount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return nil, false
	}

	startDate, _ := validation.ParseDate(req.StartDate)
	endDate, _ := validation.ParseDate(req.EndDate)

	return &tournament.Tournament{
		Name:        req.Name,
		Type:        req.Type,
		HostCountry: req.HostCountry,
		TeamCount:   req.TeamCount,
		MatchCount:  req.MatchCount,
		StartDate:   startDate,
		EndDate:     endDate,
	}, true
}

// Create handles POST /tournaments.
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	t, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	if err := h.repo.Create(r.Context(), t); err != nil {
		slog.Error("failed to create tournament", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create tournament", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toTournamentResponse(t), requestID)
}

// List handles GET /tournaments.
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	tournaments, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list tournaments", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tournaments", requestID)
		return
	}

	items := make([]tournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		items = append(items, toTournamentResponse(&tournaments[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// Update handles PUT /tournaments/{id}.
func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	t, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}
	t.ID = id

	if err := h.repo.Update(r.Context(), t); err != nil {
		if errors.Is(err, tournament.ErrTournamentNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Tournament not found", requestID)
			return
		}
		slog.Error("failed to update tournament", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update tournament", requestID)
		return
	}

	response.Success(w, http.StatusOK, toTournamentResponse(t), requestID)
}

// Delete handles DELETE /tournaments/{id}.
func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, tournament.ErrTournamentNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Tournament not found", requestID)
			return
		}
		if errors.Is(err, tournament.ErrTournamentInUse) {
			response.Err(w, http.StatusConflict, "TOURNAMENT_IN_USE", "Cannot delete a tournament with teams or matches", requestID)
			return
		}
		slog.Error("failed to delete tournament", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete tournament", requestID)
		return
	}

	response.NoContent(w)
}
