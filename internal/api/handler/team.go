package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PranavOaR/leaguehub/internal/api/middleware"
	"github.com/PranavOaR/leaguehub/internal/api/response"
	"github.com/PranavOaR/leaguehub/internal/api/validation"
	"github.com/PranavOaR/leaguehub/internal/team"
	"github.com/PranavOaR/leaguehub/internal/tournament"
)

type createTeamRequest struct {
	Name           string `json:"name"`
	CoachName      string `json:"coachName"`
	FoundationYear *int   `json:"foundationYear"`
	TournamentID   *int64 `json:"tournamentId"`
}

type teamResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CoachName      string `json:"coachName"`
	FoundationYear *int   `json:"foundationYear"`
	TournamentID   int64  `json:"tournamentId"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

func toTeamResponse(t *team.Team) teamResponse {
	return teamResponse{
		ID:             t.ID,
		Name:           t.Name,
		CoachName:      t.CoachName,
		FoundationYear: t.FoundationYear,
		TournamentID:   t.TournamentID,
		CreatedAt:      t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      t.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// TeamHandler handles team CRUD endpoints.
type TeamHandler struct {
	repo team.Repository
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(repo team.Repository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

// Create handles POST /teams.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateTeamRequest(validation.CreateTeamRequest{
		Name:           req.Name,
		CoachName:      req.CoachName,
		FoundationYear: req.FoundationYear,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	tournamentID := tournament.DefaultID
	if req.TournamentID != nil {
		tournamentID = *req.TournamentID
	}

	t := &team.Team{
		Name:           req.Name,
		CoachName:      req.CoachName,
		FoundationYear: req.FoundationYear,
		TournamentID:   tournamentID,
	}

	if err := h.repo.Create(r.Context(), t); err != nil {
		if errors.Is(err, team.ErrTournamentNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Tournament not found", requestID)
			return
		}
		slog.Error("failed to create team", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create team", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toTeamResponse(t), requestID)
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	teams, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list teams", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list teams", requestID)
		return
	}

	items := make([]teamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, toTeamResponse(&teams[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// Delete handles DELETE /teams/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		if errors.Is(err, team.ErrTeamHasMatches) {
			response.Err(w, http.StatusConflict, "TEAM_HAS_MATCHES", "Cannot delete a team with recorded matches", requestID)
			return
		}
		slog.Error("failed to delete team", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete team", requestID)
		return
	}

	response.NoContent(w)
}
