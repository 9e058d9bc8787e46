package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PranavOaR/leaguehub/internal/api/middleware"
	"github.com/PranavOaR/leaguehub/internal/api/response"
	"github.com/PranavOaR/leaguehub/internal/api/validation"
	"github.com/PranavOaR/leaguehub/internal/match"
	"github.com/PranavOaR/leaguehub/internal/result"
	"github.com/PranavOaR/leaguehub/internal/tournament"
)

type createMatchRequest struct {
	Team1ID      int64  `json:"team1Id"`
	Team2ID      int64  `json:"team2Id"`
	Date         string `json:"date"`
	Venue        string `json:"venue"`
	TournamentID *int64 `json:"tournamentId"`
}

type recordResultRequest struct {
	Team1ID int64 `json:"team1Id"`
	Team2ID int64 `json:"team2Id"`
	Goals1  int   `json:"goals1"`
	Goals2  int   `json:"goals2"`
}

type matchResponse struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournamentId"`
	Team1ID      int64  `json:"team1Id"`
	Team2ID      int64  `json:"team2Id"`
	Team1Name    string `json:"team1Name,omitempty"`
	Team2Name    string `json:"team2Name,omitempty"`
	Date         string `json:"date"`
	Venue        string `json:"venue"`
	Status       string `json:"status"`
	Team1Goals   *int   `json:"team1Goals"`
	Team2Goals   *int   `json:"team2Goals"`
}

func toMatchResponse(m *match.Match) matchResponse {
	return matchResponse{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		Team1ID:      m.Team1ID,
		Team2ID:      m.Team2ID,
		Date:         m.Date.UTC().Format(validation.DateLayout),
		Venue:        m.Venue,
		Status:       string(m.Status),
		Team1Goals:   m.Team1Goals,
		Team2Goals:   m.Team2Goals,
	}
}

// ResultRecorder is the slice of the result recorder the handler depends on.
type ResultRecorder interface {
	Record(ctx context.Context, matchID, team1ID int64, goals1 int, team2ID int64, goals2 int) error
}

// MatchHandler handles match endpoints, including result recording.
type MatchHandler struct {
	repo     match.Repository
	recorder ResultRecorder
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(repo match.Repository, recorder ResultRecorder) *MatchHandler {
	return &MatchHandler{repo: repo, recorder: recorder}
}

// Create handles POST /matches.
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateMatchRequest(validation.CreateMatchRequest{
		Team1ID: req.Team1ID,
		Team2ID: req.Team2ID,
		Date:    req.Date,
		Venue:   req.Venue,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", "date must be in YYYY-MM-DD format", requestID)
		return
	}

	tournamentID := tournament.DefaultID
	if req.TournamentID != nil {
		tournamentID = *req.TournamentID
	}

	m := &match.Match{
		TournamentID: tournamentID,
		Team1ID:      req.Team1ID,
		Team2ID:      req.Team2ID,
		Date:         date,
		Venue:        req.Venue,
	}

	if err := h.repo.Create(r.Context(), m); err != nil {
		switch {
		case errors.Is(err, match.ErrSameTeams):
			response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", "A match requires two different teams", requestID)
		case errors.Is(err, match.ErrTeamNotFound):
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
		case errors.Is(err, match.ErrTournamentNotFound):
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Tournament not found", requestID)
		default:
			slog.Error("failed to create match", "error", err)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create match", requestID)
		}
		return
	}

	response.Success(w, http.StatusCreated, toMatchResponse(m), requestID)
}

// List handles GET /matches.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	matches, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list matches", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list matches", requestID)
		return
	}

	items := make([]matchResponse, 0, len(matches))
	for i := range matches {
		resp := toMatchResponse(&matches[i].Match)
		resp.Team1Name = matches[i].Team1Name
		resp.Team2Name = matches[i].Team2Name
		items = append(items, resp)
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// RecordResult handles POST /matches/{id}/result.
func (h *MatchHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req recordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateRecordResultRequest(validation.RecordResultRequest{
		Team1ID: req.Team1ID,
		Team2ID: req.Team2ID,
		Goals1:  req.Goals1,
		Goals2:  req.Goals2,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	err := h.recorder.Record(r.Context(), id, req.Team1ID, req.Goals1, req.Team2ID, req.Goals2)
	if err != nil {
		switch {
		case errors.Is(err, result.ErrMatchNotFound):
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Match not found", requestID)
		case errors.Is(err, result.ErrMatchCompleted):
			response.Err(w, http.StatusConflict, "RESULT_RECORDED", "Match result has already been recorded", requestID)
		case errors.Is(err, result.ErrTeamMismatch):
			response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", "Team ids do not match the scheduled match", requestID)
		case errors.Is(err, result.ErrNegativeGoals):
			response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", "Goals must not be negative", requestID)
		case errors.Is(err, result.ErrTeamNotFound):
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
		default:
			slog.Error("failed to record match result", "error", err, "id", id)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record match result", requestID)
		}
		return
	}

	m, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to fetch recorded match", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch recorded match", requestID)
		return
	}

	response.Success(w, http.StatusOK, toMatchResponse(m), requestID)
}
