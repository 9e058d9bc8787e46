package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PranavOaR/leaguehub/internal/api/middleware"
	"github.com/PranavOaR/leaguehub/internal/api/response"
	"github.com/PranavOaR/leaguehub/internal/api/validation"
	"github.com/PranavOaR/leaguehub/internal/player"
)

type playerRequest struct {
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Position     string  `json:"position"`
	HeightCM     float64 `json:"heightCm"`
	WeightKG     float64 `json:"weightKg"`
	JerseyNumber int     `json:"jerseyNumber"`
	TeamID       *int64  `json:"teamId"`
}

type playerResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Position     string  `json:"position"`
	HeightCM     float64 `json:"heightCm"`
	WeightKG     float64 `json:"weightKg"`
	JerseyNumber int     `json:"jerseyNumber"`
	TeamID       *int64  `json:"teamId"`
	TeamName     *string `json:"teamName,omitempty"`
}

func toPlayerResponse(p *player.Player) playerResponse {
	return playerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Age:          p.Age,
		Gender:       p.Gender,
		Position:     p.Position,
		HeightCM:     p.HeightCM,
		WeightKG:     p.WeightKG,
		JerseyNumber: p.JerseyNumber,
		TeamID:       p.TeamID,
	}
}

// PlayerHandler handles player CRUD endpoints.
type PlayerHandler struct {
	repo player.Repository
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(repo player.Repository) *PlayerHandler {
	return &PlayerHandler{repo: repo}
}

func (h *PlayerHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string) (*playerRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return nil, false
	}

	fieldErrors := validation.ValidatePlayerRequest(validation.PlayerRequest{
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		Position:     req.Position,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		JerseyNumber: req.JerseyNumber,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return nil, false
	}

	return &req, true
}

// Create handles POST /players.
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	req, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	p := &player.Player{
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		Position:     req.Position,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		JerseyNumber: req.JerseyNumber,
		TeamID:       req.TeamID,
	}

	if err := h.repo.Create(r.Context(), p); err != nil {
		if errors.Is(err, player.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		slog.Error("failed to create player", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create player", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toPlayerResponse(p), requestID)
}

// List handles GET /players.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	players, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list players", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list players", requestID)
		return
	}

	items := make([]playerResponse, 0, len(players))
	for i := range players {
		resp := toPlayerResponse(&players[i].Player)
		resp.TeamName = players[i].TeamName
		items = append(items, resp)
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// Update handles PUT /players/{id}.
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	req, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	p := &player.Player{
		ID:           id,
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		Position:     req.Position,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		JerseyNumber: req.JerseyNumber,
		TeamID:       req.TeamID,
	}

	if err := h.repo.Update(r.Context(), p); err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Player not found", requestID)
			return
		}
		if errors.Is(err, player.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		slog.Error("failed to update player", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update player", requestID)
		return
	}

	response.Success(w, http.StatusOK, toPlayerResponse(p), requestID)
}

// Delete handles DELETE /players/{id}.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Player not found", requestID)
			return
		}
		slog.Error("failed to delete player", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete player", requestID)
		return
	}

	response.NoContent(w)
}
