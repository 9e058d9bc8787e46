package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PranavOaR/leaguehub/internal/api/middleware"
	"github.com/PranavOaR/leaguehub/internal/api/response"
	"github.com/PranavOaR/leaguehub/internal/standings"
)

// StandingsProvider is the slice of the standings calculator the handler
// depends on.
type StandingsProvider interface {
	Leaderboard(ctx context.Context) ([]standings.Row, error)
	WinPercentage(ctx context.Context, teamID int64) (float64, error)
}

type leaderboardRow struct {
	TeamID        int64  `json:"teamId"`
	TeamName      string `json:"teamName"`
	MatchesPlayed int    `json:"matchesPlayed"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsFor      int    `json:"goalsFor"`
	GoalsAgainst  int    `json:"goalsAgainst"`
	TotalPoints   int    `json:"totalPoints"`
}

type winPercentageResponse struct {
	TeamID        int64   `json:"teamId"`
	WinPercentage float64 `json:"winPercentage"`
}

// StandingsHandler handles leaderboard and win-percentage endpoints.
type StandingsHandler struct {
	calc StandingsProvider
}

// NewStandingsHandler creates a new StandingsHandler.
func NewStandingsHandler(calc StandingsProvider) *StandingsHandler {
	return &StandingsHandler{calc: calc}
}

// Leaderboard handles GET /leaderboard.
func (h *StandingsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	board, err := h.calc.Leaderboard(r.Context())
	if err != nil {
		slog.Error("failed to compute leaderboard", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute leaderboard", requestID)
		return
	}

	items := make([]leaderboardRow, 0, len(board))
	for _, row := range board {
		items = append(items, leaderboardRow{
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			MatchesPlayed: row.MatchesPlayed,
			Wins:          row.Wins,
			Draws:         row.Draws,
			Losses:        row.Losses,
			GoalsFor:      row.GoalsFor,
			GoalsAgainst:  row.GoalsAgainst,
			TotalPoints:   row.TotalPoints,
		})
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// WinPercentage handles GET /teams/{id}/win-percentage.
func (h *StandingsHandler) WinPercentage(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	pct, err := h.calc.WinPercentage(r.Context(), id)
	if err != nil {
		if errors.Is(err, standings.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		slog.Error("failed to compute win percentage", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute win percentage", requestID)
		return
	}

	response.Success(w, http.StatusOK, winPercentageResponse{TeamID: id, WinPercentage: pct}, requestID)
}
