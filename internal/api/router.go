package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/PranavOaR/leaguehub/internal/api/handler"
	"github.com/PranavOaR/leaguehub/internal/api/middleware"
	"github.com/PranavOaR/leaguehub/internal/match"
	"github.com/PranavOaR/leaguehub/internal/player"
	"github.com/PranavOaR/leaguehub/internal/team"
	"github.com/PranavOaR/leaguehub/internal/tournament"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger    handler.DBPinger
	Version     string
	Teams       team.Repository
	Players     player.Repository
	Matches     match.Repository
	Tournaments tournament.Repository
	Recorder    handler.ResultRecorder
	Standings   handler.StandingsProvider
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	standingsHandler := handler.NewStandingsHandler(deps.Standings)
	r.Get("/leaderboard", standingsHandler.Leaderboard)

	teamHandler := handler.NewTeamHandler(deps.Teams)
	r.Route("/teams", func(r chi.Router) {
		r.Post("/", teamHandler.Create)
		r.Get("/", teamHandler.List)
		r.Delete("/{id}", teamHandler.Delete)
		r.Get("/{id}/win-percentage", standingsHandler.WinPercentage)
	})

	playerHandler := handler.NewPlayerHandler(deps.Players)
	r.Route("/players", func(r chi.Router) {
		r.Post("/", playerHandler.Create)
		r.Get("/", playerHandler.List)
		r.Put("/{id}", playerHandler.Update)
		r.Delete("/{id}", playerHandler.Delete)
	})

	matchHandler := handler.NewMatchHandler(deps.Matches, deps.Recorder)
	r.Route("/matches", func(r chi.Router) {
		r.Post("/", matchHandler.Create)
		r.Get("/", matchHandler.List)
		r.Post("/{id}/result", matchHandler.RecordResult)
	})

	tournamentHandler := handler.NewTournamentHandler(deps.Tournaments)
	r.Route("/tournaments", func(r chi.Router) {
		r.Post("/", tournamentHandler.Create)
		r.Get("/", tournamentHandler.List)
		r.Put("/{id}", tournamentHandler.Update)
		r.Delete("/{id}", tournamentHandler.Delete)
	})

	return r
}
