package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"sigs.k8s.io/yaml"

	"github.com/PranavOaR/leaguehub/internal/config"
	"github.com/PranavOaR/leaguehub/internal/database"
	"github.com/PranavOaR/leaguehub/internal/match"
	"github.com/PranavOaR/leaguehub/internal/player"
	"github.com/PranavOaR/leaguehub/internal/team"
	"github.com/PranavOaR/leaguehub/internal/tournament"
)

// fixture is the YAML shape of a seed file.
type fixture struct {
	Tournaments []struct {
		Name        string `json:"name"`
		Type        string `json:"type"`
		HostCountry string `json:"hostCountry"`
		TeamCount   int    `json:"teamCount"`
		MatchCount  int    `json:"matchCount"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
	} `json:"tournaments"`
	Teams []struct {
		Name           string `json:"name"`
		CoachName      string `json:"coachName"`
		FoundationYear *int   `json:"foundationYear"`
	} `json:"teams"`
	Players []struct {
		Name         string  `json:"name"`
		Age          int     `json:"age"`
		Gender       string  `json:"gender"`
		Position     string  `json:"position"`
		HeightCM     float64 `json:"heightCm"`
		WeightKG     float64 `json:"weightKg"`
		JerseyNumber int     `json:"jerseyNumber"`
		Team         string  `json:"team"`
	} `json:"players"`
	Matches []struct {
		Team1 string `json:"team1"`
		Team2 string `json:"team2"`
		Date  string `json:"date"`
		Venue string `json:"venue"`
	} `json:"matches"`
}

func main() {
	file := flag.String("file", "cmd/seed/league.yaml", "path to the seed fixture")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		slog.Error("failed to read seed fixture", "error", err, "file", *file)
		os.Exit(1)
	}

	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		slog.Error("failed to parse seed fixture", "error", err, "file", *file)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBPoolSize)
	if err != nil {
		slog.Error("cannot reach the league database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db.Pool()); err != nil {
		slog.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	if err := seed(ctx, db, &fx); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding complete",
		"tournaments", len(fx.Tournaments),
		"teams", len(fx.Teams),
		"players", len(fx.Players),
		"matches", len(fx.Matches))
}

func seed(ctx context.Context, db *database.DB, fx *fixture) error {
	tournaments := tournament.NewRepository(db.Pool())
	teams := team.NewRepository(db.Pool())
	players := player.NewRepository(db.Pool())
	matches := match.NewRepository(db.Pool())

	for _, t := range fx.Tournaments {
		start, err := parseDate(t.StartDate)
		if err != nil {
			return err
		}
		end, err := parseDate(t.EndDate)
		if err != nil {
			return err
		}
		err = tournaments.Create(ctx, &tournament.Tournament{
			Name:        t.Name,
			Type:        t.Type,
			HostCountry: t.HostCountry,
			TeamCount:   t.TeamCount,
			MatchCount:  t.MatchCount,
			StartDate:   start,
			EndDate:     end,
		})
		if err != nil {
			return err
		}
	}

	teamIDs := make(map[string]int64)
	for _, t := range fx.Teams {
		rec := &team.Team{
			Name:           t.Name,
			CoachName:      t.CoachName,
			FoundationYear: t.FoundationYear,
			TournamentID:   tournament.DefaultID,
		}
		if err := teams.Create(ctx, rec); err != nil {
			return err
		}
		teamIDs[t.Name] = rec.ID
	}

	for _, p := range fx.Players {
		var teamID *int64
		if id, ok := teamIDs[p.Team]; ok {
			teamID = &id
		}
		err := players.Create(ctx, &player.Player{
			Name:         p.Name,
			Age:          p.Age,
			Gender:       p.Gender,
			Position:     p.Position,
			HeightCM:     p.HeightCM,
			WeightKG:     p.WeightKG,
			JerseyNumber: p.JerseyNumber,
			TeamID:       teamID,
		})
		if err != nil {
			return err
		}
	}

	for _, m := range fx.Matches {
		date, err := parseDate(m.Date)
		if err != nil {
			return err
		}
		err = matches.Create(ctx, &match.Match{
			TournamentID: tournament.DefaultID,
			Team1ID:      teamIDs[m.Team1],
			Team2ID:      teamIDs[m.Team2],
			Date:         date,
			Venue:        m.Venue,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
