package standings

// Row is one leaderboard entry: a team's aggregate record.
type Row struct {
	TeamID        int64
	TeamName      string
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
	TotalPoints   int
}
