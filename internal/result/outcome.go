package result

// Delta is the per-team aggregate increment produced by one recorded result.
type Delta struct {
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// Outcome computes the aggregate increments for both teams from a final
// score, using standard 3-1-0 scoring. Each team additionally gains one
// played match, which the caller applies alongside the delta.
func Outcome(goals1, goals2 int) (d1, d2 Delta) {
	d1 = Delta{GoalsFor: goals1, GoalsAgainst: goals2}
	d2 = Delta{GoalsFor: goals2, GoalsAgainst: goals1}

	switch {
	case goals1 > goals2:
		d1.Wins, d1.Points = 1, 3
		d2.Losses = 1
	case goals1 < goals2:
		d2.Wins, d2.Points = 1, 3
		d1.Losses = 1
	default:
		d1.Draws, d1.Points = 1, 1
		d2.Draws, d2.Points = 1, 1
	}

	return d1, d2
}
