package standings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PranavOaR/leaguehub/internal/standings"
)

func TestPercentage_NoMatches(t *testing.T) {
	assert.Equal(t, 0.0, standings.Percentage(0, 0), "must not divide by zero")
}

func TestPercentage_AllWins(t *testing.T) {
	assert.Equal(t, 100.0, standings.Percentage(4, 4))
}

func TestPercentage_Partial(t *testing.T) {
	assert.InDelta(t, 33.333, standings.Percentage(1, 3), 0.001)
	assert.Equal(t, 50.0, standings.Percentage(2, 4))
	assert.Equal(t, 0.0, standings.Percentage(0, 5))
}
