package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PranavOaR/leaguehub/internal/api/validation"
)

func fields(errs []validation.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateCreateTeamRequest(t *testing.T) {
	t.Parallel()

	year := 1886
	badYear := -1

	tests := []struct {
		name string
		req  validation.CreateTeamRequest
		want []string
	}{
		{
			name: "valid",
			req:  validation.CreateTeamRequest{Name: "Arsenal", CoachName: "Mikel Arteta", FoundationYear: &year},
		},
		{
			name: "valid without foundation year",
			req:  validation.CreateTeamRequest{Name: "Arsenal", CoachName: "Mikel Arteta"},
		},
		{
			name: "missing everything",
			req:  validation.CreateTeamRequest{},
			want: []string{"name", "coachName"},
		},
		{
			name: "whitespace name",
			req:  validation.CreateTeamRequest{Name: "   ", CoachName: "Coach"},
			want: []string{"name"},
		},
		{
			name: "negative foundation year",
			req:  validation.CreateTeamRequest{Name: "Arsenal", CoachName: "Coach", FoundationYear: &badYear},
			want: []string{"foundationYear"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := validation.ValidateCreateTeamRequest(tt.req)
			assert.ElementsMatch(t, tt.want, fields(errs))
		})
	}
}

func TestValidatePlayerRequest(t *testing.T) {
	t.Parallel()

	valid := validation.PlayerRequest{
		Name: "Bukayo Saka", Age: 23, Gender: "Male", Position: "Winger",
		HeightCM: 178, WeightKG: 72, JerseyNumber: 7,
	}

	assert.Empty(t, validation.ValidatePlayerRequest(valid))

	bad := valid
	bad.Age = 0
	bad.JerseyNumber = -3
	errs := validation.ValidatePlayerRequest(bad)
	assert.ElementsMatch(t, []string{"age", "jerseyNumber"}, fields(errs))
}

func TestValidateCreateMatchRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  validation.CreateMatchRequest
		want []string
	}{
		{
			name: "valid",
			req:  validation.CreateMatchRequest{Team1ID: 1, Team2ID: 2, Date: "2025-02-01", Venue: "Town Park"},
		},
		{
			name: "same team on both sides",
			req:  validation.CreateMatchRequest{Team1ID: 1, Team2ID: 1, Date: "2025-02-01", Venue: "Town Park"},
			want: []string{"team2Id"},
		},
		{
			name: "malformed date",
			req:  validation.CreateMatchRequest{Team1ID: 1, Team2ID: 2, Date: "01/02/2025", Venue: "Town Park"},
			want: []string{"date"},
		},
		{
			name: "missing venue and teams",
			req:  validation.CreateMatchRequest{Date: "2025-02-01"},
			want: []string{"team1Id", "team2Id", "venue"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := validation.ValidateCreateMatchRequest(tt.req)
			assert.ElementsMatch(t, tt.want, fields(errs))
		})
	}
}

func TestValidateRecordResultRequest(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validation.ValidateRecordResultRequest(validation.RecordResultRequest{
		Team1ID: 1, Team2ID: 2, Goals1: 0, Goals2: 0,
	}))

	errs := validation.ValidateRecordResultRequest(validation.RecordResultRequest{
		Team1ID: 1, Team2ID: 2, Goals1: -1, Goals2: -2,
	})
	assert.ElementsMatch(t, []string{"goals1", "goals2"}, fields(errs))
}

func TestValidateTournamentRequest(t *testing.T) {
	t.Parallel()

	valid := validation.TournamentRequest{
		Name: "FA Cup", Type: "Knockout", HostCountry: "England",
		TeamCount: 8, MatchCount: 7, StartDate: "2025-01-10", EndDate: "2025-03-22",
	}

	assert.Empty(t, validation.ValidateTournamentRequest(valid))

	bad := valid
	bad.Type = "Friendly"
	bad.EndDate = "soon"
	errs := validation.ValidateTournamentRequest(bad)
	assert.ElementsMatch(t, []string{"type", "endDate"}, fields(errs))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := validation.ParseDate("2025-02-01")
	assert.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = validation.ParseDate("2025-2-1")
	assert.Error(t, err)
}
