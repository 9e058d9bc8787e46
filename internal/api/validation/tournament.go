package validation

import "strings"

// TournamentRequest mirrors the fields needed for create and update
// tournament validation.
type TournamentRequest struct {
	Name        string
	Type        string
	HostCountry string
	TeamCount   int
	MatchCount  int
	StartDate   string
	EndDate     string
}

// ValidateTournamentRequest validates the fields of a create or update
// tournament request.
func ValidateTournamentRequest(req TournamentRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if req.Type != "League" && req.Type != "Knockout" {
		errs = append(errs, FieldError{Field: "type", Message: "type must be \"League\" or \"Knockout\""})
	}
	if strings.TrimSpace(req.HostCountry) == "" {
		errs = append(errs, FieldError{Field: "hostCountry", Message: "host country is required"})
	}
	if req.TeamCount <= 0 {
		errs = append(errs, FieldError{Field: "teamCount", Message: "team count must be a positive number"})
	}
	if req.MatchCount <= 0 {
		errs = append(errs, FieldError{Field: "matchCount", Message: "match count must be a positive number"})
	}
	if !validDate(req.StartDate) {
		errs = append(errs, FieldError{Field: "startDate", Message: "start date must be in YYYY-MM-DD format"})
	}
	if !validDate(req.EndDate) {
		errs = append(errs, FieldError{Field: "endDate", Message: "end date must be in YYYY-MM-DD format"})
	}

	return errs
}
