package validation

import "strings"

// CreateTeamRequest mirrors the fields needed for create team validation.
type CreateTeamRequest struct {
	Name           string
	CoachName      string
	FoundationYear *int
}

// ValidateCreateTeamRequest validates the fields of a create team request.
func ValidateCreateTeamRequest(req CreateTeamRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	if strings.TrimSpace(req.CoachName) == "" {
		errs = append(errs, FieldError{Field: "coachName", Message: "coach name is required"})
	}

	if req.FoundationYear != nil && *req.FoundationYear <= 0 {
		errs = append(errs, FieldError{Field: "foundationYear", Message: "foundation year must be a positive number"})
	}

	return errs
}
