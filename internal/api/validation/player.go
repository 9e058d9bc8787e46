package validation

import "strings"

// PlayerRequest mirrors the fields needed for create and update player
// validation.
type PlayerRequest struct {
	Name         string
	Age          int
	Gender       string
	Position     string
	HeightCM     float64
	WeightKG     float64
	JerseyNumber int
}

// ValidatePlayerRequest validates the fields of a create or update player
// request.
func ValidatePlayerRequest(req PlayerRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Gender) == "" {
		errs = append(errs, FieldError{Field: "gender", Message: "gender is required"})
	}
	if strings.TrimSpace(req.Position) == "" {
		errs = append(errs, FieldError{Field: "position", Message: "position is required"})
	}
	if req.Age <= 0 {
		errs = append(errs, FieldError{Field: "age", Message: "age must be a positive number"})
	}
	if req.HeightCM <= 0 {
		errs = append(errs, FieldError{Field: "heightCm", Message: "height must be a positive number"})
	}
	if req.WeightKG <= 0 {
		errs = append(errs, FieldError{Field: "weightKg", Message: "weight must be a positive number"})
	}
	if req.JerseyNumber <= 0 {
		errs = append(errs, FieldError{Field: "jerseyNumber", Message: "jersey number must be a positive number"})
	}

	return errs
}
