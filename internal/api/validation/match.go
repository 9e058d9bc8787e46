package validation

import "strings"

// CreateMatchRequest mirrors the fields needed for create match validation.
type CreateMatchRequest struct {
	Team1ID int64
	Team2ID int64
	Date    string
	Venue   string
}

// ValidateCreateMatchRequest validates the fields of a create match request.
func ValidateCreateMatchRequest(req CreateMatchRequest) []FieldError {
	var errs []FieldError

	if req.Team1ID <= 0 {
		errs = append(errs, FieldError{Field: "team1Id", Message: "team1Id must be a positive number"})
	}
	if req.Team2ID <= 0 {
		errs = append(errs, FieldError{Field: "team2Id", Message: "team2Id must be a positive number"})
	}
	if req.Team1ID > 0 && req.Team1ID == req.Team2ID {
		errs = append(errs, FieldError{Field: "team2Id", Message: "a match requires two different teams"})
	}
	if !validDate(req.Date) {
		errs = append(errs, FieldError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if strings.TrimSpace(req.Venue) == "" {
		errs = append(errs, FieldError{Field: "venue", Message: "venue is required"})
	}

	return errs
}

// RecordResultRequest mirrors the fields needed for record result validation.
type RecordResultRequest struct {
	Team1ID int64
	Team2ID int64
	Goals1  int
	Goals2  int
}

// ValidateRecordResultRequest validates the fields of a record result request.
func ValidateRecordResultRequest(req RecordResultRequest) []FieldError {
	var errs []FieldError

	if req.Team1ID <= 0 {
		errs = append(errs, FieldError{Field: "team1Id", Message: "team1Id must be a positive number"})
	}
	if req.Team2ID <= 0 {
		errs = append(errs, FieldError{Field: "team2Id", Message: "team2Id must be a positive number"})
	}
	if req.Goals1 < 0 {
		errs = append(errs, FieldError{Field: "goals1", Message: "goals1 must not be negative"})
	}
	if req.Goals2 < 0 {
		errs = append(errs, FieldError{Field: "goals2", Message: "goals2 must not be negative"})
	}

	return errs
}
