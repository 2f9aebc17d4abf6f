package attendance

import (
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

type MarkEntry struct {
	LabourID    string `json:"labour_id"`
	WorkedDay   bool   `json:"worked_day"`
	WorkedNight bool   `json:"worked_night"`
}

type BulkMarkRequest struct {
	Date    string      `json:"date"`
	Entries []MarkEntry `json:"entries"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
	}
	for _, e := range r.Entries {
		if validator.IsEmpty(e.LabourID) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "labour_id is required on every entry"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ShiftState is the before/after snapshot recorded in the audit trail.
type ShiftState struct {
	Day   string `json:"day"`
	Night string `json:"night"`
}

type Change struct {
	LabourID   string     `json:"labour_id"`
	LabourName string     `json:"labour_name"`
	Before     ShiftState `json:"before"`
	After      ShiftState `json:"after"`
	Note       string     `json:"note"` // "created" or "updated"
}

type MarkResult struct {
	Date         string   `json:"date"`
	ChangedCount int      `json:"changed_count"`
	Changes      []Change `json:"changes"`
}

type RecordResponse struct {
	LabourID    string  `json:"labour_id"`
	LabourName  *string `json:"labour_name,omitempty"`
	Date        string  `json:"date"`
	WorkedDay   bool    `json:"worked_day"`
	WorkedNight bool    `json:"worked_night"`
	Note        *string `json:"note,omitempty"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		LabourID:    r.LabourID,
		LabourName:  r.LabourName,
		Date:        r.Date.Format("2006-01-02"),
		WorkedDay:   r.WorkedDay,
		WorkedNight: r.WorkedNight,
		Note:        r.Note,
	}
}
