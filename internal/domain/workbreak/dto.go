package workbreak

import (
	"github.com/attendly/worktime-backend-go/internal/pkg/validator"
)

type OpenBreakRequest struct {
	WorkDayRecordID string `json:"workday_id"`
}

func (r *OpenBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkDayRecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_id",
			Message: "workday_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakResponse struct {
	ID              string  `json:"id"`
	WorkDayRecordID string  `json:"workday_id"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time"`
	Minutes         int     `json:"minutes"`
}
