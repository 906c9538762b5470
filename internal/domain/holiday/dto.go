package holiday

import (
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/validator"
)

type CreateHolidayDTO struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	IsRecurring bool   `json:"is_recurring"`
}

func (dto *CreateHolidayDTO) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(dto.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if validator.IsEmpty(dto.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if !validator.IsValidDate(dto.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(dto.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category is required"})
	} else if !validator.IsInSlice(dto.Category, []string{
		string(CategoryNational), string(CategoryRegional), string(CategoryOptional), string(CategoryCompany),
	}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be national, regional, optional, or company"})
	}

	return errs
}

func (dto *CreateHolidayDTO) ParsedDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dto.Date, time.UTC)
}
