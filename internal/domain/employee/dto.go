package employee

import (
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/validator"
)

type RegisterDTO struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Gender      string  `json:"gender"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

func (dto *RegisterDTO) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(dto.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if validator.IsEmpty(dto.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(dto.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}

	if validator.IsEmpty(dto.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(dto.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}

	if validator.IsEmpty(dto.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	} else if !validator.IsInSlice(dto.Role, []string{string(RoleEmployee), string(RoleManager), string(RoleHR)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, manager, or hr"})
	}

	if validator.IsEmpty(dto.Gender) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender is required"})
	} else if !validator.IsInSlice(dto.Gender, []string{string(GenderMale), string(GenderFemale), string(GenderOther)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be male, female, or other"})
	}

	return errs
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto *LoginDTO) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(dto.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if validator.IsEmpty(dto.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	return errs
}

type ForgotPasswordDTO struct {
	Email string `json:"email"`
}

func (dto *ForgotPasswordDTO) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(dto.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(dto.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	return errs
}

type ResetPasswordDTO struct {
	Email       string `json:"email"`
	OTPCode     string `json:"otp_code"`
	NewPassword string `json:"new_password"`
}

func (dto *ResetPasswordDTO) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(dto.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if validator.IsEmpty(dto.OTPCode) {
		errs = append(errs, validator.ValidationError{Field: "otp_code", Message: "otp_code is required"})
	} else if !validator.IsValidOTPCode(dto.OTPCode) {
		errs = append(errs, validator.ValidationError{Field: "otp_code", Message: "otp_code must be a 6-digit number"})
	}
	if validator.IsEmpty(dto.NewPassword) {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password is required"})
	} else if len(dto.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password must be at least 8 characters"})
	}
	return errs
}

type UpdateSalaryDTO struct {
	MonthlyBase int64 `json:"monthly_base"`
}

func (dto *UpdateSalaryDTO) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if dto.MonthlyBase <= 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_base", Message: "monthly_base must be positive"})
	}
	return errs
}

type ProfileResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Gender      string            `json:"gender"`
	Department  *string           `json:"department,omitempty"`
	Designation *string           `json:"designation,omitempty"`
	IsActive    bool              `json:"is_active"`
	JoinedAt    string            `json:"joined_at"`
	Balances    map[string]string `json:"balances"`
}

func (e *Employee) ToProfileResponse() ProfileResponse {
	return ProfileResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Role:        string(e.Role),
		Gender:      string(e.Gender),
		Department:  e.Department,
		Designation: e.Designation,
		IsActive:    e.IsActive,
		JoinedAt:    e.JoinedAt.Format("2006-01-02"),
		Balances:    e.Balances.ToMap(),
	}
}
