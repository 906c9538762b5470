package employee

import (
	"time"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Employee entity. Authentication fields live here as well: the system has a
// single account type and no separate user record.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Gender       Gender
	Department   *string
	Designation  *string
	IsActive     bool
	JoinedAt     time.Time
	Salary       SalaryProfile
	Balances     BalanceSheet
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SalaryProfile holds the monthly base used by salary statements.
type SalaryProfile struct {
	MonthlyBase int64
}

// CanReview reports whether the role may approve or reject leave requests.
func (r Role) CanReview() bool {
	return r == RoleManager || r == RoleHR
}
