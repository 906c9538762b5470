package employee

import (
	"github.com/shopspring/decimal"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
)

// BalanceSheet tracks remaining days per leave type. LWP has no stored
// balance: its column stays at zero and usage is read from approved request
// records instead.
type BalanceSheet struct {
	Casual      decimal.Decimal
	Sick        decimal.Decimal
	Earned      decimal.Decimal
	Maternity   decimal.Decimal
	Paternity   decimal.Decimal
	CompOff     decimal.Decimal
	WithoutPay  decimal.Decimal
	Bereavement decimal.Decimal
	Study       decimal.Decimal
}

// DefaultBalances returns the annual grants applied at registration.
// Maternity and paternity grants are gated on the recorded gender.
func DefaultBalances(gender Gender) BalanceSheet {
	b := BalanceSheet{
		Casual:      decimal.NewFromInt(12),
		Sick:        decimal.NewFromInt(10),
		Earned:      decimal.NewFromInt(15),
		Bereavement: decimal.NewFromInt(3),
		Study:       decimal.NewFromInt(5),
	}
	switch gender {
	case GenderFemale:
		b.Maternity = decimal.NewFromInt(90)
	case GenderMale:
		b.Paternity = decimal.NewFromInt(15)
	}
	return b
}

// Get returns the remaining balance for a leave type.
func (b BalanceSheet) Get(t leave.Type) decimal.Decimal {
	switch t {
	case leave.TypeCasual:
		return b.Casual
	case leave.TypeSick:
		return b.Sick
	case leave.TypeEarned:
		return b.Earned
	case leave.TypeMaternity:
		return b.Maternity
	case leave.TypePaternity:
		return b.Paternity
	case leave.TypeCompOff:
		return b.CompOff
	case leave.TypeWithoutPay:
		return b.WithoutPay
	case leave.TypeBereavement:
		return b.Bereavement
	case leave.TypeStudy:
		return b.Study
	}
	return decimal.Zero
}

// Sufficient reports whether a debit of amount against type t would succeed.
// LWP requests always pass: they carry no stored balance.
func (b BalanceSheet) Sufficient(t leave.Type, amount decimal.Decimal) bool {
	if t.Unbounded() {
		return true
	}
	return b.Get(t).GreaterThanOrEqual(amount)
}

// ToMap renders the sheet keyed by leave-type code.
func (b BalanceSheet) ToMap() map[string]string {
	m := make(map[string]string, len(leave.AllTypes()))
	for _, t := range leave.AllTypes() {
		m[string(t)] = b.Get(t).String()
	}
	return m
}
