package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
)

func TestDefaultBalances(t *testing.T) {
	tests := []struct {
		name   string
		gender Gender
		typ    leave.Type
		want   int64
	}{
		{"casual grant", GenderMale, leave.TypeCasual, 12},
		{"sick grant", GenderFemale, leave.TypeSick, 10},
		{"earned grant", GenderOther, leave.TypeEarned, 15},
		{"bereavement grant", GenderMale, leave.TypeBereavement, 3},
		{"study grant", GenderFemale, leave.TypeStudy, 5},
		{"maternity for female", GenderFemale, leave.TypeMaternity, 90},
		{"no maternity for male", GenderMale, leave.TypeMaternity, 0},
		{"no maternity for other", GenderOther, leave.TypeMaternity, 0},
		{"paternity for male", GenderMale, leave.TypePaternity, 15},
		{"no paternity for female", GenderFemale, leave.TypePaternity, 0},
		{"comp off starts at zero", GenderMale, leave.TypeCompOff, 0},
		{"lwp has no stored balance", GenderFemale, leave.TypeWithoutPay, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := DefaultBalances(tt.gender)
			assert.True(t, b.Get(tt.typ).Equal(decimal.NewFromInt(tt.want)),
				"got %s, want %d", b.Get(tt.typ), tt.want)
		})
	}
}

func TestBalanceSheetSufficient(t *testing.T) {
	b := DefaultBalances(GenderMale)

	assert.True(t, b.Sufficient(leave.TypeCasual, decimal.NewFromInt(12)))
	assert.False(t, b.Sufficient(leave.TypeCasual, decimal.RequireFromString("12.5")))
	assert.True(t, b.Sufficient(leave.TypeCasual, decimal.RequireFromString("0.5")))
	assert.False(t, b.Sufficient(leave.TypeCompOff, decimal.RequireFromString("0.5")))

	// LWP always passes the sufficiency check.
	assert.True(t, b.Sufficient(leave.TypeWithoutPay, decimal.NewFromInt(30)))
}

func TestBalanceSheetToMap(t *testing.T) {
	m := DefaultBalances(GenderFemale).ToMap()

	assert.Len(t, m, 9)
	assert.Equal(t, "12", m["CL"])
	assert.Equal(t, "90", m["ML"])
	assert.Equal(t, "0", m["PL"])
	assert.Equal(t, "0", m["LWP"])
}
