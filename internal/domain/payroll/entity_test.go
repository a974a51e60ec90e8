package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayslipStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from PayslipStatus
		to   PayslipStatus
		want bool
	}{
		{PayslipStatusPending, PayslipStatusApproved, true},
		{PayslipStatusApproved, PayslipStatusReleased, true},

		// No skips, no back-transitions, released is terminal.
		{PayslipStatusPending, PayslipStatusReleased, false},
		{PayslipStatusPending, PayslipStatusPending, false},
		{PayslipStatusApproved, PayslipStatusPending, false},
		{PayslipStatusApproved, PayslipStatusApproved, false},
		{PayslipStatusReleased, PayslipStatusPending, false},
		{PayslipStatusReleased, PayslipStatusApproved, false},
		{PayslipStatusReleased, PayslipStatusReleased, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
