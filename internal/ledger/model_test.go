package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"0.01", true},
		{"10.50", true},
		{"10.500", true},
		{"999999999999.99", true},
		{"0", false},
		{"-1", false},
		{"0.001", false},
		{"10.005", false},
		{"1000000000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidMoney(decimal.RequireFromString(tt.amount)))
		})
	}
}
