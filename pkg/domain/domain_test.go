package domain_test

import (
	"testing"

	"github.com/finops/backoffice/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWithdrawCharge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		amount     string
		percentage string
		want       string
	}{
		{"thousand at five percent", "1000", "5", "50"},
		{"rounds to two decimals", "333.33", "3", "10"},
		{"fractional percentage", "1000", "2.5", "25"},
		{"rounds half up", "101", "2.5", "2.53"},
		{"zero percentage", "1000", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			amount := decimal.RequireFromString(tt.amount)
			pct := decimal.RequireFromString(tt.percentage)
			want := decimal.RequireFromString(tt.want)
			got := domain.WithdrawCharge(amount, pct)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestTransactionTypeEncoding(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.TransactionTypeDeposit.IsDeposit())
	assert.False(t, domain.TransactionTypeWithdraw.IsDeposit())
	assert.True(t, domain.TransactionType(0).Valid())
	assert.True(t, domain.TransactionType(1).Valid())
	assert.False(t, domain.TransactionType(2).Valid())
	assert.Equal(t, "deposit", domain.TransactionTypeDeposit.String())
	assert.Equal(t, "withdraw", domain.TransactionTypeWithdraw.String())
}

func TestProfileStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.ProfileStatusActive.Valid())
	assert.True(t, domain.ProfileStatusDone.Valid())
	assert.False(t, domain.ProfileStatus("archived").Valid())
}
