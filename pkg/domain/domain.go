// Package domain holds the business vocabulary shared by services,
// repositories and handlers: transaction type encodings, profile statuses
// and the withdraw charge calculation.
package domain

import "github.com/shopspring/decimal"

// TransactionType is the ledger transaction encoding: 0 = deposit, 1 = withdraw.
type TransactionType int

const (
	TransactionTypeDeposit  TransactionType = 0
	TransactionTypeWithdraw TransactionType = 1
)

// Valid reports whether t is one of the documented encodings.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdraw
}

// IsDeposit reports whether t is a deposit.
func (t TransactionType) IsDeposit() bool { return t == TransactionTypeDeposit }

func (t TransactionType) String() string {
	if t == TransactionTypeDeposit {
		return "deposit"
	}
	return "withdraw"
}

// ProfileStatus is the lifecycle state of a profiler profile.
type ProfileStatus string

const (
	ProfileStatusActive ProfileStatus = "active"
	ProfileStatusDone   ProfileStatus = "done"
)

func (s ProfileStatus) Valid() bool {
	return s == ProfileStatusActive || s == ProfileStatusDone
}

// ProfilerTransactionType is the profiler ledger's string-encoded type.
type ProfilerTransactionType string

const (
	ProfilerDeposit  ProfilerTransactionType = "deposit"
	ProfilerWithdraw ProfilerTransactionType = "withdraw"
)

func (t ProfilerTransactionType) Valid() bool {
	return t == ProfilerDeposit || t == ProfilerWithdraw
}

var hundred = decimal.NewFromInt(100)

// WithdrawCharge computes amount x percentage / 100, rounded to 2 decimals.
// The result is always computed server-side and never trusted from a caller.
func WithdrawCharge(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(hundred).Round(2)
}
