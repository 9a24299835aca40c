package dto

import "github.com/shopspring/decimal"

// ProfilerClientCreate is the payload for creating a profiler client.
type ProfilerClientCreate struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Contact *string `json:"contact" validate:"omitempty,min=7,max=15,numeric"`
}

// ProfilerClientUpdate is the payload for a full profiler client update.
type ProfilerClientUpdate struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Contact *string `json:"contact" validate:"omitempty,min=7,max=15,numeric"`
}

// ProfilerClientRead carries the derived profile count.
type ProfilerClientRead struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	Contact      *string `json:"contact,omitempty"`
	CreateDate   string  `json:"create_date"`
	CreateTime   string  `json:"create_time"`
	ModifyDate   string  `json:"modify_date"`
	ModifyTime   string  `json:"modify_time"`
	ProfileCount int64   `json:"profile_count"`
}

// ProfilerBankCreate is the payload for creating a profiler bank.
type ProfilerBankCreate struct {
	Name string `json:"name" validate:"required,max=120"`
}

// ProfilerBankUpdate is the payload for a full profiler bank update.
type ProfilerBankUpdate struct {
	Name string `json:"name" validate:"required,max=120"`
}

// ProfilerBankRead carries the derived profile count.
type ProfilerBankRead struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CreateDate   string `json:"create_date"`
	CreateTime   string `json:"create_time"`
	ModifyDate   string `json:"modify_date"`
	ModifyTime   string `json:"modify_time"`
	ProfileCount int64  `json:"profile_count"`
}

// ProfileCreate is the payload for creating a profiler profile.
type ProfileCreate struct {
	ClientID                int64           `json:"client_id" validate:"required,gt=0"`
	BankID                  int64           `json:"bank_id" validate:"required,gt=0"`
	CreditCardNumber        string          `json:"credit_card_number" validate:"required,numeric,min=12,max=19"`
	PrePlannedDepositAmount decimal.Decimal `json:"pre_planned_deposit_amount"`
	CarryForwardEnabled     bool            `json:"carry_forward_enabled"`
	Status                  string          `json:"status" validate:"omitempty,oneof=active done"`
}

// ProfileUpdate is the payload for a full profile update.
type ProfileUpdate struct {
	ClientID                int64           `json:"client_id" validate:"required,gt=0"`
	BankID                  int64           `json:"bank_id" validate:"required,gt=0"`
	CreditCardNumber        string          `json:"credit_card_number" validate:"required,numeric,min=12,max=19"`
	PrePlannedDepositAmount decimal.Decimal `json:"pre_planned_deposit_amount"`
	CarryForwardEnabled     bool            `json:"carry_forward_enabled"`
	Status                  string          `json:"status" validate:"required,oneof=active done"`
}

// ProfileRead is the profile projection with joined names and the derived
// transaction count used by the delete guard.
type ProfileRead struct {
	ID                      int64           `json:"id"`
	ClientID                int64           `json:"client_id"`
	ClientName              string          `json:"client_name"`
	BankID                  int64           `json:"bank_id"`
	BankName                string          `json:"bank_name"`
	CreditCardNumber        string          `json:"credit_card_number"`
	PrePlannedDepositAmount decimal.Decimal `json:"pre_planned_deposit_amount"`
	CarryForwardEnabled     bool            `json:"carry_forward_enabled"`
	Status                  string          `json:"status"`
	CreateDate              string          `json:"create_date"`
	CreateTime              string          `json:"create_time"`
	ModifyDate              string          `json:"modify_date"`
	ModifyTime              string          `json:"modify_time"`
	TransactionCount        int64           `json:"transaction_count"`
}

// ProfilerTransactionCreate is the payload for a profiler ledger entry.
// WithdrawChargesPercentage is the only charge input accepted; the charge
// amount itself is always computed server-side.
type ProfilerTransactionCreate struct {
	ProfileID                 int64            `json:"profile_id" validate:"required,gt=0"`
	TransactionType           string           `json:"transaction_type" validate:"required,oneof=deposit withdraw"`
	Amount                    decimal.Decimal  `json:"amount"`
	WithdrawChargesPercentage *decimal.Decimal `json:"withdraw_charges_percentage"`
}

// ProfilerTransactionUpdate is the payload for a full profiler entry update.
type ProfilerTransactionUpdate struct {
	ProfileID                 int64            `json:"profile_id" validate:"required,gt=0"`
	TransactionType           string           `json:"transaction_type" validate:"required,oneof=deposit withdraw"`
	Amount                    decimal.Decimal  `json:"amount"`
	WithdrawChargesPercentage *decimal.Decimal `json:"withdraw_charges_percentage"`
}

// ProfilerTransactionRead is the profiler ledger projection.
type ProfilerTransactionRead struct {
	ID                        int64            `json:"id"`
	ProfileID                 int64            `json:"profile_id"`
	ClientName                string           `json:"client_name"`
	CreditCardNumber          string           `json:"credit_card_number"`
	TransactionType           string           `json:"transaction_type"`
	Amount                    decimal.Decimal  `json:"amount"`
	WithdrawChargesPercentage *decimal.Decimal `json:"withdraw_charges_percentage,omitempty"`
	WithdrawChargesAmount     *decimal.Decimal `json:"withdraw_charges_amount,omitempty"`
	CreateDate                string           `json:"create_date"`
	CreateTime                string           `json:"create_time"`
	ModifyDate                string           `json:"modify_date"`
	ModifyTime                string           `json:"modify_time"`
}

// ProfileSummary aggregates one profile's deposit/withdraw accounting.
type ProfileSummary struct {
	ProfileID        int64           `json:"profile_id"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	TotalCharges     decimal.Decimal `json:"total_charges"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transaction_count"`
}
