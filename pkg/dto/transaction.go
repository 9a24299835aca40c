package dto

import "github.com/shopspring/decimal"

// TransactionCreate is the payload for creating a ledger transaction.
// TransactionType is a pointer so the deposit encoding (0) survives the
// required check.
type TransactionCreate struct {
	TransactionType   *int            `json:"transaction_type" validate:"required,oneof=0 1"`
	ClientID          int64           `json:"client_id" validate:"required,gt=0"`
	BankID            *int64          `json:"bank_id" validate:"omitempty,gt=0"`
	CardID            *int64          `json:"card_id" validate:"omitempty,gt=0"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	WithdrawCharges   decimal.Decimal `json:"withdraw_charges"`
	Remark            string          `json:"remark" validate:"max=255"`
}

// TransactionUpdate is the payload for a full transaction update.
type TransactionUpdate struct {
	TransactionType   *int            `json:"transaction_type" validate:"required,oneof=0 1"`
	ClientID          int64           `json:"client_id" validate:"required,gt=0"`
	BankID            *int64          `json:"bank_id" validate:"omitempty,gt=0"`
	CardID            *int64          `json:"card_id" validate:"omitempty,gt=0"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	WithdrawCharges   decimal.Decimal `json:"withdraw_charges"`
	Remark            string          `json:"remark" validate:"max=255"`
}

// TransactionRead is the ledger projection with the joined names resolved.
type TransactionRead struct {
	ID                int64           `json:"id"`
	TransactionType   int             `json:"transaction_type"`
	ClientID          int64           `json:"client_id"`
	ClientName        string          `json:"client_name"`
	BankID            *int64          `json:"bank_id,omitempty"`
	BankName          *string         `json:"bank_name,omitempty"`
	CardID            *int64          `json:"card_id,omitempty"`
	CardName          *string         `json:"card_name,omitempty"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	WithdrawCharges   decimal.Decimal `json:"withdraw_charges"`
	Remark            string          `json:"remark"`
	CreateDate        string          `json:"create_date"`
	CreateTime        string          `json:"create_time"`
	ModifyDate        string          `json:"modify_date"`
	ModifyTime        string          `json:"modify_time"`
}
