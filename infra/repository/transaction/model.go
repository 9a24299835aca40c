package transaction

import (
	"time"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/shopspring/decimal"
)

// Transaction represents a ledger record in the database.
// transaction_type encoding: 0 = deposit, 1 = withdraw.
type Transaction struct {
	ID                int64 `gorm:"primaryKey"`
	TransactionType   int   `gorm:"not null;index"`
	ClientID          int64 `gorm:"not null;index"`
	BankID            *int64
	CardID            *int64
	TransactionAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	WithdrawCharges   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Remark            string          `gorm:"size:255"`
	CreatedAt         time.Time       `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// transactionRow carries the stored columns plus the names resolved through
// the client/bank/card joins.
type transactionRow struct {
	ID                int64
	TransactionType   int
	ClientID          int64
	ClientName        string
	BankID            *int64
	BankName          *string
	CardID            *int64
	CardName          *string
	TransactionAmount decimal.Decimal
	WithdrawCharges   decimal.Decimal
	Remark            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

func mapRowToDTO(row *transactionRow) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:                row.ID,
		TransactionType:   row.TransactionType,
		ClientID:          row.ClientID,
		ClientName:        row.ClientName,
		BankID:            row.BankID,
		BankName:          row.BankName,
		CardID:            row.CardID,
		CardName:          row.CardName,
		TransactionAmount: row.TransactionAmount,
		WithdrawCharges:   row.WithdrawCharges,
		Remark:            row.Remark,
		CreateDate:        row.CreatedAt.Format(dateLayout),
		CreateTime:        row.CreatedAt.Format(timeLayout),
		ModifyDate:        row.UpdatedAt.Format(dateLayout),
		ModifyTime:        row.UpdatedAt.Format(timeLayout),
	}
}
