// Package profiler implements the GORM-backed repositories for the profiler
// subsystem.
package profiler

import (
	"time"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/shopspring/decimal"
)

// Client represents a profiler client record.
type Client struct {
	ID        int64   `gorm:"primaryKey"`
	Name      string  `gorm:"size:120;not null"`
	Email     *string `gorm:"size:255"`
	Contact   *string `gorm:"size:15"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the profiler Client model.
func (Client) TableName() string {
	return "profiler_clients"
}

// Bank represents a profiler bank record.
type Bank struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the profiler Bank model.
func (Bank) TableName() string {
	return "profiler_banks"
}

// Profile represents a profiler profile record.
type Profile struct {
	ID                      int64           `gorm:"primaryKey"`
	ClientID                int64           `gorm:"not null;index"`
	BankID                  int64           `gorm:"not null;index"`
	CreditCardNumber        string          `gorm:"size:19;not null"`
	PrePlannedDepositAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	CarryForwardEnabled     bool            `gorm:"not null;default:false"`
	Status                  string          `gorm:"size:10;not null;default:'active'"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "profiler_profiles"
}

// Transaction represents a profiler ledger record. The withdraw charge
// columns are nil for deposits.
type Transaction struct {
	ID                        int64           `gorm:"primaryKey"`
	ProfileID                 int64           `gorm:"not null;index"`
	TransactionType           string          `gorm:"size:10;not null"`
	Amount                    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	WithdrawChargesPercentage *decimal.Decimal `gorm:"type:numeric(6,2)"`
	WithdrawChargesAmount     *decimal.Decimal `gorm:"type:numeric(14,2)"`
	CreatedAt                 time.Time       `gorm:"index"`
	UpdatedAt                 time.Time
}

// TableName specifies the table name for the profiler Transaction model.
func (Transaction) TableName() string {
	return "profiler_transactions"
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type clientRow struct {
	ID           int64
	Name         string
	Email        *string
	Contact      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProfileCount int64
}

func mapClientRow(row *clientRow) *dto.ProfilerClientRead {
	return &dto.ProfilerClientRead{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Contact:      row.Contact,
		CreateDate:   row.CreatedAt.Format(dateLayout),
		CreateTime:   row.CreatedAt.Format(timeLayout),
		ModifyDate:   row.UpdatedAt.Format(dateLayout),
		ModifyTime:   row.UpdatedAt.Format(timeLayout),
		ProfileCount: row.ProfileCount,
	}
}

type bankRow struct {
	ID           int64
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProfileCount int64
}

func mapBankRow(row *bankRow) *dto.ProfilerBankRead {
	return &dto.ProfilerBankRead{
		ID:           row.ID,
		Name:         row.Name,
		CreateDate:   row.CreatedAt.Format(dateLayout),
		CreateTime:   row.CreatedAt.Format(timeLayout),
		ModifyDate:   row.UpdatedAt.Format(dateLayout),
		ModifyTime:   row.UpdatedAt.Format(timeLayout),
		ProfileCount: row.ProfileCount,
	}
}

type profileRow struct {
	ID                      int64
	ClientID                int64
	ClientName              string
	BankID                  int64
	BankName                string
	CreditCardNumber        string
	PrePlannedDepositAmount decimal.Decimal
	CarryForwardEnabled     bool
	Status                  string
	CreatedAt               time.Time
	UpdatedAt               time.Time
	TransactionCount        int64
}

func mapProfileRow(row *profileRow) *dto.ProfileRead {
	return &dto.ProfileRead{
		ID:                      row.ID,
		ClientID:                row.ClientID,
		ClientName:              row.ClientName,
		BankID:                  row.BankID,
		BankName:                row.BankName,
		CreditCardNumber:        row.CreditCardNumber,
		PrePlannedDepositAmount: row.PrePlannedDepositAmount,
		CarryForwardEnabled:     row.CarryForwardEnabled,
		Status:                  row.Status,
		CreateDate:              row.CreatedAt.Format(dateLayout),
		CreateTime:              row.CreatedAt.Format(timeLayout),
		ModifyDate:              row.UpdatedAt.Format(dateLayout),
		ModifyTime:              row.UpdatedAt.Format(timeLayout),
		TransactionCount:        row.TransactionCount,
	}
}

type transactionRow struct {
	ID                        int64
	ProfileID                 int64
	ClientName                string
	CreditCardNumber          string
	TransactionType           string
	Amount                    decimal.Decimal
	WithdrawChargesPercentage *decimal.Decimal
	WithdrawChargesAmount     *decimal.Decimal
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func mapTransactionRow(row *transactionRow) *dto.ProfilerTransactionRead {
	return &dto.ProfilerTransactionRead{
		ID:                        row.ID,
		ProfileID:                 row.ProfileID,
		ClientName:                row.ClientName,
		CreditCardNumber:          row.CreditCardNumber,
		TransactionType:           row.TransactionType,
		Amount:                    row.Amount,
		WithdrawChargesPercentage: row.WithdrawChargesPercentage,
		WithdrawChargesAmount:     row.WithdrawChargesAmount,
		CreateDate:                row.CreatedAt.Format(dateLayout),
		CreateTime:                row.CreatedAt.Format(timeLayout),
		ModifyDate:                row.UpdatedAt.Format(dateLayout),
		ModifyTime:                row.UpdatedAt.Format(timeLayout),
	}
}
