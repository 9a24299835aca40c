package bank

import (
	"time"

	"github.com/finops/backoffice/pkg/dto"
)

// Bank represents a bank record in the database.
type Bank struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Bank model.
func (Bank) TableName() string {
	return "banks"
}

type bankRow struct {
	ID               int64
	Name             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	TransactionCount int64
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

func mapRowToDTO(row *bankRow) *dto.BankRead {
	return &dto.BankRead{
		ID:               row.ID,
		Name:             row.Name,
		CreateDate:       row.CreatedAt.Format(dateLayout),
		CreateTime:       row.CreatedAt.Format(timeLayout),
		ModifyDate:       row.UpdatedAt.Format(dateLayout),
		ModifyTime:       row.UpdatedAt.Format(timeLayout),
		TransactionCount: row.TransactionCount,
	}
}
