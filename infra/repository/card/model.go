package card

import (
	"time"

	"github.com/finops/backoffice/pkg/dto"
)

// Card represents a card record in the database.
type Card struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Card model.
func (Card) TableName() string {
	return "cards"
}

type cardRow struct {
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

func mapRowToDTO(row *cardRow) *dto.CardRead {
	return &dto.CardRead{
		ID:               row.ID,
		Name:             row.Name,
		CreateDate:       row.CreatedAt.Format(dateLayout),
		CreateTime:       row.CreatedAt.Format(timeLayout),
		ModifyDate:       row.UpdatedAt.Format(dateLayout),
		ModifyTime:       row.UpdatedAt.Format(timeLayout),
		TransactionCount: row.TransactionCount,
	}
}
