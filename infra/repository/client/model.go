package client

import (
	"time"

	"github.com/finops/backoffice/pkg/dto"
)

// Client represents a client record in the database. The transaction count
// is never stored; it is joined in at read time.
type Client struct {
	ID        int64   `gorm:"primaryKey"`
	Name      string  `gorm:"size:120;not null"`
	Email     *string `gorm:"size:255"`
	Contact   *string `gorm:"size:15"`
	Address   *string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Client model.
func (Client) TableName() string {
	return "clients"
}

// clientRow is the read projection: the stored columns plus the derived
// transaction count.
type clientRow struct {
	ID               int64
	Name             string
	Email            *string
	Contact          *string
	Address          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	TransactionCount int64
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

func mapRowToDTO(row *clientRow) *dto.ClientRead {
	return &dto.ClientRead{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		Contact:          row.Contact,
		Address:          row.Address,
		CreateDate:       row.CreatedAt.Format(dateLayout),
		CreateTime:       row.CreatedAt.Format(timeLayout),
		ModifyDate:       row.UpdatedAt.Format(dateLayout),
		ModifyTime:       row.UpdatedAt.Format(timeLayout),
		TransactionCount: row.TransactionCount,
	}
}
