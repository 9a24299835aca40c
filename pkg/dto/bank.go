package dto

// BankCreate is the payload for creating a bank.
type BankCreate struct {
	Name string `json:"name" validate:"required,max=120"`
}

// BankUpdate is the payload for a full bank update.
type BankUpdate struct {
	Name string `json:"name" validate:"required,max=120"`
}

// BankRead is the bank projection with its derived transaction count.
type BankRead struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	CreateDate       string `json:"create_date"`
	CreateTime       string `json:"create_time"`
	ModifyDate       string `json:"modify_date"`
	ModifyTime       string `json:"modify_time"`
	TransactionCount int64  `json:"transaction_count"`
}

// CardCreate is the payload for creating a card.
type CardCreate struct {
	Name string `json:"name" validate:"required,max=120"`
}

// CardUpdate is the payload for a full card update.
type CardUpdate struct {
	Name string `json:"name" validate:"required,max=120"`
}

// CardRead is the card projection with its derived transaction count.
type CardRead struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	CreateDate       string `json:"create_date"`
	CreateTime       string `json:"create_time"`
	ModifyDate       string `json:"modify_date"`
	ModifyTime       string `json:"modify_time"`
	TransactionCount int64  `json:"transaction_count"`
}
