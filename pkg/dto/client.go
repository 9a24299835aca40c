// Package dto defines the wire-level data transfer objects: create/update
// payloads with validation tags, read projections with derived counts, and
// the typed list-query structs consumed by the repositories.
package dto

// ClientCreate is the payload for creating a client.
type ClientCreate struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Contact *string `json:"contact" validate:"omitempty,min=7,max=15,numeric"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// ClientUpdate is the payload for a full client update.
type ClientUpdate struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Contact *string `json:"contact" validate:"omitempty,min=7,max=15,numeric"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// ClientRead is the client projection returned by every read, including the
// derived transaction count.
type ClientRead struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            *string `json:"email,omitempty"`
	Contact          *string `json:"contact,omitempty"`
	Address          *string `json:"address,omitempty"`
	CreateDate       string  `json:"create_date"`
	CreateTime       string  `json:"create_time"`
	ModifyDate       string  `json:"modify_date"`
	ModifyTime       string  `json:"modify_time"`
	TransactionCount int64   `json:"transaction_count"`
}

// NameRead is the lightweight id+label shape returned by autocomplete.
type NameRead struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
