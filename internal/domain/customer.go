package domain

import "time"

type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "cpf"
	DocumentTypeCNPJ DocumentType = "cnpj"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Street      string       `json:"street"`
	Number      string       `json:"number"`
	District    string       `json:"district"`
	City        string       `json:"city"`
	PostalCode  string       `json:"postal_code"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Customer carries identity and contact data only. Revenue and debt
// aggregates are never stored on the customer record; they are computed
// from the customer's rentals on every read (see the report service).
type Customer struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Document     string       `json:"document"`
	DocumentType DocumentType `json:"document_type"`
	Notes        string       `json:"notes,omitempty"`
	Address      Address      `json:"address"`
	CreatedOn    time.Time    `json:"created_on"`
}
