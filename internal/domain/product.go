// domain/product.go
package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product is the stored product record. ID and CreatedAt are assigned by the
// repository on creation and never change afterwards.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   *time.Time      `json:"createdAt"`
}

// ProductInput is the submitted payload used to create or overwrite a
// Product. It never carries an id or creation timestamp.
type ProductInput struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Price       PriceInput `json:"price"`
}

// PriceInput keeps the submitted price in its raw textual form so the parser
// can tell missing, blank and malformed values apart. Both a JSON string and
// a JSON number are accepted.
type PriceInput struct {
	Raw     string
	Present bool
}

func (p *PriceInput) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.Raw = s
	} else {
		p.Raw = string(data)
	}
	p.Present = true
	return nil
}

// Page is the listing envelope returned for paged queries.
type Page struct {
	Content       []Product `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	PageNumber    int       `json:"pageNumber"`
	PageSize      int       `json:"pageSize"`
}

// ProductRepository is the storage capability the service depends on. Any
// persistence engine (postgres, in-memory) can satisfy it.
type ProductRepository interface {
	Create(product *Product) (*Product, error)
	GetByID(id int64) (*Product, error)
	List(req PageRequest) ([]Product, int64, error)
	Update(product *Product) (*Product, error)
	Delete(id int64) error
}
