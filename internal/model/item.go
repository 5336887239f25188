package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Field length limits, enforced at validation time.
const (
	MaxNameLength     = 200
	MaxCategoryLength = 100
)

// Item represents a single inventory record.
type Item struct {
	ID        int64
	Name      string
	Quantity  int64
	Price     decimal.Decimal
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarshalJSON renders the canonical item representation returned by every
// endpoint. Price is emitted as a bare JSON number built from the decimal's
// exact textual form, and timestamps as ISO-8601 in UTC.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int64       `json:"id"`
		Name      string      `json:"name"`
		Quantity  int64       `json:"quantity"`
		Price     json.Number `json:"price"`
		Category  string      `json:"category"`
		CreatedAt string      `json:"created_at"`
		UpdatedAt string      `json:"updated_at"`
	}{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     json.Number(i.Price.String()),
		Category:  i.Category,
		CreatedAt: i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
}

// Value returns quantity × price for this item.
func (i Item) Value() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}
