// Package report computes the inventory summary and renders it as JSON
// or CSV. Both encodings are produced from the same Summary value; all
// arithmetic is exact decimal, converted to plain numbers only when
// serialized.
package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"inventory/internal/model"
)

// CategorySummary aggregates all items sharing one category string.
type CategorySummary struct {
	Category      string
	ItemsCount    int
	TotalQuantity int64
	TotalValue    decimal.Decimal
}

// Summary is a point-in-time aggregate over the full item collection.
type Summary struct {
	TotalValue       decimal.Decimal
	Categories       []CategorySummary
	NonPositiveItems []model.Item
}

// Build computes a summary from the given items. Items must already be
// ordered by ascending ID, which the store guarantees; that order is
// preserved in the non-positive-quantity listing. Categories are grouped
// by the raw string value, case-sensitive, and sorted lexicographically.
func Build(items []model.Item) Summary {
	s := Summary{
		TotalValue:       decimal.Zero,
		Categories:       []CategorySummary{},
		NonPositiveItems: []model.Item{},
	}

	groups := make(map[string]*CategorySummary)
	for _, item := range items {
		value := item.Value()
		s.TotalValue = s.TotalValue.Add(value)

		g, ok := groups[item.Category]
		if !ok {
			g = &CategorySummary{Category: item.Category, TotalValue: decimal.Zero}
			groups[item.Category] = g
		}
		g.ItemsCount++
		g.TotalQuantity += item.Quantity
		g.TotalValue = g.TotalValue.Add(value)

		if item.Quantity <= 0 {
			s.NonPositiveItems = append(s.NonPositiveItems, item)
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.Categories = append(s.Categories, *groups[name])
	}

	return s
}

// MarshalJSON renders the summary with decimal totals as bare JSON numbers.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalValue  json.Number       `json:"total_value"`
		Categories  []CategorySummary `json:"categories"`
		NonPositive []model.Item      `json:"items_with_non_positive_quantity"`
	}{
		TotalValue:  json.Number(s.TotalValue.String()),
		Categories:  s.Categories,
		NonPositive: s.NonPositiveItems,
	})
}

// MarshalJSON renders a category group with its total as a bare JSON number.
func (c CategorySummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Category      string      `json:"category"`
		ItemsCount    int         `json:"items_count"`
		TotalQuantity int64       `json:"total_quantity"`
		TotalValue    json.Number `json:"total_value"`
	}{
		Category:      c.Category,
		ItemsCount:    c.ItemsCount,
		TotalQuantity: c.TotalQuantity,
		TotalValue:    json.Number(c.TotalValue.String()),
	})
}

// WriteCSV renders the summary as delimited text: overall totals, a blank
// row, the per-category table, a blank row, then the non-positive-quantity
// item table.
func (s Summary) WriteCSV(out io.Writer) error {
	w := csv.NewWriter(out)

	records := [][]string{
		{"total_value", s.TotalValue.String()},
		{"non_positive_items_count", strconv.Itoa(len(s.NonPositiveItems))},
		{},
		{"category", "items_count", "total_quantity", "total_value"},
	}
	for _, c := range s.Categories {
		records = append(records, []string{
			c.Category,
			strconv.Itoa(c.ItemsCount),
			strconv.FormatInt(c.TotalQuantity, 10),
			c.TotalValue.String(),
		})
	}
	records = append(records, []string{}, []string{"id", "name", "quantity", "price", "category"})
	for _, item := range s.NonPositiveItems {
		records = append(records, []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			strconv.FormatInt(item.Quantity, 10),
			item.Price.String(),
			item.Category,
		})
	}

	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
