package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"inventory/internal/model"
)

// CreateItem inserts a new item and returns it with its assigned ID.
// Both timestamps are set to the same instant, in UTC.
func CreateItem(ctx context.Context, db *sql.DB, name string, quantity int64, price decimal.Decimal, category string) (*model.Item, error) {
	now := time.Now().UTC()
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, quantity, price, category, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, quantity, price, category, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if it doesn't exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, quantity, price, category, created_at, updated_at
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Category, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all items ordered by ascending ID, optionally filtered
// by exact category match.
func ListItems(ctx context.Context, db *sql.DB, category string) ([]model.Item, error) {
	var rows *sql.Rows
	var err error

	if category != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT id, name, quantity, price, category, created_at, updated_at
			 FROM items WHERE category = ? ORDER BY id`, category,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, name, quantity, price, category, created_at, updated_at
			 FROM items ORDER BY id`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Category, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem writes all four mutable fields and refreshes updated_at.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, name string, quantity int64, price decimal.Decimal, category string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, quantity = ?, price = ?, category = ?, updated_at = ?
		 WHERE id = ?`,
		name, quantity, price, category, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// DeleteItem permanently removes an item. Returns false if no row matched.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	return n > 0, nil
}

// Ping checks that the database is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `SELECT 1`); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
