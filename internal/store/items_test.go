package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"inventory/internal/db"
)

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	price := decimal.RequireFromString("2500.50")
	item, err := CreateItem(ctx, database, "Keyboard", 10, price, "electronics")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID <= 0 {
		t.Errorf("expected positive id, got %d", item.ID)
	}
	if item.Name != "Keyboard" {
		t.Errorf("expected name 'Keyboard', got %q", item.Name)
	}
	if item.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", item.Quantity)
	}
	if !item.Price.Equal(price) {
		t.Errorf("expected price 2500.50, got %s", item.Price)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if !item.CreatedAt.Equal(item.UpdatedAt) {
		t.Errorf("expected created_at == updated_at on create, got %s / %s", item.CreatedAt, item.UpdatedAt)
	}

	got, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if got.ID != item.ID {
		t.Errorf("expected id %d, got %d", item.ID, got.ID)
	}
	if !got.Price.Equal(price) {
		t.Errorf("expected price to round-trip exactly, got %s", got.Price)
	}
}

func TestGetMissingItem(t *testing.T) {
	database := db.NewTestDB(t)

	item, err := GetItem(context.Background(), database, 42)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil for missing item, got %+v", item)
	}
}

func TestListItemsOrderAndFilter(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ten := decimal.NewFromInt(10)
	CreateItem(ctx, database, "A", 1, ten, "cat1")
	CreateItem(ctx, database, "B", 2, ten, "cat2")
	CreateItem(ctx, database, "C", 3, ten, "cat1")

	all, err := ListItems(ctx, database, "")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Errorf("expected ascending ids, got %d before %d", all[i-1].ID, all[i].ID)
		}
	}

	filtered, err := ListItems(ctx, database, "cat1")
	if err != nil {
		t.Fatalf("ListItems(cat1): %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 items in cat1, got %d", len(filtered))
	}
	for _, item := range filtered {
		if item.Category != "cat1" {
			t.Errorf("expected category 'cat1', got %q", item.Category)
		}
	}
}

func TestUpdateItemRefreshesTimestamp(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, "Mouse", 5, decimal.RequireFromString("999.99"), "electronics")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if err := UpdateItem(ctx, database, item.ID, item.Name, 0, item.Price, item.Category); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	updated, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if updated.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", updated.Quantity)
	}
	if updated.Name != "Mouse" || !updated.Price.Equal(item.Price) || updated.Category != "electronics" {
		t.Error("expected untouched fields to be unchanged")
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("expected updated_at to advance, got created %s / updated %s", updated.CreatedAt, updated.UpdatedAt)
	}
}

func TestDeleteItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, "Delete Me", 1, decimal.NewFromInt(5), "misc")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	deleted, err := DeleteItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report success")
	}

	got, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got != nil {
		t.Error("expected item to be gone after delete")
	}

	deleted, err = DeleteItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report no row")
	}
}

func TestPing(t *testing.T) {
	database := db.NewTestDB(t)

	if err := Ping(context.Background(), database); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
