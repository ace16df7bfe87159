package service

import (
	"context"
	"testing"

	"github.com/invtrack/backend/internal/model"
)

type fakeInventoryRepo struct {
	items []model.InventoryItem
}

func (f *fakeInventoryRepo) ListInventoryItems(ctx context.Context) ([]model.InventoryItem, error) {
	return f.items, nil
}

func TestInventoryList(t *testing.T) {
	repo := &fakeInventoryRepo{items: []model.InventoryItem{
		{ID: 1, ItemName: "Widget", Quantity: 100},
		{ID: 2, ItemName: "Gadget", Quantity: 50},
	}}
	svc := NewInventoryService(repo)

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ItemName != "Widget" {
		t.Fatalf("unexpected items: %+v", items)
	}
}
