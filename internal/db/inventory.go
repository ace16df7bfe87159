package db

import (
	"context"

	"github.com/invtrack/backend/internal/model"
)

func (db *Postgres) ListInventoryItems(ctx context.Context) ([]model.InventoryItem, error) {
	query := `
		SELECT id, item_name, quantity
		FROM inv
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.InventoryItem{}
	for rows.Next() {
		var item model.InventoryItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
