package model

type InventoryItem struct {
	ID       int64  `json:"id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}
