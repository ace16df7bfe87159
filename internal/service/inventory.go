package service

import (
	"context"

	"github.com/invtrack/backend/internal/model"
)

type InventoryRepo interface {
	ListInventoryItems(ctx context.Context) ([]model.InventoryItem, error)
}

type InventoryService struct {
	repo InventoryRepo
}

func NewInventoryService(repo InventoryRepo) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) List(ctx context.Context) ([]model.InventoryItem, error) {
	return s.repo.ListInventoryItems(ctx)
}
