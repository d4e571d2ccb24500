package service

import (
	"context"
	"fmt"

	apperrors "innkeeper/internal/errors"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

type InventoryService struct {
	inventoryRepo *repository.InventoryRepository
}

func NewInventoryService(inventoryRepo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

func (s *InventoryService) Create(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	item := &models.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		ReorderLevel: req.ReorderLevel,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return item, nil
}

func (s *InventoryService) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if item == nil {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

func (s *InventoryService) List(ctx context.Context, category string, belowReorder bool) ([]models.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx, category, belowReorder)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

func (s *InventoryService) Update(ctx context.Context, id int64, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if item == nil {
		return nil, apperrors.ErrNotFound
	}

	item.Name = req.Name
	item.Category = req.Category
	item.Quantity = req.Quantity
	item.UnitPrice = req.UnitPrice
	item.ReorderLevel = req.ReorderLevel

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.inventoryRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
