package repository

import (
	"context"
	"database/sql"
	"fmt"

	"innkeeper/internal/database"
	"innkeeper/internal/models"
)

type InventoryRepository struct {
	db *database.DB
}

func NewInventoryRepository(db *database.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `id, name, category, quantity, unit_price, reorder_level, created_at, updated_at`

func scanInventoryItem(row interface{ Scan(...interface{}) error }, item *models.InventoryItem) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Quantity,
		&item.UnitPrice,
		&item.ReorderLevel,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (name, category, quantity, unit_price, reorder_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		item.Name,
		item.Category,
		item.Quantity,
		item.UnitPrice,
		item.ReorderLevel,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`

	err := scanInventoryItem(r.db.QueryRowContext(ctx, query, id), item)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return item, err
}

func (r *InventoryRepository) List(ctx context.Context, category string, belowReorder bool) ([]models.InventoryItem, error) {
	var args []interface{}
	argIndex := 1

	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE 1=1`

	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, category)
		argIndex++
	}

	if belowReorder {
		query += " AND quantity <= reorder_level"
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := scanInventoryItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $1, category = $2, quantity = $3, unit_price = $4, reorder_level = $5, updated_at = NOW()
		WHERE id = $6`

	_, err := r.db.ExecContext(ctx, query,
		item.Name,
		item.Category,
		item.Quantity,
		item.UnitPrice,
		item.ReorderLevel,
		item.ID,
	)

	return err
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
