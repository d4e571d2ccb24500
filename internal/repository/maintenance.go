package repository

import (
	"context"
	"database/sql"
	"fmt"

	"innkeeper/internal/database"
	"innkeeper/internal/models"
)

type MaintenanceRepository struct {
	db *database.DB
}

func NewMaintenanceRepository(db *database.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

const maintenanceColumns = `id, room_id, subject, progress, priority, assignee_id, due_date, resolved, created_at, updated_at`

func scanMaintenance(row interface{ Scan(...interface{}) error }, req *models.MaintenanceRequest) error {
	return row.Scan(
		&req.ID,
		&req.RoomID,
		&req.Subject,
		&req.Progress,
		&req.Priority,
		&req.AssigneeID,
		&req.DueDate,
		&req.Resolved,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
}

func (r *MaintenanceRepository) Create(ctx context.Context, req *models.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (room_id, subject, progress, priority, assignee_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		req.RoomID,
		req.Subject,
		req.Progress,
		req.Priority,
		req.AssigneeID,
		req.DueDate,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	req := &models.MaintenanceRequest{}
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE id = $1`

	err := scanMaintenance(r.db.QueryRowContext(ctx, query, id), req)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return req, err
}

func (r *MaintenanceRepository) List(ctx context.Context, roomID *int64, resolved *bool) ([]models.MaintenanceRequest, error) {
	var args []interface{}
	argIndex := 1

	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE 1=1`

	if roomID != nil {
		query += fmt.Sprintf(" AND room_id = $%d", argIndex)
		args = append(args, *roomID)
		argIndex++
	}

	if resolved != nil {
		query += fmt.Sprintf(" AND resolved = $%d", argIndex)
		args = append(args, *resolved)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.MaintenanceRequest
	for rows.Next() {
		var req models.MaintenanceRequest
		if err := scanMaintenance(rows, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *MaintenanceRepository) Update(ctx context.Context, req *models.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests
		SET subject = $1, progress = $2, priority = $3, assignee_id = $4,
		    due_date = $5, resolved = $6, updated_at = NOW()
		WHERE id = $7`

	_, err := r.db.ExecContext(ctx, query,
		req.Subject,
		req.Progress,
		req.Priority,
		req.AssigneeID,
		req.DueDate,
		req.Resolved,
		req.ID,
	)

	return err
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
