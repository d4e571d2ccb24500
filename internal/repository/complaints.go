package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"innkeeper/internal/database"
	"innkeeper/internal/models"
)

type ComplaintRepository struct {
	db *database.DB
}

func NewComplaintRepository(db *database.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (subject, description, status, priority, category, images)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		complaint.Subject,
		complaint.Description,
		complaint.Status,
		complaint.Priority,
		complaint.Category,
		pq.Array(complaint.Images),
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	query := `
		SELECT id, subject, description, status, priority, category, images, created_at, updated_at
		FROM complaints
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&complaint.ID,
		&complaint.Subject,
		&complaint.Description,
		&complaint.Status,
		&complaint.Priority,
		&complaint.Category,
		pq.Array(&complaint.Images),
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return complaint, err
}

func (r *ComplaintRepository) List(ctx context.Context, status, category string) ([]models.Complaint, error) {
	var args []interface{}
	argIndex := 1

	query := `
		SELECT id, subject, description, status, priority, category, images, created_at, updated_at
		FROM complaints
		WHERE 1=1`

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, category)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		var complaint models.Complaint
		err := rows.Scan(
			&complaint.ID,
			&complaint.Subject,
			&complaint.Description,
			&complaint.Status,
			&complaint.Priority,
			&complaint.Category,
			pq.Array(&complaint.Images),
			&complaint.CreatedAt,
			&complaint.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}

	return complaints, rows.Err()
}

func (r *ComplaintRepository) Update(ctx context.Context, complaint *models.Complaint) error {
	query := `
		UPDATE complaints
		SET subject = $1, description = $2, status = $3, priority = $4,
		    category = $5, images = $6, updated_at = NOW()
		WHERE id = $7`

	_, err := r.db.ExecContext(ctx, query,
		complaint.Subject,
		complaint.Description,
		complaint.Status,
		complaint.Priority,
		complaint.Category,
		pq.Array(complaint.Images),
		complaint.ID,
	)

	return err
}

func (r *ComplaintRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM complaints WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
