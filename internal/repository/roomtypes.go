package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"innkeeper/internal/database"
	"innkeeper/internal/models"
)

type RoomTypeRepository struct {
	db *database.DB
}

func NewRoomTypeRepository(db *database.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *models.RoomType) error {
	query := `
		INSERT INTO room_types (title, price, max_occupancy, description, images)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		rt.Title,
		rt.Price,
		rt.MaxOccupancy,
		rt.Description,
		pq.Array(rt.Images),
	).Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*models.RoomType, error) {
	rt := &models.RoomType{}
	query := `
		SELECT id, title, price, max_occupancy, description, images, created_at, updated_at
		FROM room_types
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID,
		&rt.Title,
		&rt.Price,
		&rt.MaxOccupancy,
		&rt.Description,
		pq.Array(&rt.Images),
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return rt, err
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]models.RoomType, error) {
	query := `
		SELECT id, title, price, max_occupancy, description, images, created_at, updated_at
		FROM room_types
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.RoomType
	for rows.Next() {
		var rt models.RoomType
		err := rows.Scan(
			&rt.ID,
			&rt.Title,
			&rt.Price,
			&rt.MaxOccupancy,
			&rt.Description,
			pq.Array(&rt.Images),
			&rt.CreatedAt,
			&rt.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}

	return types, rows.Err()
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *models.RoomType) error {
	query := `
		UPDATE room_types
		SET title = $1, price = $2, max_occupancy = $3, description = $4, images = $5, updated_at = NOW()
		WHERE id = $6`

	_, err := r.db.ExecContext(ctx, query,
		rt.Title,
		rt.Price,
		rt.MaxOccupancy,
		rt.Description,
		pq.Array(rt.Images),
		rt.ID,
	)

	return err
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
