package repository

import (
	"context"
	"database/sql"
	"fmt"

	"innkeeper/internal/database"
	apperrors "innkeeper/internal/errors"
	"innkeeper/internal/models"
)

type RoomRepository struct {
	db *database.DB
}

func NewRoomRepository(db *database.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `id, room_number, floor, room_type_id, occupied, clean, maintenance, created_at, updated_at`

func scanRoom(row interface{ Scan(...interface{}) error }, room *models.Room) error {
	return row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Floor,
		&room.RoomTypeID,
		&room.Occupied,
		&room.Clean,
		&room.Maintenance,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (room_number, floor, room_type_id, occupied, clean, maintenance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		room.RoomNumber,
		room.Floor,
		room.RoomTypeID,
		room.Occupied,
		room.Clean,
		room.Maintenance,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	room := &models.Room{}
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	err := scanRoom(r.db.QueryRowContext(ctx, query, id), room)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return room, err
}

func (r *RoomRepository) List(ctx context.Context, floor *int, roomTypeID *int64) ([]models.Room, error) {
	var args []interface{}
	argIndex := 1

	query := `SELECT ` + roomColumns + ` FROM rooms WHERE 1=1`

	if floor != nil {
		query += fmt.Sprintf(" AND floor = $%d", argIndex)
		args = append(args, *floor)
		argIndex++
	}

	if roomTypeID != nil {
		query += fmt.Sprintf(" AND room_type_id = $%d", argIndex)
		args = append(args, *roomTypeID)
		argIndex++
	}

	query += " ORDER BY floor, room_number"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var room models.Room
		if err := scanRoom(rows, &room); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $1, floor = $2, room_type_id = $3,
		    occupied = $4, clean = $5, maintenance = $6, updated_at = NOW()
		WHERE id = $7`

	_, err := r.db.ExecContext(ctx, query,
		room.RoomNumber,
		room.Floor,
		room.RoomTypeID,
		room.Occupied,
		room.Clean,
		room.Maintenance,
		room.ID,
	)

	return err
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Occupy transitions a room to occupied, failing if it is not currently
// available. The row lock serializes racing check-ins on the same room.
func (r *RoomRepository) Occupy(ctx context.Context, roomID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var occupied, clean, maintenance bool
	checkQuery := `SELECT occupied, clean, maintenance FROM rooms WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, checkQuery, roomID).Scan(&occupied, &clean, &maintenance)
	if err == sql.ErrNoRows {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}

	if occupied || !clean || maintenance {
		return apperrors.ErrRoomUnavailable
	}

	updateQuery := `UPDATE rooms SET occupied = TRUE, updated_at = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, updateQuery, roomID); err != nil {
		return err
	}

	return tx.Commit()
}

// Release marks a room vacant; dirty controls whether the clean flag drops
func (r *RoomRepository) Release(ctx context.Context, roomID int64, dirty bool) error {
	query := `UPDATE rooms SET occupied = FALSE, clean = clean AND NOT $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, dirty, roomID)
	return err
}

// SetFlags updates any provided room flags, leaving the rest untouched
func (r *RoomRepository) SetFlags(ctx context.Context, roomID int64, occupied, clean, maintenance *bool) error {
	var args []interface{}
	argIndex := 1

	query := `UPDATE rooms SET updated_at = NOW()`

	if occupied != nil {
		query += fmt.Sprintf(", occupied = $%d", argIndex)
		args = append(args, *occupied)
		argIndex++
	}

	if clean != nil {
		query += fmt.Sprintf(", clean = $%d", argIndex)
		args = append(args, *clean)
		argIndex++
	}

	if maintenance != nil {
		query += fmt.Sprintf(", maintenance = $%d", argIndex)
		args = append(args, *maintenance)
		argIndex++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, roomID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
