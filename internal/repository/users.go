package repository

import (
	"context"
	"database/sql"

	"innkeeper/internal/database"
	"innkeeper/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, email, password_hash, first_name, surname, role, registered_at, is_active, last_logged_in`

func scanUser(row interface{ Scan(...interface{}) error }, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.Surname,
		&user.Role,
		&user.RegisteredAt,
		&user.IsActive,
		&user.LastLoggedIn,
	)
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, first_name, surname, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, registered_at, is_active, last_logged_in`

	return r.db.QueryRowContext(ctx, query,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.Surname,
		user.Role,
	).Scan(&user.UserID, &user.RegisteredAt, &user.IsActive, &user.LastLoggedIn)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	err := scanUser(r.db.QueryRowContext(ctx, query, id), user)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	err := scanUser(r.db.QueryRowContext(ctx, query, email), user)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, first_name = $2, surname = $3, role = $4, is_active = $5
		WHERE user_id = $6`

	_, err := r.db.ExecContext(ctx, query,
		user.Email,
		user.FirstName,
		user.Surname,
		user.Role,
		user.IsActive,
		user.UserID,
	)

	return err
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	query := `UPDATE users SET last_logged_in = NOW() WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
