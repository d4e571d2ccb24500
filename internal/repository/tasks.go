package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"innkeeper/internal/database"
	"innkeeper/internal/models"
)

type TaskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, room_id, status, priority, assignee_id, due_date, created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }, task *models.HousekeepingTask) error {
	return row.Scan(
		&task.ID,
		&task.RoomID,
		&task.Status,
		&task.Priority,
		&task.AssigneeID,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
}

func (r *TaskRepository) Create(ctx context.Context, task *models.HousekeepingTask) error {
	query := `
		INSERT INTO housekeeping_tasks (room_id, status, priority, assignee_id, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		task.RoomID,
		task.Status,
		task.Priority,
		task.AssigneeID,
		task.DueDate,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*models.HousekeepingTask, error) {
	task := &models.HousekeepingTask{}
	query := `SELECT ` + taskColumns + ` FROM housekeeping_tasks WHERE id = $1`

	err := scanTask(r.db.QueryRowContext(ctx, query, id), task)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	issues, err := r.GetIssues(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	task.Issues = issues

	return task, nil
}

func (r *TaskRepository) List(ctx context.Context, status string, assigneeID *int64) ([]models.HousekeepingTask, error) {
	var args []interface{}
	argIndex := 1

	query := `SELECT ` + taskColumns + ` FROM housekeeping_tasks WHERE 1=1`

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	if assigneeID != nil {
		query += fmt.Sprintf(" AND assignee_id = $%d", argIndex)
		args = append(args, *assigneeID)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.HousekeepingTask
	for rows.Next() {
		var task models.HousekeepingTask
		if err := scanTask(rows, &task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, task *models.HousekeepingTask) error {
	query := `
		UPDATE housekeeping_tasks
		SET status = $1, priority = $2, assignee_id = $3, due_date = $4, updated_at = NOW()
		WHERE id = $5`

	_, err := r.db.ExecContext(ctx, query,
		task.Status,
		task.Priority,
		task.AssigneeID,
		task.DueDate,
		task.ID,
	)

	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM housekeeping_tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *TaskRepository) AddIssue(ctx context.Context, issue *models.TaskIssue) error {
	query := `
		INSERT INTO task_issues (task_id, description, priority)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		issue.TaskID,
		issue.Description,
		issue.Priority,
	).Scan(&issue.ID, &issue.CreatedAt)
}

func (r *TaskRepository) GetIssues(ctx context.Context, taskID int64) ([]models.TaskIssue, error) {
	query := `
		SELECT id, task_id, description, priority, created_at
		FROM task_issues
		WHERE task_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []models.TaskIssue
	for rows.Next() {
		var issue models.TaskIssue
		err := rows.Scan(
			&issue.ID,
			&issue.TaskID,
			&issue.Description,
			&issue.Priority,
			&issue.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

// GetOverdue returns unfinished tasks whose due date passed before the cutoff
func (r *TaskRepository) GetOverdue(ctx context.Context, cutoff time.Time) ([]models.HousekeepingTask, error) {
	query := `SELECT ` + taskColumns + `
		FROM housekeeping_tasks
		WHERE status = 'dirty'
		  AND due_date IS NOT NULL
		  AND due_date < $1
		  AND priority != 'High'
		ORDER BY due_date ASC`

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.HousekeepingTask
	for rows.Next() {
		var task models.HousekeepingTask
		if err := scanTask(rows, &task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) UpdatePriority(ctx context.Context, id int64, priority string) error {
	query := `UPDATE housekeeping_tasks SET priority = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, priority, id)
	return err
}
