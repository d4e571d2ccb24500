package jobs

import (
	"context"
	"log/slog"
	"time"

	"innkeeper/internal/metrics"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

const escalationInterval = 5 * time.Minute

// OverdueTaskEscalation bumps housekeeping tasks to high priority once
// they sit dirty longer than the grace window past their due date
type OverdueTaskEscalation struct {
	taskRepo *repository.TaskRepository
	window   time.Duration
}

func NewOverdueTaskEscalation(taskRepo *repository.TaskRepository, window time.Duration) *OverdueTaskEscalation {
	return &OverdueTaskEscalation{
		taskRepo: taskRepo,
		window:   window,
	}
}

func (j *OverdueTaskEscalation) Run(ctx context.Context) {
	ticker := time.NewTicker(escalationInterval)
	defer ticker.Stop()

	slog.Info("Overdue task escalation job started", "window", j.window)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Overdue task escalation job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *OverdueTaskEscalation) sweep(ctx context.Context) {
	overdue, err := j.taskRepo.GetOverdue(ctx, time.Now().Add(-j.window))
	if err != nil {
		slog.Error("Failed to query overdue tasks", "error", err)
		return
	}

	for _, task := range overdue {
		if err := j.taskRepo.UpdatePriority(ctx, task.ID, models.PriorityHigh); err != nil {
			slog.Error("Failed to escalate task", "task_id", task.ID, "error", err)
			continue
		}

		metrics.TasksEscalatedTotal.Inc()
		slog.Info("Escalated overdue housekeeping task",
			"task_id", task.ID,
			"room_id", task.RoomID)
	}
}
