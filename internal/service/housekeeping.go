package service

import (
	"context"
	"fmt"
	"time"

	apperrors "innkeeper/internal/errors"
	"innkeeper/internal/logger"
	"innkeeper/internal/messaging"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

type HousekeepingService struct {
	taskRepo   *repository.TaskRepository
	roomRepo   *repository.RoomRepository
	natsClient *messaging.Client
}

func NewHousekeepingService(taskRepo *repository.TaskRepository, roomRepo *repository.RoomRepository, natsClient *messaging.Client) *HousekeepingService {
	return &HousekeepingService{
		taskRepo:   taskRepo,
		roomRepo:   roomRepo,
		natsClient: natsClient,
	}
}

func (s *HousekeepingService) Create(ctx context.Context, req *models.CreateTaskRequest) (*models.HousekeepingTask, error) {
	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d: %w", req.RoomID, apperrors.ErrNotFound)
	}

	task := &models.HousekeepingTask{
		RoomID:     req.RoomID,
		Status:     req.Status,
		Priority:   req.Priority,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
	}
	if task.Status == "" {
		task.Status = models.TaskDirty
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if s.natsClient != nil {
		event := models.TaskCreatedEvent{
			TaskID:    task.ID,
			RoomID:    task.RoomID,
			Priority:  task.Priority,
			Timestamp: time.Now(),
		}
		if err := s.natsClient.Publish(models.EventTaskCreated, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish task created event",
				"error", err,
				"task_id", task.ID)
		}
	}

	return task, nil
}

func (s *HousekeepingService) GetByID(ctx context.Context, id int64) (*models.HousekeepingTask, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, apperrors.ErrNotFound
	}
	return task, nil
}

func (s *HousekeepingService) List(ctx context.Context, status string, assigneeID *int64) ([]models.HousekeepingTask, error) {
	tasks, err := s.taskRepo.List(ctx, status, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update advances a task through its lifecycle. Marking a task cleaned or
// inspected restores the room's clean flag.
func (s *HousekeepingService) Update(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.HousekeepingTask, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, apperrors.ErrNotFound
	}

	previousStatus := task.Status

	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if previousStatus == models.TaskDirty && task.Status != models.TaskDirty {
		clean := true
		if err := s.roomRepo.SetFlags(ctx, task.RoomID, nil, &clean, nil); err != nil {
			logger.WithContext(ctx).Error("Failed to mark room clean",
				"error", err,
				"room_id", task.RoomID)
		}
	}

	return task, nil
}

func (s *HousekeepingService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReportIssue attaches a problem report to a task. High priority issues
// bump the task itself to high priority.
func (s *HousekeepingService) ReportIssue(ctx context.Context, taskID int64, req *models.CreateTaskIssueRequest) (*models.TaskIssue, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, apperrors.ErrNotFound
	}

	issue := &models.TaskIssue{
		TaskID:      taskID,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if issue.Priority == "" {
		issue.Priority = models.PriorityMedium
	}

	if err := s.taskRepo.AddIssue(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to add issue: %w", err)
	}

	if issue.Priority == models.PriorityHigh && task.Priority != models.PriorityHigh {
		if err := s.taskRepo.UpdatePriority(ctx, taskID, models.PriorityHigh); err != nil {
			logger.WithContext(ctx).Error("Failed to escalate task priority",
				"error", err,
				"task_id", taskID)
		}
	}

	return issue, nil
}
