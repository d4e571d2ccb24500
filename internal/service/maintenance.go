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

type MaintenanceService struct {
	maintenanceRepo *repository.MaintenanceRepository
	roomRepo        *repository.RoomRepository
	natsClient      *messaging.Client
}

func NewMaintenanceService(maintenanceRepo *repository.MaintenanceRepository, roomRepo *repository.RoomRepository, natsClient *messaging.Client) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		roomRepo:        roomRepo,
		natsClient:      natsClient,
	}
}

// Create opens a maintenance request and pulls the room out of service
func (s *MaintenanceService) Create(ctx context.Context, req *models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d: %w", req.RoomID, apperrors.ErrNotFound)
	}

	request := &models.MaintenanceRequest{
		RoomID:     req.RoomID,
		Subject:    req.Subject,
		Progress:   req.Progress,
		Priority:   req.Priority,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
	}
	if request.Priority == "" {
		request.Priority = models.PriorityMedium
	}

	if err := s.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}

	maintenance := true
	if err := s.roomRepo.SetFlags(ctx, req.RoomID, nil, nil, &maintenance); err != nil {
		logger.WithContext(ctx).Error("Failed to flag room for maintenance",
			"error", err,
			"room_id", req.RoomID)
	}

	if s.natsClient != nil {
		event := models.MaintenanceOpenedEvent{
			RequestID: request.ID,
			RoomID:    request.RoomID,
			Subject:   request.Subject,
			Priority:  request.Priority,
			Timestamp: time.Now(),
		}
		if err := s.natsClient.Publish(models.EventMaintenanceOpened, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish maintenance opened event",
				"error", err,
				"request_id", request.ID)
		}
	}

	return request, nil
}

func (s *MaintenanceService) GetByID(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	request, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}
	if request == nil {
		return nil, apperrors.ErrNotFound
	}
	return request, nil
}

func (s *MaintenanceService) List(ctx context.Context, roomID *int64, resolved *bool) ([]models.MaintenanceRequest, error) {
	requests, err := s.maintenanceRepo.List(ctx, roomID, resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	return requests, nil
}

// Update progresses a request. Resolving it returns the room to service
// unless another open request still covers the same room.
func (s *MaintenanceService) Update(ctx context.Context, id int64, req *models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	request, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}
	if request == nil {
		return nil, apperrors.ErrNotFound
	}

	wasResolved := request.Resolved

	if req.Progress != nil {
		request.Progress = req.Progress
	}
	if req.Priority != "" {
		request.Priority = req.Priority
	}
	if req.AssigneeID != nil {
		request.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		request.DueDate = req.DueDate
	}
	if req.Resolved != nil {
		request.Resolved = *req.Resolved
	}

	if err := s.maintenanceRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}

	if !wasResolved && request.Resolved {
		s.maybeRestoreRoom(ctx, request.RoomID)
	}

	return request, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.maintenanceRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance request: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *MaintenanceService) maybeRestoreRoom(ctx context.Context, roomID int64) {
	unresolved := false
	open, err := s.maintenanceRepo.List(ctx, &roomID, &unresolved)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to check open maintenance requests",
			"error", err,
			"room_id", roomID)
		return
	}
	if len(open) > 0 {
		return
	}

	maintenance := false
	if err := s.roomRepo.SetFlags(ctx, roomID, nil, nil, &maintenance); err != nil {
		logger.WithContext(ctx).Error("Failed to return room to service",
			"error", err,
			"room_id", roomID)
	}
}
