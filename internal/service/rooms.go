package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"innkeeper/internal/cache"
	apperrors "innkeeper/internal/errors"
	"innkeeper/internal/logger"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

type RoomService struct {
	roomRepo     *repository.RoomRepository
	roomTypeRepo *repository.RoomTypeRepository
	cacheClient  *cache.Client
}

func NewRoomService(roomRepo *repository.RoomRepository, roomTypeRepo *repository.RoomTypeRepository, cacheClient *cache.Client) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		cacheClient:  cacheClient,
	}
}

func (s *RoomService) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	roomType, err := s.roomTypeRepo.GetByID(ctx, req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}
	if roomType == nil {
		return nil, fmt.Errorf("room type %d: %w", req.RoomTypeID, apperrors.ErrNotFound)
	}

	room := &models.Room{
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		RoomTypeID: req.RoomTypeID,
		Clean:      true,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidateBoard(ctx)

	resp := models.NewRoomResponse(room)
	return &resp, nil
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrNotFound
	}

	resp := models.NewRoomResponse(room)
	return &resp, nil
}

func (s *RoomService) List(ctx context.Context, floor *int, roomTypeID *int64) ([]models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx, floor, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	result := make([]models.RoomResponse, len(rooms))
	for i := range rooms {
		result[i] = models.NewRoomResponse(&rooms[i])
	}
	return result, nil
}

// Board returns the full room list for the housekeeping board, served
// from a short-lived cache since the dashboard polls it aggressively
func (s *RoomService) Board(ctx context.Context) ([]byte, error) {
	if s.cacheClient != nil {
		if cached, err := s.cacheClient.GetRoomBoard(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.List(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(rooms)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal room board: %w", err)
	}

	if s.cacheClient != nil {
		if err := s.cacheClient.SetRoomBoard(ctx, payload); err != nil {
			logger.WithContext(ctx).Warn("Failed to cache room board", "error", err)
		}
	}

	return payload, nil
}

// UpdateStatus flips any subset of the room flags
func (s *RoomService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateRoomStatusRequest) (*models.RoomResponse, error) {
	var occupied, clean, maintenance *bool
	if req.Occupied != nil {
		v := req.Occupied.Bool()
		occupied = &v
	}
	if req.Clean != nil {
		v := req.Clean.Bool()
		clean = &v
	}
	if req.Maintenance != nil {
		v := req.Maintenance.Bool()
		maintenance = &v
	}

	if occupied == nil && clean == nil && maintenance == nil {
		return nil, fmt.Errorf("no flags provided: %w", apperrors.ErrConflict)
	}

	if err := s.roomRepo.SetFlags(ctx, id, occupied, clean, maintenance); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update room flags: %w", err)
	}

	s.invalidateBoard(ctx)

	return s.GetByID(ctx, id)
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.roomRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	s.invalidateBoard(ctx)
	return nil
}

// Room types

func (s *RoomService) CreateRoomType(ctx context.Context, req *models.CreateRoomTypeRequest) (*models.RoomType, error) {
	rt := &models.RoomType{
		Title:        req.Title,
		Price:        req.Price,
		MaxOccupancy: req.MaxOccupancy,
		Description:  req.Description,
		Images:       req.Images,
	}

	if err := s.roomTypeRepo.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}
	return rt, nil
}

func (s *RoomService) GetRoomType(ctx context.Context, id int64) (*models.RoomType, error) {
	rt, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}
	if rt == nil {
		return nil, apperrors.ErrNotFound
	}
	return rt, nil
}

func (s *RoomService) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	types, err := s.roomTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	return types, nil
}

func (s *RoomService) UpdateRoomType(ctx context.Context, id int64, req *models.CreateRoomTypeRequest) (*models.RoomType, error) {
	rt, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}
	if rt == nil {
		return nil, apperrors.ErrNotFound
	}

	rt.Title = req.Title
	rt.Price = req.Price
	rt.MaxOccupancy = req.MaxOccupancy
	rt.Description = req.Description
	rt.Images = req.Images

	if err := s.roomTypeRepo.Update(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to update room type: %w", err)
	}
	return rt, nil
}

func (s *RoomService) DeleteRoomType(ctx context.Context, id int64) error {
	deleted, err := s.roomTypeRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete room type: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *RoomService) invalidateBoard(ctx context.Context) {
	if s.cacheClient == nil {
		return
	}
	if err := s.cacheClient.InvalidateRoomBoard(ctx); err != nil {
		logger.WithContext(ctx).Warn("Failed to invalidate room board cache", "error", err)
	}
}
