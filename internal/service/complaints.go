package service

import (
	"context"
	"fmt"

	apperrors "innkeeper/internal/errors"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

type ComplaintService struct {
	complaintRepo *repository.ComplaintRepository
}

func NewComplaintService(complaintRepo *repository.ComplaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

func (s *ComplaintService) Create(ctx context.Context, req *models.CreateComplaintRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		Subject:     req.Subject,
		Description: req.Description,
		Status:      "open",
		Priority:    req.Priority,
		Category:    req.Category,
		Images:      req.Images,
	}
	if complaint.Priority == "" {
		complaint.Priority = models.PriorityMedium
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return complaint, nil
}

func (s *ComplaintService) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	if complaint == nil {
		return nil, apperrors.ErrNotFound
	}
	return complaint, nil
}

func (s *ComplaintService) List(ctx context.Context, status, category string) ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.List(ctx, status, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

func (s *ComplaintService) Update(ctx context.Context, id int64, req *models.UpdateComplaintRequest) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	if complaint == nil {
		return nil, apperrors.ErrNotFound
	}

	complaint.Subject = req.Subject
	complaint.Description = req.Description
	if req.Status != "" {
		complaint.Status = req.Status
	}
	if req.Priority != "" {
		complaint.Priority = req.Priority
	}
	complaint.Category = req.Category
	if req.Images != nil {
		complaint.Images = req.Images
	}

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}
	return complaint, nil
}

func (s *ComplaintService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.complaintRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
