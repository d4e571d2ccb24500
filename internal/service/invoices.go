package service

import (
	"context"
	"fmt"

	apperrors "innkeeper/internal/errors"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

type InvoiceService struct {
	invoiceRepo *repository.InvoiceRepository
	bookingRepo *repository.BookingRepository
}

func NewInvoiceService(invoiceRepo *repository.InvoiceRepository, bookingRepo *repository.BookingRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *InvoiceService) Create(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	if req.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to get booking: %w", err)
		}
		if booking == nil {
			return nil, fmt.Errorf("booking %d: %w", *req.BookingID, apperrors.ErrNotFound)
		}
	}

	items := make([]models.InvoiceItem, 0, len(req.Items))
	var total int64
	for _, in := range req.Items {
		quantity := in.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, models.InvoiceItem{
			Description: in.Description,
			Quantity:    quantity,
			Amount:      in.Amount,
		})
		total += in.Amount * int64(quantity)
	}

	invoice := &models.Invoice{
		BookingID:    req.BookingID,
		CustomerName: req.CustomerName,
		Status:       "draft",
		TotalAmount:  total,
		Items:        items,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	if invoice == nil {
		return nil, apperrors.ErrNotFound
	}
	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context, status string, bookingID *int64) ([]models.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx, status, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// UpdateStatus moves an invoice through draft, issued, paid and void.
// Issuing stamps the issue time.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateInvoiceRequest) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	if invoice == nil {
		return nil, apperrors.ErrNotFound
	}

	if invoice.Status == "void" || (invoice.Status == "paid" && req.Status != "void") {
		return nil, fmt.Errorf("invoice is %s: %w", invoice.Status, apperrors.ErrConflict)
	}

	issued := req.Status == "issued" && invoice.IssuedAt == nil
	if err := s.invoiceRepo.UpdateStatus(ctx, id, req.Status, issued); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.invoiceRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
