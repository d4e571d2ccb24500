package workers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/stan.go"

	"innkeeper/internal/messaging"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

type Handlers struct {
	repos      *repository.Repositories
	natsClient *messaging.Client
}

func NewHandlers(repos *repository.Repositories, natsClient *messaging.Client) *Handlers {
	return &Handlers{
		repos:      repos,
		natsClient: natsClient,
	}
}

// HandleBookingCheckedOut opens a housekeeping task for every room the
// departing booking held. Messages are acked only after the tasks exist
// so a crash mid-way redelivers.
func (h *Handlers) HandleBookingCheckedOut(m *stan.Msg) {
	var event models.BookingCheckedOutEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking checked out event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Processing booking checked out event", "booking_id", event.BookingID)

	ctx := context.Background()
	for _, roomID := range event.RoomIDs {
		task := &models.HousekeepingTask{
			RoomID:   roomID,
			Status:   models.TaskDirty,
			Priority: models.PriorityMedium,
		}
		if err := h.repos.Tasks.Create(ctx, task); err != nil {
			slog.Error("Failed to create housekeeping task",
				"error", err,
				"room_id", roomID,
				"booking_id", event.BookingID)
			return
		}

		payload := models.TaskCreatedEvent{
			TaskID:    task.ID,
			RoomID:    roomID,
			Priority:  task.Priority,
			Timestamp: event.Timestamp,
		}
		if err := h.natsClient.Publish(models.EventTaskCreated, payload); err != nil {
			slog.Error("Failed to publish task created event", "error", err, "task_id", task.ID)
		}
	}

	m.Ack()
}

// HandleBookingCancelled logs cancellations for the audit trail
func (h *Handlers) HandleBookingCancelled(m *stan.Msg) {
	var event models.BookingCancelledEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking cancelled event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Booking cancelled",
		"booking_id", event.BookingID,
		"rooms", event.RoomIDs,
		"reason", event.Reason)

	m.Ack()
}

// HandlePaymentCompleted reconciles the payment status in case the
// webhook and the consumer raced
func (h *Handlers) HandlePaymentCompleted(m *stan.Msg) {
	var event models.PaymentCompletedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal payment completed event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Processing payment completed event", "booking_id", event.BookingID)

	ctx := context.Background()
	booking, err := h.repos.Bookings.GetByID(ctx, event.BookingID)
	if err != nil {
		slog.Error("Failed to get booking", "booking_id", event.BookingID, "error", err)
		return
	}

	if booking != nil && booking.PaymentStatus != models.PaymentCompleted {
		if err := h.repos.Bookings.UpdatePaymentStatus(ctx, booking.ID, models.PaymentCompleted, event.PaymentID); err != nil {
			slog.Error("Failed to update payment status", "booking_id", booking.ID, "error", err)
			return
		}
	}

	m.Ack()
}

// HandlePaymentFailed marks the payment failed so the expiration job can
// reclaim the reservation
func (h *Handlers) HandlePaymentFailed(m *stan.Msg) {
	var event models.PaymentFailedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal payment failed event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Processing payment failed event",
		"booking_id", event.BookingID,
		"reason", event.Reason)

	ctx := context.Background()
	booking, err := h.repos.Bookings.GetByID(ctx, event.BookingID)
	if err != nil {
		slog.Error("Failed to get booking", "booking_id", event.BookingID, "error", err)
		return
	}

	if booking != nil && booking.PaymentStatus != models.PaymentCompleted {
		if err := h.repos.Bookings.UpdatePaymentStatus(ctx, booking.ID, models.PaymentFailed, event.PaymentID); err != nil {
			slog.Error("Failed to update payment status", "booking_id", booking.ID, "error", err)
			return
		}
	}

	m.Ack()
}

// HandleMaintenanceOpened logs new maintenance requests so the on-call
// feed has a durable record
func (h *Handlers) HandleMaintenanceOpened(m *stan.Msg) {
	var event models.MaintenanceOpenedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal maintenance opened event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Maintenance request opened",
		"request_id", event.RequestID,
		"room_id", event.RoomID,
		"subject", event.Subject,
		"priority", event.Priority)

	m.Ack()
}
