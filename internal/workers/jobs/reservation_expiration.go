package jobs

import (
	"context"
	"log/slog"
	"time"

	"innkeeper/internal/external"
	"innkeeper/internal/messaging"
	"innkeeper/internal/metrics"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

const expirationInterval = time.Minute

// ReservationExpiration cancels paystack reservations whose payment
// window lapsed, freeing their rooms for new bookings
type ReservationExpiration struct {
	bookingRepo *repository.BookingRepository
	roomRepo    *repository.RoomRepository
	paystack    *external.PaystackClient
	natsClient  *messaging.Client
	ttl         time.Duration
}

func NewReservationExpiration(bookingRepo *repository.BookingRepository, roomRepo *repository.RoomRepository, paystack *external.PaystackClient, natsClient *messaging.Client, ttl time.Duration) *ReservationExpiration {
	return &ReservationExpiration{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		paystack:    paystack,
		natsClient:  natsClient,
		ttl:         ttl,
	}
}

func (j *ReservationExpiration) Run(ctx context.Context) {
	ticker := time.NewTicker(expirationInterval)
	defer ticker.Stop()

	slog.Info("Reservation expiration job started", "ttl", j.ttl)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reservation expiration job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *ReservationExpiration) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.ttl)

	stale, err := j.bookingRepo.GetStaleReserved(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to query stale reservations", "error", err)
		return
	}

	for i := range stale {
		booking := &stale[i]

		// The payment may have completed between the query and now;
		// verify with the gateway before cancelling
		if verify, err := j.paystack.VerifyTransaction(booking.ReferenceCode); err == nil && verify.Data.Status == "success" {
			if uerr := j.bookingRepo.UpdatePaymentStatus(ctx, booking.ID, models.PaymentCompleted, verify.Data.Reference); uerr != nil {
				slog.Error("Failed to record late payment", "booking_id", booking.ID, "error", uerr)
			}
			continue
		}

		booking.Status = models.BookingCancelled
		booking.PaymentStatus = models.PaymentCancelled
		if err := j.bookingRepo.Update(ctx, booking); err != nil {
			slog.Error("Failed to expire reservation", "booking_id", booking.ID, "error", err)
			continue
		}

		stays, err := j.bookingRepo.GetStays(ctx, booking.ID)
		if err != nil {
			slog.Error("Failed to load stays of expired reservation", "booking_id", booking.ID, "error", err)
		}
		roomIDs := make([]int64, 0, len(stays))
		for _, stay := range stays {
			roomIDs = append(roomIDs, stay.RoomID)
		}

		event := models.BookingCancelledEvent{
			BookingID: booking.ID,
			RoomIDs:   roomIDs,
			Reason:    "Payment window expired",
			Timestamp: time.Now(),
		}
		if err := j.natsClient.Publish(models.EventBookingCancelled, event); err != nil {
			slog.Error("Failed to publish expiration event", "booking_id", booking.ID, "error", err)
		}

		metrics.ReservationsExpiredTotal.Inc()
		slog.Info("Expired unpaid reservation",
			"booking_id", booking.ID,
			"reference", booking.ReferenceCode)
	}
}
