package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "innkeeper/internal/errors"
	"innkeeper/internal/external"
	"innkeeper/internal/logger"
	"innkeeper/internal/messaging"
	"innkeeper/internal/metrics"
	"innkeeper/internal/models"
	"innkeeper/internal/reporting"
	"innkeeper/internal/repository"
	"innkeeper/internal/search"
)

type BookingService struct {
	bookingRepo  *repository.BookingRepository
	roomRepo     *repository.RoomRepository
	roomTypeRepo *repository.RoomTypeRepository
	paystack     *external.PaystackClient
	natsClient   *messaging.Client
	searchClient *search.ElasticsearchClient
	callbackURL  string
}

func NewBookingService(bookingRepo *repository.BookingRepository, roomRepo *repository.RoomRepository, roomTypeRepo *repository.RoomTypeRepository, paystack *external.PaystackClient, natsClient *messaging.Client, searchClient *search.ElasticsearchClient, callbackURL string) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		paystack:     paystack,
		natsClient:   natsClient,
		searchClient: searchClient,
		callbackURL:  callbackURL,
	}
}

// Create registers a new booking as reserved. For paystack bookings a
// hosted checkout is initialized and its URL returned so the dashboard
// can redirect the guest.
func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	paymentMode := req.PaymentMode
	if paymentMode == "" {
		paymentMode = models.PaymentModeCash
	}

	stays := make([]models.RoomStay, 0, len(req.Stays))
	var total int64

	for _, in := range req.Stays {
		if !in.CheckOut.After(in.CheckIn) {
			return nil, fmt.Errorf("stay for room %d: %w", in.RoomID, apperrors.ErrConflict)
		}

		room, err := s.roomRepo.GetByID(ctx, in.RoomID)
		if err != nil {
			return nil, fmt.Errorf("failed to get room: %w", err)
		}
		if room == nil {
			return nil, fmt.Errorf("room %d: %w", in.RoomID, apperrors.ErrNotFound)
		}
		if !room.Available() {
			return nil, fmt.Errorf("room %s: %w", room.RoomNumber, apperrors.ErrRoomUnavailable)
		}

		price, err := s.stayPrice(ctx, room, in)
		if err != nil {
			return nil, err
		}

		stays = append(stays, models.RoomStay{
			RoomID:   in.RoomID,
			CheckIn:  in.CheckIn,
			CheckOut: in.CheckOut,
			Price:    price,
		})
		total += price
	}

	charges := make([]models.BookingCharge, 0, len(req.Charges))
	for _, in := range req.Charges {
		charges = append(charges, models.BookingCharge{
			Description: in.Description,
			Amount:      in.Amount,
		})
		total += in.Amount
	}

	booking := &models.Booking{
		ReferenceCode:   newReferenceCode(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Status:          models.BookingReserved,
		PaymentMode:     paymentMode,
		PaymentStatus:   models.PaymentPending,
		TotalAmount:     total,
		Stays:           stays,
		Charges:         charges,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	resp := &models.CreateBookingResponse{
		ID:            booking.ID,
		ReferenceCode: booking.ReferenceCode,
	}

	if paymentMode == models.PaymentModePaystack {
		initResp, err := s.paystack.InitializeTransaction(total, req.CustomerEmail, booking.ReferenceCode, s.callbackURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize payment: %w", err)
		}

		if err := s.bookingRepo.UpdatePaymentStatus(ctx, booking.ID, models.PaymentInitiated, initResp.Data.Reference); err != nil {
			return nil, fmt.Errorf("failed to update payment status: %w", err)
		}
		resp.PaystackURL = initResp.Data.AuthorizationURL

		s.publish(ctx, models.EventPaymentInitiated, models.PaymentInitiatedEvent{
			BookingID:   booking.ID,
			TotalAmount: total,
			PaymentID:   initResp.Data.Reference,
			Timestamp:   time.Now(),
		})
	}

	s.publish(ctx, models.EventBookingCreated, models.BookingCreatedEvent{
		BookingID:     booking.ID,
		ReferenceCode: booking.ReferenceCode,
		RoomIDs:       stayRoomIDs(stays),
		Timestamp:     time.Now(),
	})

	s.index(ctx, booking)
	metrics.BookingsCreatedTotal.WithLabelValues(paymentMode).Inc()

	return resp, nil
}

func (s *BookingService) stayPrice(ctx context.Context, room *models.Room, in models.StayInput) (int64, error) {
	if in.Price != nil {
		return *in.Price, nil
	}

	roomType, err := s.roomTypeRepo.GetByID(ctx, room.RoomTypeID)
	if err != nil {
		return 0, fmt.Errorf("failed to get room type: %w", err)
	}
	if roomType == nil {
		return 0, fmt.Errorf("room type %d: %w", room.RoomTypeID, apperrors.ErrNotFound)
	}

	nights := int64(in.CheckOut.Sub(in.CheckIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return roomType.Price * nights, nil
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrNotFound
	}

	resp := models.NewBookingResponse(booking)
	return &resp, nil
}

// List resolves free-text queries through the search index when one is
// wired, falling back to an ILIKE scan in Postgres
func (s *BookingService) List(ctx context.Context, status, query string, startDate, endDate *time.Time, page, pageSize int) ([]models.BookingResponse, error) {
	var bookings []models.Booking
	var err error

	if query != "" && s.searchClient != nil {
		ids, serr := s.searchClient.Search(ctx, query, page, pageSize)
		if serr == nil {
			bookings, err = s.bookingRepo.GetByIDs(ctx, ids)
			if err == nil {
				bookings = filterBookings(bookings, status, startDate, endDate)
			}
		} else {
			logger.WithContext(ctx).Warn("Search unavailable, falling back to database", "error", serr)
			bookings, err = s.bookingRepo.List(ctx, status, query, startDate, endDate, page, pageSize)
		}
	} else {
		bookings, err = s.bookingRepo.List(ctx, status, query, startDate, endDate, page, pageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := make([]models.BookingResponse, len(bookings))
	for i := range bookings {
		result[i] = models.NewBookingResponse(&bookings[i])
	}
	return result, nil
}

// filterBookings narrows search hits to the same status and created_at
// constraints the SQL path pushes into its WHERE clause, and restores
// the created_at DESC ordering
func filterBookings(bookings []models.Booking, status string, startDate, endDate *time.Time) []models.Booking {
	var predicates []reporting.Predicate[models.Booking]
	if status != "" {
		predicates = append(predicates, reporting.MatchStatus(func(b models.Booking) string { return b.Status }, status))
	}
	if startDate != nil || endDate != nil {
		predicates = append(predicates, reporting.MatchDateRange(func(b models.Booking) *time.Time {
			created := b.CreatedAt
			return &created
		}, startDate, endDate))
	}

	return reporting.Apply(bookings, func(a, b models.Booking) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}, predicates...)
}

func (s *BookingService) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrNotFound
	}

	booking.CustomerName = req.CustomerName
	booking.CustomerEmail = req.CustomerEmail
	booking.CustomerPhone = req.CustomerPhone
	booking.CustomerAddress = req.CustomerAddress

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.index(ctx, booking)

	resp := models.NewBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	if s.searchClient != nil {
		if err := s.searchClient.DeleteBooking(ctx, id); err != nil {
			logger.WithContext(ctx).Error("Failed to remove booking from search index",
				"error", err,
				"booking_id", id)
		}
	}

	return nil
}

// Cancel cancels a reservation or an in-house booking. Rooms held by a
// checked-in booking are released dirty; pending payments are voided and
// completed paystack payments refunded.
func (s *BookingService) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrNotFound
	}

	if booking.Status == models.BookingCancelled || booking.Status == models.BookingCheckedOut {
		return nil, fmt.Errorf("booking is %s: %w", booking.Status, apperrors.ErrConflict)
	}

	if booking.Status == models.BookingCheckedIn {
		for _, stay := range booking.Stays {
			if err := s.roomRepo.Release(ctx, stay.RoomID, true); err != nil {
				logger.WithContext(ctx).Error("Failed to release room during cancellation",
					"error", err,
					"room_id", stay.RoomID)
			}
		}
	}

	if booking.PaymentMode == models.PaymentModePaystack {
		switch booking.PaymentStatus {
		case models.PaymentCompleted:
			if err := s.paystack.Refund(booking.ReferenceCode); err != nil {
				logger.WithContext(ctx).Error("Failed to refund payment during cancellation",
					"error", err,
					"booking_id", booking.ID)
			}
		case models.PaymentPending, models.PaymentInitiated:
			booking.PaymentStatus = models.PaymentCancelled
		}
	}

	booking.Status = models.BookingCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.publish(ctx, models.EventBookingCancelled, models.BookingCancelledEvent{
		BookingID: booking.ID,
		RoomIDs:   stayRoomIDs(booking.Stays),
		Reason:    "Cancelled from dashboard",
		Timestamp: time.Now(),
	})

	s.index(ctx, booking)
	metrics.BookingTransitionsTotal.WithLabelValues(models.BookingCancelled).Inc()

	resp := models.NewBookingResponse(booking)
	return &resp, nil
}

// CheckIn moves a reserved booking in-house, occupying every room it
// holds. Rooms already occupied by the time we get the lock roll the
// whole check-in back.
func (s *BookingService) CheckIn(ctx context.Context, req *models.CheckInRequest) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrNotFound
	}

	if booking.Status != models.BookingReserved {
		return nil, fmt.Errorf("booking is %s: %w", booking.Status, apperrors.ErrConflict)
	}
	if booking.PaymentMode == models.PaymentModePaystack && booking.PaymentStatus != models.PaymentCompleted {
		return nil, fmt.Errorf("payment is %s: %w", booking.PaymentStatus, apperrors.ErrConflict)
	}

	var occupied []int64
	for _, stay := range booking.Stays {
		if err := s.roomRepo.Occupy(ctx, stay.RoomID); err != nil {
			for _, roomID := range occupied {
				if rerr := s.roomRepo.Release(ctx, roomID, false); rerr != nil {
					logger.WithContext(ctx).Error("Failed to roll back room occupation",
						"error", rerr,
						"room_id", roomID)
				}
			}
			return nil, fmt.Errorf("room %d: %w", stay.RoomID, err)
		}
		occupied = append(occupied, stay.RoomID)
	}

	booking.Status = models.BookingCheckedIn
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, models.BookingCheckedIn); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publish(ctx, models.EventBookingCheckedIn, models.BookingCheckedInEvent{
		BookingID: booking.ID,
		RoomIDs:   occupied,
		Timestamp: time.Now(),
	})

	s.index(ctx, booking)
	metrics.BookingTransitionsTotal.WithLabelValues(models.BookingCheckedIn).Inc()

	resp := models.NewBookingResponse(booking)
	return &resp, nil
}

// CheckOut releases every room dirty; the checkout consumer turns the
// released rooms into housekeeping tasks.
func (s *BookingService) CheckOut(ctx context.Context, req *models.CheckOutRequest) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrNotFound
	}

	if booking.Status != models.BookingCheckedIn {
		return nil, fmt.Errorf("booking is %s: %w", booking.Status, apperrors.ErrConflict)
	}

	for _, stay := range booking.Stays {
		if err := s.roomRepo.Release(ctx, stay.RoomID, true); err != nil {
			logger.WithContext(ctx).Error("Failed to release room during check-out",
				"error", err,
				"room_id", stay.RoomID)
		}
	}

	booking.Status = models.BookingCheckedOut
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, models.BookingCheckedOut); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publish(ctx, models.EventBookingCheckedOut, models.BookingCheckedOutEvent{
		BookingID: booking.ID,
		RoomIDs:   stayRoomIDs(booking.Stays),
		Timestamp: time.Now(),
	})

	s.index(ctx, booking)
	metrics.BookingTransitionsTotal.WithLabelValues(models.BookingCheckedOut).Inc()

	resp := models.NewBookingResponse(booking)
	return &resp, nil
}

// ExtendStay pushes one stay's check-out date forward, repricing the stay
// at its effective nightly rate. Paystack bookings get a checkout URL for
// the difference.
func (s *BookingService) ExtendStay(ctx context.Context, req *models.ExtendStayRequest) (*models.ExtendStayResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrNotFound
	}

	if booking.Status != models.BookingReserved && booking.Status != models.BookingCheckedIn {
		return nil, fmt.Errorf("booking is %s: %w", booking.Status, apperrors.ErrConflict)
	}

	stay, err := s.bookingRepo.GetStayByID(ctx, req.StayID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stay: %w", err)
	}
	if stay == nil || stay.BookingID != booking.ID {
		return nil, fmt.Errorf("stay %d: %w", req.StayID, apperrors.ErrNotFound)
	}

	if !req.NewCheckOut.After(stay.CheckOut) {
		return nil, fmt.Errorf("new check-out must be after current check-out: %w", apperrors.ErrConflict)
	}

	oldNights := stay.Nights()
	newNights := int(req.NewCheckOut.Sub(stay.CheckIn).Hours() / 24)

	var nightly int64
	if oldNights > 0 {
		nightly = stay.Price / int64(oldNights)
	} else {
		room, err := s.roomRepo.GetByID(ctx, stay.RoomID)
		if err != nil || room == nil {
			return nil, fmt.Errorf("failed to get room for repricing: %w", err)
		}
		roomType, err := s.roomTypeRepo.GetByID(ctx, room.RoomTypeID)
		if err != nil || roomType == nil {
			return nil, fmt.Errorf("failed to get room type for repricing: %w", err)
		}
		nightly = roomType.Price
	}

	newPrice := nightly * int64(newNights)
	delta := newPrice - stay.Price

	resp := &models.ExtendStayResponse{}

	// The extension payment is initialized before the stay is touched so
	// a gateway failure leaves the booking unchanged
	if booking.PaymentMode == models.PaymentModePaystack && delta > 0 {
		extRef := fmt.Sprintf("%s-EXT-%d", booking.ReferenceCode, req.StayID)
		initResp, err := s.paystack.InitializeTransaction(delta, booking.CustomerEmail, extRef, s.callbackURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize extension payment: %w", err)
		}
		resp.PaystackURL = initResp.Data.AuthorizationURL
	}

	if err := s.bookingRepo.UpdateStayCheckOut(ctx, req.StayID, req.NewCheckOut, newPrice); err != nil {
		return nil, fmt.Errorf("failed to update stay: %w", err)
	}

	booking.TotalAmount += delta
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking total: %w", err)
	}

	s.publish(ctx, models.EventBookingExtended, models.BookingExtendedEvent{
		BookingID:   booking.ID,
		StayID:      req.StayID,
		NewCheckOut: req.NewCheckOut,
		Timestamp:   time.Now(),
	})

	updated, err := s.bookingRepo.GetByID(ctx, booking.ID)
	if err != nil || updated == nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	s.index(ctx, updated)

	resp.Booking = models.NewBookingResponse(updated)
	return resp, nil
}

// HandlePaymentNotification reconciles a gateway webhook with the booking
// it references. Unknown references are an error so the gateway retries.
func (s *BookingService) HandlePaymentNotification(ctx context.Context, notification *models.PaymentNotificationPayload) error {
	reference := notification.Data.Reference
	// Extension payments carry a suffixed reference
	if idx := strings.Index(reference, "-EXT-"); idx > 0 {
		reference = reference[:idx]
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		return fmt.Errorf("failed to get booking by reference: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("reference %s: %w", reference, apperrors.ErrNotFound)
	}

	logger.WithContext(ctx).Info("Received payment notification",
		"booking_id", booking.ID,
		"event", notification.Event,
		"status", notification.Data.Status)

	switch {
	case notification.Event == "charge.success" || notification.Data.Status == "success":
		if err := s.bookingRepo.UpdatePaymentStatus(ctx, booking.ID, models.PaymentCompleted, notification.Data.Reference); err != nil {
			return fmt.Errorf("failed to update payment status: %w", err)
		}

		s.publish(ctx, models.EventPaymentCompleted, models.PaymentCompletedEvent{
			BookingID: booking.ID,
			PaymentID: notification.Data.Reference,
			Reference: booking.ReferenceCode,
			Timestamp: time.Now(),
		})
		metrics.PaymentsTotal.WithLabelValues(models.PaymentCompleted).Inc()

	case notification.Event == "charge.failed" || notification.Data.Status == "failed" || notification.Data.Status == "abandoned":
		if err := s.bookingRepo.UpdatePaymentStatus(ctx, booking.ID, models.PaymentFailed, notification.Data.Reference); err != nil {
			return fmt.Errorf("failed to update payment status: %w", err)
		}

		s.publish(ctx, models.EventPaymentFailed, models.PaymentFailedEvent{
			BookingID: booking.ID,
			PaymentID: notification.Data.Reference,
			Reference: booking.ReferenceCode,
			Reason:    notification.Data.Status,
			Timestamp: time.Now(),
		})
		metrics.PaymentsTotal.WithLabelValues(models.PaymentFailed).Inc()

	default:
		logger.WithContext(ctx).Warn("Ignoring unrecognized payment notification",
			"event", notification.Event,
			"status", notification.Data.Status)
	}

	return nil
}

func (s *BookingService) publish(ctx context.Context, subject string, payload interface{}) {
	if s.natsClient == nil {
		return
	}
	if err := s.natsClient.Publish(subject, payload); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish event",
			"error", err,
			"event_type", subject)
	}
}

func (s *BookingService) index(ctx context.Context, booking *models.Booking) {
	if s.searchClient == nil {
		return
	}
	if err := s.searchClient.IndexBooking(ctx, booking); err != nil {
		logger.WithContext(ctx).Error("Failed to index booking",
			"error", err,
			"booking_id", booking.ID)
	}
}

func stayRoomIDs(stays []models.RoomStay) []int64 {
	ids := make([]int64, len(stays))
	for i, s := range stays {
		ids[i] = s.RoomID
	}
	return ids
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}
