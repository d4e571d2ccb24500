package models

import "time"

// NATS subjects
const (
	EventBookingCreated    = "booking.created"
	EventBookingCancelled  = "booking.cancelled"
	EventBookingCheckedIn  = "booking.checked_in"
	EventBookingCheckedOut = "booking.checked_out"
	EventBookingExtended   = "booking.extended"
	EventPaymentInitiated  = "payment.initiated"
	EventPaymentCompleted  = "payment.completed"
	EventPaymentFailed     = "payment.failed"
	EventTaskCreated       = "task.created"
	EventMaintenanceOpened = "maintenance.reported"
)

// BookingCreatedEvent represents a booking creation event
type BookingCreatedEvent struct {
	BookingID     int64     `json:"booking_id"`
	ReferenceCode string    `json:"reference_code"`
	RoomIDs       []int64   `json:"room_ids"`
	Timestamp     time.Time `json:"timestamp"`
}

// BookingCancelledEvent represents a booking cancellation event
type BookingCancelledEvent struct {
	BookingID int64     `json:"booking_id"`
	RoomIDs   []int64   `json:"room_ids"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCheckedInEvent represents a completed check-in
type BookingCheckedInEvent struct {
	BookingID int64     `json:"booking_id"`
	RoomIDs   []int64   `json:"room_ids"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCheckedOutEvent represents a completed check-out
type BookingCheckedOutEvent struct {
	BookingID int64     `json:"booking_id"`
	RoomIDs   []int64   `json:"room_ids"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingExtendedEvent represents an extend-stay action
type BookingExtendedEvent struct {
	BookingID   int64     `json:"booking_id"`
	StayID      int64     `json:"stay_id"`
	NewCheckOut time.Time `json:"new_check_out"`
	Timestamp   time.Time `json:"timestamp"`
}

// PaymentInitiatedEvent represents a payment initiation event
type PaymentInitiatedEvent struct {
	BookingID   int64     `json:"booking_id"`
	TotalAmount int64     `json:"total_amount"`
	PaymentID   string    `json:"payment_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// PaymentCompletedEvent represents a successful payment event
type PaymentCompletedEvent struct {
	BookingID int64     `json:"booking_id"`
	PaymentID string    `json:"payment_id"`
	Reference string    `json:"reference"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentFailedEvent represents a failed payment event
type PaymentFailedEvent struct {
	BookingID int64     `json:"booking_id"`
	PaymentID string    `json:"payment_id"`
	Reference string    `json:"reference"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// TaskCreatedEvent represents a new housekeeping task
type TaskCreatedEvent struct {
	TaskID    int64     `json:"task_id"`
	RoomID    int64     `json:"room_id"`
	Priority  string    `json:"priority"`
	Timestamp time.Time `json:"timestamp"`
}

// MaintenanceOpenedEvent represents a new maintenance request
type MaintenanceOpenedEvent struct {
	RequestID int64     `json:"request_id"`
	RoomID    int64     `json:"room_id"`
	Subject   string    `json:"subject"`
	Priority  string    `json:"priority"`
	Timestamp time.Time `json:"timestamp"`
}
