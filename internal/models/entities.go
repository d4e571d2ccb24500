package models

import (
	"time"
)

// Booking statuses as the dashboard consumes them
const (
	BookingReserved   = "reserved"
	BookingCheckedIn  = "checkedIn"
	BookingCheckedOut = "checkedOut"
	BookingCancelled  = "cancelled"
)

// Payment modes
const (
	PaymentModeCash     = "cash"
	PaymentModeCard     = "card"
	PaymentModePaystack = "paystack"
)

// Payment statuses, uppercase to match what the gateway reports
const (
	PaymentPending   = "PENDING"
	PaymentInitiated = "INITIATED"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentCancelled = "CANCELLED"
)

// Housekeeping task statuses
const (
	TaskDirty     = "dirty"
	TaskCleaned   = "cleaned"
	TaskInspected = "inspected"
)

// Priorities shared by tasks, maintenance requests and complaints
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// User represents a staff account
type User struct {
	UserID       int64     `json:"user_id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	Surname      string    `json:"surname" db:"surname"`
	Role         string    `json:"role" db:"role"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	LastLoggedIn time.Time `json:"last_logged_in" db:"last_logged_in"`
}

// RoomType represents a bookable category of rooms
type RoomType struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Price        int64     `json:"price" db:"price"`
	MaxOccupancy int       `json:"max_occupancy" db:"max_occupancy"`
	Description  *string   `json:"description" db:"description"`
	Images       []string  `json:"images" db:"images"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Room represents a physical room
type Room struct {
	ID          int64     `json:"id" db:"id"`
	RoomNumber  string    `json:"room_number" db:"room_number"`
	Floor       int       `json:"floor" db:"floor"`
	RoomTypeID  int64     `json:"room_type_id" db:"room_type_id"`
	Occupied    bool      `json:"occupied" db:"occupied"`
	Clean       bool      `json:"clean" db:"clean"`
	Maintenance bool      `json:"maintenance" db:"maintenance"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Available derives availability the way the dashboard does
func (r *Room) Available() bool {
	return !r.Occupied && r.Clean && !r.Maintenance
}

// Booking represents a reservation with its nested room stays
type Booking struct {
	ID              int64     `json:"id" db:"id"`
	ReferenceCode   string    `json:"reference_code" db:"reference_code"`
	CustomerName    string    `json:"customer_name" db:"customer_name"`
	CustomerEmail   string    `json:"customer_email" db:"customer_email"`
	CustomerPhone   *string   `json:"customer_phone" db:"customer_phone"`
	CustomerAddress *string   `json:"customer_address" db:"customer_address"`
	Status          string    `json:"status" db:"status"`
	PaymentMode     string    `json:"payment_mode" db:"payment_mode"`
	PaymentStatus   string    `json:"payment_status" db:"payment_status"`
	TotalAmount     int64     `json:"total_amount" db:"total_amount"`
	PaymentID       *string   `json:"payment_id" db:"payment_id"`
	OrderID         *string   `json:"order_id" db:"order_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`

	Stays   []RoomStay      `json:"stays,omitempty"`   // Not from the bookings table, filled separately
	Charges []BookingCharge `json:"charges,omitempty"` // Not from the bookings table, filled separately
}

// RoomStay is one room occupied over one date range inside a booking
type RoomStay struct {
	ID        int64     `json:"id" db:"id"`
	BookingID int64     `json:"booking_id" db:"booking_id"`
	RoomID    int64     `json:"room_id" db:"room_id"`
	CheckIn   time.Time `json:"check_in" db:"check_in"`
	CheckOut  time.Time `json:"check_out" db:"check_out"`
	Price     int64     `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Nights returns the length of stay in whole days, negative if the range is inverted
func (s *RoomStay) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// BookingCharge is an additional line item attached to a booking
type BookingCharge struct {
	ID          int64     `json:"id" db:"id"`
	BookingID   int64     `json:"booking_id" db:"booking_id"`
	Description string    `json:"description" db:"description"`
	Amount      int64     `json:"amount" db:"amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// HousekeepingTask represents a cleaning task for a room
type HousekeepingTask struct {
	ID         int64      `json:"id" db:"id"`
	RoomID     int64      `json:"room_id" db:"room_id"`
	Status     string     `json:"status" db:"status"`
	Priority   string     `json:"priority" db:"priority"`
	AssigneeID *int64     `json:"assignee_id" db:"assignee_id"`
	DueDate    *time.Time `json:"due_date" db:"due_date"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`

	Issues []TaskIssue `json:"issues,omitempty"` // Filled separately
}

// TaskIssue is a reported problem attached to a housekeeping task
type TaskIssue struct {
	ID          int64     `json:"id" db:"id"`
	TaskID      int64     `json:"task_id" db:"task_id"`
	Description string    `json:"description" db:"description"`
	Priority    string    `json:"priority" db:"priority"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MaintenanceRequest represents a repair request for a room
type MaintenanceRequest struct {
	ID         int64      `json:"id" db:"id"`
	RoomID     int64      `json:"room_id" db:"room_id"`
	Subject    string     `json:"subject" db:"subject"`
	Progress   *string    `json:"progress" db:"progress"`
	Priority   string     `json:"priority" db:"priority"`
	AssigneeID *int64     `json:"assignee_id" db:"assignee_id"`
	DueDate    *time.Time `json:"due_date" db:"due_date"`
	Resolved   bool       `json:"resolved" db:"resolved"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// Complaint represents a guest complaint or product report
type Complaint struct {
	ID          int64     `json:"id" db:"id"`
	Subject     string    `json:"subject" db:"subject"`
	Description *string   `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Priority    string    `json:"priority" db:"priority"`
	Category    *string   `json:"category" db:"category"`
	Images      []string  `json:"images" db:"images"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// InventoryItem represents a stocked product
type InventoryItem struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Category     *string   `json:"category" db:"category"`
	Quantity     int       `json:"quantity" db:"quantity"`
	UnitPrice    int64     `json:"unit_price" db:"unit_price"`
	ReorderLevel int       `json:"reorder_level" db:"reorder_level"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Invoice represents a bill, optionally tied to a booking
type Invoice struct {
	ID           int64      `json:"id" db:"id"`
	BookingID    *int64     `json:"booking_id" db:"booking_id"`
	CustomerName string     `json:"customer_name" db:"customer_name"`
	Status       string     `json:"status" db:"status"`
	TotalAmount  int64      `json:"total_amount" db:"total_amount"`
	IssuedAt     *time.Time `json:"issued_at" db:"issued_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`

	Items []InvoiceItem `json:"items,omitempty"` // Filled separately
}

// InvoiceItem is one line on an invoice
type InvoiceItem struct {
	ID          int64     `json:"id" db:"id"`
	InvoiceID   int64     `json:"invoice_id" db:"invoice_id"`
	Description string    `json:"description" db:"description"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Amount      int64     `json:"amount" db:"amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
