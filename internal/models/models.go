package models

import (
	"fmt"
	"strings"
	"time"
)

// FlexibleBool parses boolean flags sent as strings or numbers by older dashboard builds
type FlexibleBool bool

// UnmarshalJSON supports parsing booleans from strings, numbers and booleans
func (fb *FlexibleBool) UnmarshalJSON(data []byte) error {
	str := string(data)
	str = strings.Trim(str, `"`)

	switch strings.ToLower(str) {
	case "true", "1", "yes", "on":
		*fb = true
	case "false", "0", "no", "off":
		*fb = false
	default:
		return fmt.Errorf("invalid boolean value: %s", str)
	}
	return nil
}

// Bool returns the bool value
func (fb FlexibleBool) Bool() bool {
	return bool(fb)
}

// StayInput - one room stay inside a create/extend request
type StayInput struct {
	RoomID   int64     `json:"room_id" binding:"required"`
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
	Price    *int64    `json:"price"` // Defaults to room-type price * nights when absent
}

// ChargeInput - one extra line item inside a create request
type ChargeInput struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
}

// CreateBookingRequest - request model for creating a booking
type CreateBookingRequest struct {
	CustomerName    string        `json:"customer_name" binding:"required"`
	CustomerEmail   string        `json:"customer_email" binding:"required,email"`
	CustomerPhone   *string       `json:"customer_phone"`
	CustomerAddress *string       `json:"customer_address"`
	PaymentMode     string        `json:"payment_mode" binding:"omitempty,oneof=cash card paystack"`
	Stays           []StayInput   `json:"stays" binding:"required,min=1,dive"`
	Charges         []ChargeInput `json:"charges" binding:"omitempty,dive"`
}

// CreateBookingResponse - response model for booking creation
type CreateBookingResponse struct {
	ID            int64  `json:"id"`
	ReferenceCode string `json:"reference_code"`
	PaystackURL   string `json:"paystackUrl,omitempty"`
}

// UpdateBookingRequest - request model for editing booking customer fields
type UpdateBookingRequest struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerEmail   string  `json:"customer_email" binding:"required,email"`
	CustomerPhone   *string `json:"customer_phone"`
	CustomerAddress *string `json:"customer_address"`
}

// StayResponse - one room stay with its derived fields
type StayResponse struct {
	ID           int64     `json:"id"`
	RoomID       int64     `json:"room_id"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Price        string    `json:"price"`
	LengthOfStay float64   `json:"length_of_stay_days"`
	LeadTime     float64   `json:"lead_time_days"`
}

// BookingResponse - the single booking shape returned by every endpoint
type BookingResponse struct {
	ID              int64           `json:"id"`
	ReferenceCode   string          `json:"reference_code"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   *string         `json:"customer_phone,omitempty"`
	CustomerAddress *string         `json:"customer_address,omitempty"`
	Status          string          `json:"status"`
	PaymentMode     string          `json:"payment_mode"`
	PaymentStatus   string          `json:"payment_status"`
	TotalAmount     string          `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	Stays           []StayResponse  `json:"stays"`
	Charges         []BookingCharge `json:"charges,omitempty"`
}

// NewBookingResponse maps a booking entity to its response shape.
// All call sites go through here so the derived fields cannot drift apart.
func NewBookingResponse(b *Booking) BookingResponse {
	stays := make([]StayResponse, len(b.Stays))
	for i, s := range b.Stays {
		stays[i] = StayResponse{
			ID:           s.ID,
			RoomID:       s.RoomID,
			CheckIn:      s.CheckIn,
			CheckOut:     s.CheckOut,
			Price:        FormatAmount(s.Price),
			LengthOfStay: s.CheckOut.Sub(s.CheckIn).Hours() / 24,
			LeadTime:     s.CheckIn.Sub(b.CreatedAt).Hours() / 24,
		}
	}

	return BookingResponse{
		ID:              b.ID,
		ReferenceCode:   b.ReferenceCode,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		CustomerAddress: b.CustomerAddress,
		Status:          b.Status,
		PaymentMode:     b.PaymentMode,
		PaymentStatus:   b.PaymentStatus,
		TotalAmount:     FormatAmount(b.TotalAmount),
		CreatedAt:       b.CreatedAt,
		Stays:           stays,
		Charges:         b.Charges,
	}
}

// FormatAmount renders a minor-unit amount as a decimal string
func FormatAmount(amount int64) string {
	return fmt.Sprintf("%.2f", float64(amount)/100.0)
}

// CancelBookingRequest - request model for cancelling a booking
type CancelBookingRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

// CheckInRequest - request model for checking a booking in
type CheckInRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

// CheckOutRequest - request model for checking a booking out
type CheckOutRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

// ExtendStayRequest - request model for extending one stay of a booking
type ExtendStayRequest struct {
	BookingID   int64     `json:"booking_id" binding:"required"`
	StayID      int64     `json:"stay_id" binding:"required"`
	NewCheckOut time.Time `json:"new_check_out" binding:"required"`
}

// ExtendStayResponse - response model for an extend-stay action
type ExtendStayResponse struct {
	Booking     BookingResponse `json:"booking"`
	PaystackURL string          `json:"paystackUrl,omitempty"`
}

// CreateRoomRequest - request model for creating a room
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
	Floor      int    `json:"floor"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
}

// UpdateRoomStatusRequest - request model for flipping room flags
type UpdateRoomStatusRequest struct {
	Occupied    *FlexibleBool `json:"occupied"`
	Clean       *FlexibleBool `json:"clean"`
	Maintenance *FlexibleBool `json:"maintenance"`
}

// RoomResponse - a room with its derived availability
type RoomResponse struct {
	Room
	Available bool `json:"available"`
}

// NewRoomResponse maps a room entity including derived availability
func NewRoomResponse(r *Room) RoomResponse {
	return RoomResponse{Room: *r, Available: r.Available()}
}

// CreateRoomTypeRequest - request model for creating a room type
type CreateRoomTypeRequest struct {
	Title        string   `json:"title" binding:"required"`
	Price        int64    `json:"price" binding:"required"`
	MaxOccupancy int      `json:"max_occupancy" binding:"required,min=1"`
	Description  *string  `json:"description"`
	Images       []string `json:"images"`
}

// CreateTaskRequest - request model for creating a housekeeping task
type CreateTaskRequest struct {
	RoomID     int64      `json:"room_id" binding:"required"`
	Status     string     `json:"status" binding:"omitempty,oneof=dirty cleaned inspected"`
	Priority   string     `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	AssigneeID *int64     `json:"assignee_id"`
	DueDate    *time.Time `json:"due_date"`
}

// UpdateTaskRequest - request model for updating a housekeeping task
type UpdateTaskRequest struct {
	Status     string     `json:"status" binding:"omitempty,oneof=dirty cleaned inspected"`
	Priority   string     `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	AssigneeID *int64     `json:"assignee_id"`
	DueDate    *time.Time `json:"due_date"`
}

// CreateTaskIssueRequest - request model for reporting an issue on a task
type CreateTaskIssueRequest struct {
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
}

// CreateMaintenanceRequest - request model for opening a maintenance request
type CreateMaintenanceRequest struct {
	RoomID     int64      `json:"room_id" binding:"required"`
	Subject    string     `json:"subject" binding:"required"`
	Progress   *string    `json:"progress"`
	Priority   string     `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	AssigneeID *int64     `json:"assignee_id"`
	DueDate    *time.Time `json:"due_date"`
}

// UpdateMaintenanceRequest - request model for progressing a maintenance request
type UpdateMaintenanceRequest struct {
	Progress   *string    `json:"progress"`
	Priority   string     `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	AssigneeID *int64     `json:"assignee_id"`
	DueDate    *time.Time `json:"due_date"`
	Resolved   *bool      `json:"resolved"`
}

// CreateComplaintRequest - request model for filing a complaint
type CreateComplaintRequest struct {
	Subject     string   `json:"subject" binding:"required"`
	Description *string  `json:"description"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Category    *string  `json:"category"`
	Images      []string `json:"images"`
}

// UpdateComplaintRequest - request model for updating a complaint
type UpdateComplaintRequest struct {
	Subject     string   `json:"subject" binding:"required"`
	Description *string  `json:"description"`
	Status      string   `json:"status" binding:"omitempty,oneof=open in-progress resolved closed"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Category    *string  `json:"category"`
	Images      []string `json:"images"`
}

// CreateInventoryItemRequest - request model for adding an inventory item
type CreateInventoryItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	Category     *string `json:"category"`
	Quantity     int     `json:"quantity" binding:"min=0"`
	UnitPrice    int64   `json:"unit_price" binding:"min=0"`
	ReorderLevel int     `json:"reorder_level" binding:"min=0"`
}

// InvoiceItemInput - one invoice line in a create request
type InvoiceItemInput struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity" binding:"omitempty,min=1"`
	Amount      int64  `json:"amount" binding:"required"`
}

// CreateInvoiceRequest - request model for creating an invoice
type CreateInvoiceRequest struct {
	BookingID    *int64             `json:"booking_id"`
	CustomerName string             `json:"customer_name" binding:"required"`
	Items        []InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest - request model for changing invoice status
type UpdateInvoiceRequest struct {
	Status string `json:"status" binding:"required,oneof=draft issued paid void"`
}

// CreateUserRequest - request model for creating a staff account
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=admin manager staff housekeeping maintenance"`
}

// UpdateUserRequest - request model for editing a staff account. The
// password is optional and replaces the stored hash when present.
type UpdateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=admin manager staff housekeeping maintenance"`
}

// PaymentNotificationPayload - webhook payload from the payment gateway
type PaymentNotificationPayload struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

// BookingAnalyticsResponse - aggregated booking statistics for the dashboard charts
type BookingAnalyticsResponse struct {
	GuestsByDay      map[string]int `json:"guests_by_day"`
	GuestsByWeek     map[string]int `json:"guests_by_week"`
	GuestsByMonth    map[string]int `json:"guests_by_month"`
	LengthOfStayDays []float64      `json:"length_of_stay_days"`
	LeadTimeDays     []float64      `json:"lead_time_days"`
	MeanLengthOfStay float64        `json:"mean_length_of_stay"`
	MeanLeadTime     float64        `json:"mean_lead_time"`
	MeanDivisor      string         `json:"mean_divisor"`
	Bookings         int            `json:"bookings"`
	Stays            int            `json:"stays"`
	SkippedStays     int            `json:"skipped_stays"`
}
