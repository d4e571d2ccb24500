package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"innkeeper/internal/models"
)

// Validator smoke-checks a running API instance endpoint by endpoint
type Validator struct {
	baseURL  string
	username string
	password string
}

// NewValidator creates a new validator
func NewValidator(baseURL, username, password string) *Validator {
	return &Validator{baseURL: baseURL, username: username, password: password}
}

// ValidateAll checks all endpoint groups against a live server
func (v *Validator) ValidateAll() error {
	log.Println("Starting API validation...")

	if err := v.validateHealth(); err != nil {
		return fmt.Errorf("Health validation failed: %w", err)
	}

	if err := v.validateRooms(); err != nil {
		return fmt.Errorf("Rooms validation failed: %w", err)
	}

	if err := v.validateBookings(); err != nil {
		return fmt.Errorf("Bookings validation failed: %w", err)
	}

	if err := v.validateReports(); err != nil {
		return fmt.Errorf("Reports validation failed: %w", err)
	}

	log.Println("✅ All endpoints validated successfully")
	return nil
}

func (v *Validator) validateHealth() error {
	log.Println("Checking health endpoint...")

	resp, err := v.makeRequest("GET", "/health", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /health: expected 200, got %d", resp.StatusCode)
	}

	log.Println("✅ Health endpoint OK")
	return nil
}

func (v *Validator) validateRooms() error {
	log.Println("Checking Rooms endpoints...")

	// GET /api/room
	resp, err := v.makeRequest("GET", "/api/room", nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /api/room: expected 200, got %d", resp.StatusCode)
	}

	var rooms []models.RoomResponse
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return fmt.Errorf("GET /api/room: failed to decode response: %w", err)
	}
	resp.Body.Close()

	if len(rooms) == 0 {
		return fmt.Errorf("GET /api/room: expected non-empty list, seed the database first")
	}

	// GET /api/room/board
	resp, err = v.makeRequest("GET", "/api/room/board", nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /api/room/board: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// GET /api/roomType
	resp, err = v.makeRequest("GET", "/api/roomType", nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /api/roomType: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	log.Println("✅ Rooms endpoints valid")
	return nil
}

func (v *Validator) validateBookings() error {
	log.Println("Checking Bookings endpoints...")

	// Find a bookable room first
	resp, err := v.makeRequest("GET", "/api/room", nil)
	if err != nil {
		return err
	}

	var rooms []models.RoomResponse
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return fmt.Errorf("GET /api/room: failed to decode response: %w", err)
	}
	resp.Body.Close()

	var roomID int64
	for _, room := range rooms {
		if room.Available {
			roomID = room.ID
			break
		}
	}
	if roomID == 0 {
		return fmt.Errorf("no available room to create a validation booking")
	}

	// POST /api/booking
	checkIn := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	reqBody := models.CreateBookingRequest{
		CustomerName:  "Validation Guest",
		CustomerEmail: "validation@example.com",
		PaymentMode:   models.PaymentModeCash,
		Stays: []models.StayInput{
			{RoomID: roomID, CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1)},
		},
	}

	resp, err = v.makeRequest("POST", "/api/booking", reqBody)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST /api/booking: expected 201, got %d", resp.StatusCode)
	}

	var createResp models.CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&createResp); err != nil {
		return fmt.Errorf("POST /api/booking: failed to decode response: %w", err)
	}
	resp.Body.Close()

	if createResp.ID == 0 {
		return fmt.Errorf("POST /api/booking: expected non-zero ID")
	}

	// GET /api/booking
	resp, err = v.makeRequest("GET", "/api/booking", nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /api/booking: expected 200, got %d", resp.StatusCode)
	}

	var listResp []models.BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return fmt.Errorf("GET /api/booking: failed to decode response: %w", err)
	}
	resp.Body.Close()

	if len(listResp) == 0 {
		return fmt.Errorf("GET /api/booking: expected non-empty list")
	}

	// GET /api/booking/:id
	resp, err = v.makeRequest("GET", fmt.Sprintf("/api/booking/%d", createResp.ID), nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /api/booking/%d: expected 200, got %d", createResp.ID, resp.StatusCode)
	}
	resp.Body.Close()

	// PATCH /api/booking/cancel cleans up the validation booking
	cancelReq := models.CancelBookingRequest{
		BookingID: createResp.ID,
	}

	resp, err = v.makeRequest("PATCH", "/api/booking/cancel", cancelReq)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PATCH /api/booking/cancel: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	log.Println("✅ Bookings endpoints valid")
	return nil
}

func (v *Validator) validateReports() error {
	log.Println("Checking Reports endpoints...")

	resp, err := v.makeRequest("GET", "/api/analytics/bookings?meanDivisor=booking", nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /api/analytics/bookings: expected 200, got %d", resp.StatusCode)
	}

	var report models.BookingAnalyticsResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return fmt.Errorf("GET /api/analytics/bookings: failed to decode response: %w", err)
	}
	resp.Body.Close()

	if report.MeanDivisor != "booking" {
		return fmt.Errorf("GET /api/analytics/bookings: expected mean_divisor 'booking', got %q", report.MeanDivisor)
	}

	log.Println("✅ Reports endpoints valid")
	return nil
}

func (v *Validator) makeRequest(method, path string, body interface{}) (*http.Response, error) {
	var req *http.Request
	var err error

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		req, err = http.NewRequest(method, v.baseURL+path, bytes.NewBuffer(jsonBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequest(method, v.baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
	}

	if v.username != "" {
		req.SetBasicAuth(v.username, v.password)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	return resp, nil
}
