package integration

import (
	"os"
	"testing"
	"time"

	"innkeeper/internal/models"
)

const defaultBaseURL = "http://localhost:8080"

// newClient builds a client from the environment, skipping the test
// unless INNKEEPER_E2E=1 marks a running stack.
func newClient(t *testing.T) *TestClient {
	if os.Getenv("INNKEEPER_E2E") != "1" {
		t.Skip("Set INNKEEPER_E2E=1 to run against a live server")
	}

	baseURL := os.Getenv("INNKEEPER_E2E_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	// Credentials seeded by cmd/generator
	username := os.Getenv("INNKEEPER_E2E_USER")
	if username == "" {
		username = "admin@innkeeper.local"
	}
	password := os.Getenv("INNKEEPER_E2E_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	return NewTestClient(baseURL, username, password)
}

// FindAvailableRoom finds a room that is free to book
func FindAvailableRoom(rooms []models.RoomResponse) *models.RoomResponse {
	for _, room := range rooms {
		if room.Available {
			return &room
		}
	}
	return nil
}

// NewStay builds a stay input starting the given number of days from now
func NewStay(roomID int64, daysFromNow, nights int) models.StayInput {
	checkIn := time.Now().AddDate(0, 0, daysFromNow).Truncate(24 * time.Hour)
	return models.StayInput{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, nights),
	}
}

// AssertBookingExists checks that a booking appears in the list
func AssertBookingExists(t *testing.T, bookings []models.BookingResponse, bookingID int64) {
	for _, booking := range bookings {
		if booking.ID == bookingID {
			return
		}
	}
	t.Fatalf("Booking with ID %d not found in bookings list", bookingID)
}

// AssertBookingStatus verifies a booking's status
func AssertBookingStatus(t *testing.T, booking *models.BookingResponse, expected string) {
	if booking.Status != expected {
		t.Fatalf("Booking %d has status '%s', expected '%s'", booking.ID, booking.Status, expected)
	}
}

// SuccessNotification builds a charge.success payload for a booking reference
func SuccessNotification(reference string, amount int64) models.PaymentNotificationPayload {
	var payload models.PaymentNotificationPayload
	payload.Event = "charge.success"
	payload.Data.Reference = reference
	payload.Data.Status = "success"
	payload.Data.Amount = amount
	return payload
}

// LogTestStep logs a test step for better debugging
func LogTestStep(t *testing.T, step string, args ...interface{}) {
	t.Logf("🔹 "+step, args...)
}

// LogTestResult logs a test result
func LogTestResult(t *testing.T, result string, args ...interface{}) {
	t.Logf("✅ "+result, args...)
}
