package integration

import (
	"net/http"
	"testing"

	"innkeeper/internal/models"
)

// TestBooking_CashLifecycle walks a cash booking from creation to check-out
func TestBooking_CashLifecycle(t *testing.T) {
	client := newClient(t)

	LogTestStep(t, "Finding an available room")
	rooms := client.ListRooms(t)
	room := FindAvailableRoom(rooms)
	if room == nil {
		t.Skip("No available rooms for booking lifecycle test")
	}

	LogTestStep(t, "Creating cash booking for room %d", room.ID)
	created := client.CreateBooking(t, models.CreateBookingRequest{
		CustomerName:  "Amara Nwosu",
		CustomerEmail: "amara.nwosu@example.com",
		PaymentMode:   "cash",
		Stays:         []models.StayInput{NewStay(room.ID, 1, 2)},
	})
	if created.ReferenceCode == "" {
		t.Fatal("Expected a reference code on the created booking")
	}
	LogTestResult(t, "Booking %d created with reference %s", created.ID, created.ReferenceCode)

	booking := client.GetBooking(t, created.ID)
	AssertBookingStatus(t, booking, "reserved")

	bookings := client.ListBookings(t, "reserved")
	AssertBookingExists(t, bookings, created.ID)

	LogTestStep(t, "Checking booking %d in", created.ID)
	client.CheckInBooking(t, created.ID, http.StatusOK)
	AssertBookingStatus(t, client.GetBooking(t, created.ID), "checkedIn")

	// A second check-in must be rejected
	client.CheckInBooking(t, created.ID, http.StatusConflict)

	LogTestStep(t, "Checking booking %d out", created.ID)
	client.CheckOutBooking(t, created.ID, http.StatusOK)
	AssertBookingStatus(t, client.GetBooking(t, created.ID), "checkedOut")

	// Checked-out bookings cannot be cancelled
	client.CancelBooking(t, created.ID, http.StatusConflict)

	LogTestResult(t, "Cash booking lifecycle completed")
}

// TestBooking_CancelReleasesRoom verifies cancelling frees the room for rebooking
func TestBooking_CancelReleasesRoom(t *testing.T) {
	client := newClient(t)

	rooms := client.ListRooms(t)
	room := FindAvailableRoom(rooms)
	if room == nil {
		t.Skip("No available rooms for cancellation test")
	}

	created := client.CreateBooking(t, models.CreateBookingRequest{
		CustomerName:  "Bola Adesina",
		CustomerEmail: "bola.adesina@example.com",
		PaymentMode:   "cash",
		Stays:         []models.StayInput{NewStay(room.ID, 1, 1)},
	})
	LogTestResult(t, "Booking %d created", created.ID)

	LogTestStep(t, "Cancelling booking %d", created.ID)
	client.CancelBooking(t, created.ID, http.StatusOK)
	AssertBookingStatus(t, client.GetBooking(t, created.ID), "cancelled")

	// Cancelling again must be rejected
	client.CancelBooking(t, created.ID, http.StatusConflict)

	LogTestResult(t, "Cancellation released booking %d", created.ID)
}
