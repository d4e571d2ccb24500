package integration

import (
	"testing"
)

// TestAPI_HealthCheck tests the API health endpoint
func TestAPI_HealthCheck(t *testing.T) {
	client := newClient(t)

	LogTestStep(t, "Testing API health check")
	client.HealthCheck(t)
	LogTestResult(t, "API is healthy and responding")
}

// TestAPI_ListRooms tests listing rooms
func TestAPI_ListRooms(t *testing.T) {
	client := newClient(t)

	LogTestStep(t, "Testing room listing")

	rooms := client.ListRooms(t)
	if len(rooms) == 0 {
		t.Fatal("Expected at least one room, run cmd/generator to seed the database")
	}

	LogTestResult(t, "Found %d rooms", len(rooms))
}

// TestAPI_BookingAnalytics tests the statistics report endpoint
func TestAPI_BookingAnalytics(t *testing.T) {
	client := newClient(t)

	LogTestStep(t, "Testing booking analytics report")

	perBooking := client.BookingAnalytics(t, "booking")
	if perBooking.MeanDivisor != "booking" {
		t.Fatalf("Expected mean_divisor 'booking', got '%s'", perBooking.MeanDivisor)
	}

	perStay := client.BookingAnalytics(t, "stay")
	if perStay.MeanDivisor != "stay" {
		t.Fatalf("Expected mean_divisor 'stay', got '%s'", perStay.MeanDivisor)
	}

	// Both runs scan the same bookings
	if perBooking.Bookings != perStay.Bookings {
		t.Fatalf("Booking counts differ between divisors: %d vs %d", perBooking.Bookings, perStay.Bookings)
	}

	LogTestResult(t, "Analytics computed over %d bookings, %d stays", perBooking.Bookings, perBooking.Stays)
}
