package integration

import (
	"testing"

	"innkeeper/internal/models"
)

// TestPayment_WebhookCompletesPaystackBooking drives a paystack booking
// through the gateway notification path.
func TestPayment_WebhookCompletesPaystackBooking(t *testing.T) {
	client := newClient(t)

	rooms := client.ListRooms(t)
	room := FindAvailableRoom(rooms)
	if room == nil {
		t.Skip("No available rooms for payment test")
	}

	LogTestStep(t, "Creating paystack booking for room %d", room.ID)
	created := client.CreateBooking(t, models.CreateBookingRequest{
		CustomerName:  "Chinedu Obi",
		CustomerEmail: "chinedu.obi@example.com",
		PaymentMode:   "paystack",
		Stays:         []models.StayInput{NewStay(room.ID, 1, 2)},
	})

	booking := client.GetBooking(t, created.ID)
	if booking.PaymentStatus == models.PaymentCompleted {
		t.Fatalf("Booking %d should not start out paid", created.ID)
	}

	LogTestStep(t, "Sending charge.success notification for %s", created.ReferenceCode)
	client.SendPaymentNotification(t, SuccessNotification(created.ReferenceCode, 0))

	booking = client.GetBooking(t, created.ID)
	if booking.PaymentStatus != models.PaymentCompleted {
		t.Fatalf("Expected payment status %s after webhook, got %s", models.PaymentCompleted, booking.PaymentStatus)
	}

	LogTestResult(t, "Webhook marked booking %d as paid", created.ID)
}

// TestPayment_UnknownReferenceRetried verifies the webhook rejects
// references it cannot match, so the gateway retries later.
func TestPayment_UnknownReferenceRetried(t *testing.T) {
	client := newClient(t)

	payload := SuccessNotification("BK-DOESNOTEXIST", 0)

	resp := client.makeRequest(t, "POST", "/api/payments/notifications", payload)
	defer resp.Body.Close()

	if resp.StatusCode < 400 {
		t.Fatalf("Expected an error status for an unknown reference, got %d", resp.StatusCode)
	}

	LogTestResult(t, "Unknown reference rejected with status %d", resp.StatusCode)
}
