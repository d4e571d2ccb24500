package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"innkeeper/internal/database"
	"innkeeper/internal/external"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

func bookingAt(ref, status string, created time.Time) models.Booking {
	return models.Booking{ReferenceCode: ref, Status: status, CreatedAt: created}
}

func refs(bookings []models.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ReferenceCode
	}
	return out
}

func TestFilterBookingsByStatus(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	input := []models.Booking{
		bookingAt("BK-1", models.BookingReserved, base),
		bookingAt("BK-2", models.BookingCancelled, base.Add(time.Hour)),
		bookingAt("BK-3", models.BookingReserved, base.Add(2*time.Hour)),
	}

	out := filterBookings(input, models.BookingReserved, nil, nil)

	assert.Equal(t, []string{"BK-3", "BK-1"}, refs(out))
}

func TestFilterBookingsByDateRange(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	input := []models.Booking{
		bookingAt("BK-1", models.BookingReserved, base),
		bookingAt("BK-2", models.BookingReserved, base.AddDate(0, 0, 5)),
		bookingAt("BK-3", models.BookingReserved, base.AddDate(0, 0, 10)),
	}

	start := base.AddDate(0, 0, 2)
	end := base.AddDate(0, 0, 7)
	out := filterBookings(input, "", &start, &end)

	assert.Equal(t, []string{"BK-2"}, refs(out))
}

func TestFilterBookingsCombined(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	input := []models.Booking{
		bookingAt("BK-1", models.BookingReserved, base),
		bookingAt("BK-2", models.BookingCancelled, base.AddDate(0, 0, 3)),
		bookingAt("BK-3", models.BookingReserved, base.AddDate(0, 0, 4)),
		bookingAt("BK-4", models.BookingReserved, base.AddDate(0, 0, 20)),
	}

	start := base.AddDate(0, 0, 1)
	end := base.AddDate(0, 0, 10)
	out := filterBookings(input, models.BookingReserved, &start, &end)

	assert.Equal(t, []string{"BK-3"}, refs(out))
}

func TestFilterBookingsOrdersNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	// Relevance-ordered search hits come back in creation order
	input := []models.Booking{
		bookingAt("BK-1", models.BookingReserved, base),
		bookingAt("BK-3", models.BookingReserved, base.Add(3*time.Hour)),
		bookingAt("BK-2", models.BookingReserved, base.Add(time.Hour)),
	}

	out := filterBookings(input, "", nil, nil)

	assert.Equal(t, []string{"BK-3", "BK-2", "BK-1"}, refs(out))
}

// A gateway failure while extending must leave the stay untouched, so
// the payment is initialized before anything is written. The mock has
// no UPDATE expectations; any write would fail the test.
func TestExtendStayGatewayFailureLeavesStayUnchanged(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer mockDB.Close()

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer gateway.Close()

	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	bookingCols := []string{"id", "reference_code", "customer_name", "customer_email",
		"customer_phone", "customer_address", "status", "payment_mode", "payment_status",
		"total_amount", "payment_id", "order_id", "created_at", "updated_at"}
	stayCols := []string{"id", "booking_id", "room_id", "check_in", "check_out", "price", "created_at"}

	mock.ExpectQuery(`FROM bookings WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(int64(1), "BK-2026-0001", "Amara Nwosu", "amara@example.com",
				nil, nil, models.BookingReserved, models.PaymentModePaystack, models.PaymentInitiated,
				int64(30000), nil, nil, now, now))
	mock.ExpectQuery(`FROM room_stays\s+WHERE booking_id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(stayCols).
			AddRow(int64(7), int64(1), int64(3), checkIn, checkOut, int64(30000), now))
	mock.ExpectQuery(`FROM booking_charges`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "description", "amount", "created_at"}))
	mock.ExpectQuery(`FROM room_stays\s+WHERE id`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(stayCols).
			AddRow(int64(7), int64(1), int64(3), checkIn, checkOut, int64(30000), now))

	bookingRepo := repository.NewBookingRepository(&database.DB{DB: mockDB})
	paystack := external.NewPaystackClient(external.PaystackConfig{BaseURL: gateway.URL, SecretKey: "sk_test"})
	svc := NewBookingService(bookingRepo, nil, nil, paystack, nil, nil, "http://localhost/callback")

	_, err = svc.ExtendStay(context.Background(), &models.ExtendStayRequest{
		BookingID:   1,
		StayID:      7,
		NewCheckOut: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorContains(t, err, "failed to initialize extension payment")
	assert.NoError(t, mock.ExpectationsWereMet())
}
