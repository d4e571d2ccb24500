package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeeper/internal/models"
)

func bookingWithStay(created, checkIn, checkOut time.Time) models.Booking {
	return models.Booking{
		CreatedAt: created,
		Stays: []models.RoomStay{
			{CheckIn: checkIn, CheckOut: checkOut},
		},
	}
}

func TestScanThreeBookingsOneStayEach(t *testing.T) {
	created := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		bookingWithStay(created, checkIn, checkOut),
		bookingWithStay(created, checkIn, checkOut),
		bookingWithStay(created, checkIn, checkOut),
	}

	result := Scan(bookings, ScanOptions{Bucketer: Bucketer{Location: time.UTC}})

	assert.Equal(t, 3, result.GuestsByMonth["2024-3"])
	assert.Equal(t, 3, result.GuestsByDay["2024-3-1"])
	assert.Equal(t, 3, result.Bookings)
	assert.Equal(t, 3, result.Stays)
	assert.Equal(t, []float64{3, 3, 3}, result.LengthOfStayDays)

	// Mean is total stay length divided by booking count
	assert.InDelta(t, 3.0, result.MeanLengthOfStay, 1e-9)
	assert.InDelta(t, 10.0, result.MeanLeadTime, 1e-9)
}

func TestScanGuestCountPerStayNotPerBooking(t *testing.T) {
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	booking := models.Booking{
		CreatedAt: created,
		Stays: []models.RoomStay{
			{CheckIn: checkIn, CheckOut: checkOut},
			{CheckIn: checkIn, CheckOut: checkOut},
		},
	}

	result := Scan([]models.Booking{booking}, ScanOptions{Bucketer: Bucketer{Location: time.UTC}})

	// One increment per room stay
	assert.Equal(t, 2, result.GuestsByMonth["2024-3"])
	assert.Equal(t, 1, result.Bookings)
	assert.Equal(t, 2, result.Stays)
}

func TestScanDivisorChoice(t *testing.T) {
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	booking := models.Booking{
		CreatedAt: created,
		Stays: []models.RoomStay{
			{
				CheckIn:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			},
			{
				CheckIn:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	perBooking := Scan([]models.Booking{booking}, ScanOptions{
		Bucketer: Bucketer{Location: time.UTC},
		Divisor:  DivisorPerBooking,
	})
	perStay := Scan([]models.Booking{booking}, ScanOptions{
		Bucketer: Bucketer{Location: time.UTC},
		Divisor:  DivisorPerStay,
	})

	// Sum of stay lengths is 6 days over 1 booking and 2 stays
	assert.InDelta(t, 6.0, perBooking.MeanLengthOfStay, 1e-9)
	assert.InDelta(t, 3.0, perStay.MeanLengthOfStay, 1e-9)
}

func TestScanSkipsInvertedStays(t *testing.T) {
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	booking := models.Booking{
		CreatedAt: created,
		Stays: []models.RoomStay{
			{
				CheckIn:  time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), // inverted
			},
			{}, // missing both endpoints
			{
				CheckIn:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	result := Scan([]models.Booking{booking}, ScanOptions{Bucketer: Bucketer{Location: time.UTC}})

	assert.Equal(t, 2, result.SkippedStays)
	assert.Equal(t, 1, result.Stays)
	assert.Len(t, result.LengthOfStayDays, 1)
}

func TestScanEmptyInput(t *testing.T) {
	result := Scan(nil, ScanOptions{Bucketer: Bucketer{Location: time.UTC}})

	assert.Equal(t, 0, result.Bookings)
	assert.Zero(t, result.MeanLengthOfStay)
	assert.Zero(t, result.MeanLeadTime)
	assert.Empty(t, result.GuestsByMonth)
}
