package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlexibleBoolParsesMixedInputs(t *testing.T) {
	cases := []struct {
		input    string
		expected bool
	}{
		{`true`, true},
		{`"true"`, true},
		{`"1"`, true},
		{`"yes"`, true},
		{`"ON"`, true},
		{`false`, false},
		{`"0"`, false},
		{`"off"`, false},
	}

	for _, tc := range cases {
		var fb FlexibleBool
		err := json.Unmarshal([]byte(tc.input), &fb)
		assert.NoError(t, err, "input %s", tc.input)
		assert.Equal(t, tc.expected, fb.Bool(), "input %s", tc.input)
	}
}

func TestFlexibleBoolRejectsGarbage(t *testing.T) {
	var fb FlexibleBool
	err := json.Unmarshal([]byte(`"sometimes"`), &fb)
	assert.Error(t, err)
}

func TestRoomAvailable(t *testing.T) {
	room := Room{Clean: true}
	assert.True(t, room.Available())

	room.Occupied = true
	assert.False(t, room.Available())

	room = Room{Clean: false}
	assert.False(t, room.Available())

	room = Room{Clean: true, Maintenance: true}
	assert.False(t, room.Available())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "15000.00", FormatAmount(1500000))
	assert.Equal(t, "12.34", FormatAmount(1234))
}

func TestStayNights(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	stay := RoomStay{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 3)}
	assert.Equal(t, 3, stay.Nights())

	inverted := RoomStay{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, -2)}
	assert.Negative(t, inverted.Nights())
}

func TestNewBookingResponseDerivedFields(t *testing.T) {
	created := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	booking := &Booking{
		ID:            42,
		ReferenceCode: "BK-ABCD1234",
		CustomerName:  "Amara Nwosu",
		CustomerEmail: "amara@example.com",
		Status:        BookingReserved,
		PaymentMode:   PaymentModeCash,
		PaymentStatus: PaymentPending,
		TotalAmount:   4500000,
		CreatedAt:     created,
		Stays: []RoomStay{
			{ID: 1, RoomID: 7, CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 3), Price: 4500000},
		},
	}

	resp := NewBookingResponse(booking)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "45000.00", resp.TotalAmount)
	assert.Len(t, resp.Stays, 1)
	assert.InDelta(t, 3.0, resp.Stays[0].LengthOfStay, 0.001)
	assert.InDelta(t, 10.0, resp.Stays[0].LeadTime, 0.001)
	assert.Equal(t, "45000.00", resp.Stays[0].Price)
}
