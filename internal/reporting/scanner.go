package reporting

import (
	"innkeeper/internal/models"
)

// MeanDivisor selects what the stay metric sums are divided by.
// The dashboard historically divided by booking count even for
// multi-stay bookings; the divisor is explicit here so callers
// state which average they want.
type MeanDivisor int

const (
	DivisorPerBooking MeanDivisor = iota
	DivisorPerStay
)

func (d MeanDivisor) String() string {
	if d == DivisorPerStay {
		return "stay"
	}
	return "booking"
}

// ScanOptions configures a booking scan
type ScanOptions struct {
	Bucketer Bucketer
	Divisor  MeanDivisor
}

// ScanResult holds the aggregates produced by one pass over all bookings
type ScanResult struct {
	GuestsByDay   map[string]int
	GuestsByWeek  map[string]int
	GuestsByMonth map[string]int

	// Per-stay series, in input order, passed through for charting
	LengthOfStayDays []float64
	LeadTimeDays     []float64

	MeanLengthOfStay float64
	MeanLeadTime     float64

	Bookings     int
	Stays        int
	SkippedStays int
}

// Scan iterates all bookings and their nested room stays, computing
// per-stay length of stay and lead time and accumulating per-bucket
// counts keyed by check-in date. Guest counts increment once per room
// stay, not once per booking. Stays with an inverted date range are
// skipped and tallied instead of poisoning the series.
func Scan(bookings []models.Booking, opts ScanOptions) ScanResult {
	result := ScanResult{
		GuestsByDay:   make(map[string]int),
		GuestsByWeek:  make(map[string]int),
		GuestsByMonth: make(map[string]int),
		Bookings:      len(bookings),
	}

	var losSum, leadSum float64

	for _, booking := range bookings {
		for _, stay := range booking.Stays {
			if stay.CheckIn.IsZero() || stay.CheckOut.IsZero() || stay.CheckOut.Before(stay.CheckIn) {
				result.SkippedStays++
				continue
			}

			keys := opts.Bucketer.Keys(stay.CheckIn)
			result.GuestsByDay[keys.Day]++
			result.GuestsByWeek[keys.Week]++
			result.GuestsByMonth[keys.Month]++

			los := stay.CheckOut.Sub(stay.CheckIn).Hours() / 24
			lead := stay.CheckIn.Sub(booking.CreatedAt).Hours() / 24

			result.LengthOfStayDays = append(result.LengthOfStayDays, los)
			result.LeadTimeDays = append(result.LeadTimeDays, lead)
			losSum += los
			leadSum += lead
			result.Stays++
		}
	}

	divisor := result.Bookings
	if opts.Divisor == DivisorPerStay {
		divisor = result.Stays
	}

	if divisor > 0 {
		result.MeanLengthOfStay = losSum / float64(divisor)
		result.MeanLeadTime = leadSum / float64(divisor)
	}

	return result
}
