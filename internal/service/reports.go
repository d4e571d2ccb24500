package service

import (
	"context"
	"fmt"
	"time"

	"innkeeper/internal/models"
	"innkeeper/internal/reporting"
	"innkeeper/internal/repository"
)

type ReportService struct {
	bookingRepo *repository.BookingRepository
	location    *time.Location
}

func NewReportService(bookingRepo *repository.BookingRepository, location *time.Location) *ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportService{
		bookingRepo: bookingRepo,
		location:    location,
	}
}

// BookingAnalytics aggregates every booking into the dashboard's chart
// series. The divisor controls whether stay means are per booking or
// per stay.
func (s *ReportService) BookingAnalytics(ctx context.Context, divisor reporting.MeanDivisor) (*models.BookingAnalyticsResponse, error) {
	bookings, err := s.bookingRepo.ListAllWithStays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	result := reporting.Scan(bookings, reporting.ScanOptions{
		Bucketer: reporting.Bucketer{Location: s.location},
		Divisor:  divisor,
	})

	return &models.BookingAnalyticsResponse{
		GuestsByDay:      result.GuestsByDay,
		GuestsByWeek:     result.GuestsByWeek,
		GuestsByMonth:    result.GuestsByMonth,
		LengthOfStayDays: result.LengthOfStayDays,
		LeadTimeDays:     result.LeadTimeDays,
		MeanLengthOfStay: result.MeanLengthOfStay,
		MeanLeadTime:     result.MeanLeadTime,
		MeanDivisor:      divisor.String(),
		Bookings:         result.Bookings,
		Stays:            result.Stays,
		SkippedStays:     result.SkippedStays,
	}, nil
}
