package service

import (
	"time"

	"innkeeper/internal/cache"
	"innkeeper/internal/external"
	"innkeeper/internal/messaging"
	"innkeeper/internal/repository"
	"innkeeper/internal/search"
)

type Services struct {
	Bookings     *BookingService
	Rooms        *RoomService
	Housekeeping *HousekeepingService
	Maintenance  *MaintenanceService
	Complaints   *ComplaintService
	Inventory    *InventoryService
	Invoices     *InvoiceService
	Users        *UserService
	Reports      *ReportService
}

// Deps carries the infrastructure clients the services are wired with.
// Search and Cache may be nil; the services degrade to Postgres-only paths.
type Deps struct {
	Repos          *repository.Repositories
	NATS           *messaging.Client
	Paystack       *external.PaystackClient
	Search         *search.ElasticsearchClient
	Cache          *cache.Client
	CallbackURL    string
	ReportLocation *time.Location
}

func NewServices(deps Deps) *Services {
	return &Services{
		Bookings:     NewBookingService(deps.Repos.Bookings, deps.Repos.Rooms, deps.Repos.RoomTypes, deps.Paystack, deps.NATS, deps.Search, deps.CallbackURL),
		Rooms:        NewRoomService(deps.Repos.Rooms, deps.Repos.RoomTypes, deps.Cache),
		Housekeeping: NewHousekeepingService(deps.Repos.Tasks, deps.Repos.Rooms, deps.NATS),
		Maintenance:  NewMaintenanceService(deps.Repos.Maintenance, deps.Repos.Rooms, deps.NATS),
		Complaints:   NewComplaintService(deps.Repos.Complaints),
		Inventory:    NewInventoryService(deps.Repos.Inventory),
		Invoices:     NewInvoiceService(deps.Repos.Invoices, deps.Repos.Bookings),
		Users:        NewUserService(deps.Repos.Users, deps.Cache),
		Reports:      NewReportService(deps.Repos.Bookings, deps.ReportLocation),
	}
}
