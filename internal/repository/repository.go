package repository

import (
	"innkeeper/internal/database"
)

type Repositories struct {
	Bookings    *BookingRepository
	Rooms       *RoomRepository
	RoomTypes   *RoomTypeRepository
	Tasks       *TaskRepository
	Maintenance *MaintenanceRepository
	Complaints  *ComplaintRepository
	Inventory   *InventoryRepository
	Invoices    *InvoiceRepository
	Users       *UserRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Bookings:    NewBookingRepository(db),
		Rooms:       NewRoomRepository(db),
		RoomTypes:   NewRoomTypeRepository(db),
		Tasks:       NewTaskRepository(db),
		Maintenance: NewMaintenanceRepository(db),
		Complaints:  NewComplaintRepository(db),
		Inventory:   NewInventoryRepository(db),
		Invoices:    NewInvoiceRepository(db),
		Users:       NewUserRepository(db),
	}
}
