package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"innkeeper/internal/config"
	"innkeeper/internal/database"
	"innkeeper/internal/logger"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

var (
	clearExisting = flag.Bool("clear", false, "Clear existing data before seeding")
	dryRun        = flag.Bool("dry-run", false, "Show what would be generated without making changes")
	floors        = flag.Int("floors", 4, "Number of floors to generate rooms on")
	roomsPerFloor = flag.Int("rooms-per-floor", 10, "Rooms generated on each floor")
	bookingCount  = flag.Int("bookings", 50, "Number of sample bookings to create")
)

type Seeder struct {
	db    *database.DB
	repos *repository.Repositories
}

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, "text")

	slog.Info("Starting data generator...")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	seeder := &Seeder{db: db, repos: repository.NewRepositories(db)}

	if *clearExisting {
		if err := seeder.clear(); err != nil {
			slog.Error("Failed to clear existing data", "error", err)
			os.Exit(1)
		}
	}

	if err := seeder.Seed(context.Background()); err != nil {
		slog.Error("Failed to seed data", "error", err)
		os.Exit(1)
	}

	slog.Info("Data generation completed successfully!")
}

func (s *Seeder) clear() error {
	if *dryRun {
		slog.Info("[dry-run] Would truncate all tables")
		return nil
	}

	tables := []string{
		"invoice_items", "invoices", "task_issues", "housekeeping_tasks",
		"maintenance_requests", "complaints", "inventory_items",
		"booking_charges", "room_stays", "bookings", "rooms", "room_types",
	}
	for _, table := range tables {
		if _, err := s.db.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	slog.Info("Cleared existing data")
	return nil
}

func (s *Seeder) Seed(ctx context.Context) error {
	roomTypes, err := s.seedRoomTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed room types: %w", err)
	}

	rooms, err := s.seedRooms(ctx, roomTypes)
	if err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.seedBookings(ctx, rooms, roomTypes); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	if err := s.seedInventory(ctx); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}

	return nil
}

func (s *Seeder) seedRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	specs := []struct {
		title     string
		price     int64
		occupancy int
	}{
		{"Standard", 1500000, 2},
		{"Deluxe", 2500000, 2},
		{"Twin", 1800000, 4},
		{"Suite", 4500000, 4},
	}

	types := make([]models.RoomType, 0, len(specs))
	for _, spec := range specs {
		if *dryRun {
			slog.Info("[dry-run] Would create room type", "title", spec.title)
			continue
		}

		rt := &models.RoomType{
			Title:        spec.title,
			Price:        spec.price,
			MaxOccupancy: spec.occupancy,
		}
		if err := s.repos.RoomTypes.Create(ctx, rt); err != nil {
			return nil, err
		}
		types = append(types, *rt)
	}

	slog.Info("Seeded room types", "count", len(types))
	return types, nil
}

func (s *Seeder) seedRooms(ctx context.Context, roomTypes []models.RoomType) ([]models.Room, error) {
	var rooms []models.Room

	for floor := 1; floor <= *floors; floor++ {
		for n := 1; n <= *roomsPerFloor; n++ {
			if *dryRun {
				continue
			}

			roomType := roomTypes[rand.Intn(len(roomTypes))]
			room := &models.Room{
				RoomNumber: fmt.Sprintf("%d%02d", floor, n),
				Floor:      floor,
				RoomTypeID: roomType.ID,
				Clean:      true,
			}
			if err := s.repos.Rooms.Create(ctx, room); err != nil {
				return nil, err
			}
			rooms = append(rooms, *room)
		}
	}

	if *dryRun {
		slog.Info("[dry-run] Would create rooms", "count", *floors**roomsPerFloor)
		return rooms, nil
	}

	slog.Info("Seeded rooms", "count", len(rooms))
	return rooms, nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	specs := []struct {
		email, first, surname, role string
	}{
		{"admin@innkeeper.local", "Ade", "Okafor", "admin"},
		{"manager@innkeeper.local", "Bisi", "Adeyemi", "manager"},
		{"frontdesk@innkeeper.local", "Chidi", "Eze", "staff"},
		{"housekeeping@innkeeper.local", "Funke", "Bello", "housekeeping"},
		{"maintenance@innkeeper.local", "Tunde", "Ojo", "maintenance"},
	}

	for _, spec := range specs {
		if *dryRun {
			slog.Info("[dry-run] Would create user", "email", spec.email)
			continue
		}

		existing, err := s.repos.Users.GetByEmail(ctx, spec.email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		user := &models.User{
			Email: spec.email,
			// sha256("changeme123")
			PasswordHash: "057ba03d6c44104863dc7361fe4578965d1887360f90a0895882e58a6248fc86",
			FirstName:    spec.first,
			Surname:      spec.surname,
			Role:         spec.role,
		}
		if err := s.repos.Users.Create(ctx, user); err != nil {
			return err
		}
	}

	slog.Info("Seeded users", "count", len(specs))
	return nil
}

var sampleGuests = []struct {
	name, email string
}{
	{"Amara Nwosu", "amara.nwosu@example.com"},
	{"Bola Adesina", "bola.adesina@example.com"},
	{"Chinedu Obi", "chinedu.obi@example.com"},
	{"Dara Olufemi", "dara.olufemi@example.com"},
	{"Emeka Eze", "emeka.eze@example.com"},
	{"Folake Ajayi", "folake.ajayi@example.com"},
}

func (s *Seeder) seedBookings(ctx context.Context, rooms []models.Room, roomTypes []models.RoomType) error {
	if *dryRun {
		slog.Info("[dry-run] Would create bookings", "count", *bookingCount)
		return nil
	}

	priceByType := make(map[int64]int64, len(roomTypes))
	for _, rt := range roomTypes {
		priceByType[rt.ID] = rt.Price
	}

	statuses := []string{
		models.BookingReserved,
		models.BookingCheckedIn,
		models.BookingCheckedOut,
		models.BookingCancelled,
	}
	modes := []string{models.PaymentModeCash, models.PaymentModeCard, models.PaymentModePaystack}

	for i := 0; i < *bookingCount; i++ {
		guest := sampleGuests[rand.Intn(len(sampleGuests))]
		room := rooms[rand.Intn(len(rooms))]

		checkIn := time.Now().AddDate(0, 0, rand.Intn(90)-60)
		nights := 1 + rand.Intn(6)
		checkOut := checkIn.AddDate(0, 0, nights)
		price := priceByType[room.RoomTypeID] * int64(nights)

		booking := &models.Booking{
			ReferenceCode: "BK-" + strings.ToUpper(uuid.New().String()[:8]),
			CustomerName:  guest.name,
			CustomerEmail: guest.email,
			Status:        statuses[rand.Intn(len(statuses))],
			PaymentMode:   modes[rand.Intn(len(modes))],
			PaymentStatus: models.PaymentCompleted,
			TotalAmount:   price,
			Stays: []models.RoomStay{{
				RoomID:   room.ID,
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Price:    price,
			}},
		}

		if err := s.repos.Bookings.Create(ctx, booking); err != nil {
			return err
		}
	}

	slog.Info("Seeded bookings", "count", *bookingCount)
	return nil
}

func (s *Seeder) seedInventory(ctx context.Context) error {
	if *dryRun {
		slog.Info("[dry-run] Would create inventory items")
		return nil
	}

	linens := "linens"
	toiletries := "toiletries"
	items := []models.InventoryItem{
		{Name: "Bath towel", Category: &linens, Quantity: 120, UnitPrice: 350000, ReorderLevel: 40},
		{Name: "Bed sheet set", Category: &linens, Quantity: 80, UnitPrice: 900000, ReorderLevel: 30},
		{Name: "Shampoo bottle", Category: &toiletries, Quantity: 300, UnitPrice: 45000, ReorderLevel: 100},
		{Name: "Soap bar", Category: &toiletries, Quantity: 500, UnitPrice: 20000, ReorderLevel: 150},
	}

	for i := range items {
		if err := s.repos.Inventory.Create(ctx, &items[i]); err != nil {
			return err
		}
	}

	slog.Info("Seeded inventory items", "count", len(items))
	return nil
}
