package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createRoomTypesTable,
		createRoomsTable,
		createBookingsTable,
		createRoomStaysTable,
		createBookingChargesTable,
		createHousekeepingTasksTable,
		createTaskIssuesTable,
		createMaintenanceRequestsTable,
		createComplaintsTable,
		createInventoryItemsTable,
		createInvoicesTable,
		createInvoiceItemsTable,
		createBookingsCreatedIndex,
		createRoomStaysCheckinIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    user_id SERIAL PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(64) NOT NULL,
    first_name VARCHAR(100) NOT NULL,
    surname VARCHAR(100) NOT NULL,
    role VARCHAR(50) NOT NULL DEFAULT 'staff',
    registered_at TIMESTAMP NOT NULL DEFAULT NOW(),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    last_logged_in TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (role IN ('admin', 'manager', 'staff', 'housekeeping', 'maintenance'))
);`

const createRoomTypesTable = `
CREATE TABLE IF NOT EXISTS room_types (
    id SERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    price BIGINT NOT NULL DEFAULT 0,
    max_occupancy INTEGER NOT NULL DEFAULT 2,
    description TEXT,
    images TEXT[],
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createRoomsTable = `
CREATE TABLE IF NOT EXISTS rooms (
    id SERIAL PRIMARY KEY,
    room_number VARCHAR(20) NOT NULL UNIQUE,
    floor INTEGER NOT NULL DEFAULT 1,
    room_type_id INTEGER NOT NULL REFERENCES room_types(id),
    occupied BOOLEAN NOT NULL DEFAULT FALSE,
    clean BOOLEAN NOT NULL DEFAULT TRUE,
    maintenance BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    reference_code VARCHAR(64) NOT NULL UNIQUE,
    customer_name VARCHAR(255) NOT NULL,
    customer_email VARCHAR(255) NOT NULL,
    customer_phone VARCHAR(50),
    customer_address TEXT,
    status VARCHAR(20) NOT NULL DEFAULT 'reserved',
    payment_mode VARCHAR(20) NOT NULL DEFAULT 'cash',
    payment_status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
    total_amount BIGINT NOT NULL DEFAULT 0,
    payment_id VARCHAR(255),
    order_id VARCHAR(255),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('reserved', 'checkedIn', 'checkedOut', 'cancelled')),
    CHECK (payment_mode IN ('cash', 'card', 'paystack')),
    CHECK (payment_status IN ('PENDING', 'INITIATED', 'COMPLETED', 'FAILED', 'CANCELLED'))
);`

const createRoomStaysTable = `
CREATE TABLE IF NOT EXISTS room_stays (
    id SERIAL PRIMARY KEY,
    booking_id INTEGER NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
    room_id INTEGER NOT NULL REFERENCES rooms(id),
    check_in TIMESTAMP NOT NULL,
    check_out TIMESTAMP NOT NULL,
    price BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (check_out >= check_in)
);`

const createBookingChargesTable = `
CREATE TABLE IF NOT EXISTS booking_charges (
    id SERIAL PRIMARY KEY,
    booking_id INTEGER NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
    description VARCHAR(255) NOT NULL,
    amount BIGINT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createHousekeepingTasksTable = `
CREATE TABLE IF NOT EXISTS housekeeping_tasks (
    id SERIAL PRIMARY KEY,
    room_id INTEGER NOT NULL REFERENCES rooms(id),
    status VARCHAR(20) NOT NULL DEFAULT 'dirty',
    priority VARCHAR(10) NOT NULL DEFAULT 'Medium',
    assignee_id INTEGER REFERENCES users(user_id),
    due_date TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('dirty', 'cleaned', 'inspected')),
    CHECK (priority IN ('Low', 'Medium', 'High'))
);`

const createTaskIssuesTable = `
CREATE TABLE IF NOT EXISTS task_issues (
    id SERIAL PRIMARY KEY,
    task_id INTEGER NOT NULL REFERENCES housekeeping_tasks(id) ON DELETE CASCADE,
    description TEXT NOT NULL,
    priority VARCHAR(10) NOT NULL DEFAULT 'Low',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (priority IN ('Low', 'Medium', 'High'))
);`

const createMaintenanceRequestsTable = `
CREATE TABLE IF NOT EXISTS maintenance_requests (
    id SERIAL PRIMARY KEY,
    room_id INTEGER NOT NULL REFERENCES rooms(id),
    subject VARCHAR(255) NOT NULL,
    progress TEXT,
    priority VARCHAR(10) NOT NULL DEFAULT 'Medium',
    assignee_id INTEGER REFERENCES users(user_id),
    due_date TIMESTAMP,
    resolved BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (priority IN ('Low', 'Medium', 'High'))
);`

const createComplaintsTable = `
CREATE TABLE IF NOT EXISTS complaints (
    id SERIAL PRIMARY KEY,
    subject VARCHAR(255) NOT NULL,
    description TEXT,
    status VARCHAR(20) NOT NULL DEFAULT 'open',
    priority VARCHAR(10) NOT NULL DEFAULT 'Medium',
    category VARCHAR(100),
    images TEXT[],
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('open', 'in-progress', 'resolved', 'closed')),
    CHECK (priority IN ('Low', 'Medium', 'High'))
);`

const createInventoryItemsTable = `
CREATE TABLE IF NOT EXISTS inventory_items (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    category VARCHAR(100),
    quantity INTEGER NOT NULL DEFAULT 0,
    unit_price BIGINT NOT NULL DEFAULT 0,
    reorder_level INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createInvoicesTable = `
CREATE TABLE IF NOT EXISTS invoices (
    id SERIAL PRIMARY KEY,
    booking_id INTEGER REFERENCES bookings(id),
    customer_name VARCHAR(255) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'draft',
    total_amount BIGINT NOT NULL DEFAULT 0,
    issued_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('draft', 'issued', 'paid', 'void'))
);`

const createInvoiceItemsTable = `
CREATE TABLE IF NOT EXISTS invoice_items (
    id SERIAL PRIMARY KEY,
    invoice_id INTEGER NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
    description VARCHAR(255) NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 1,
    amount BIGINT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createBookingsCreatedIndex = `
CREATE INDEX IF NOT EXISTS bookings_created_at_idx ON bookings (created_at);`

const createRoomStaysCheckinIndex = `
CREATE INDEX IF NOT EXISTS room_stays_check_in_idx ON room_stays (check_in);`
