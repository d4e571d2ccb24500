package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"innkeeper/internal/database"
	"innkeeper/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, reference_code, customer_name, customer_email, customer_phone,
	       customer_address, status, payment_mode, payment_status, total_amount,
	       payment_id, order_id, created_at, updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }, b *models.Booking) error {
	return row.Scan(
		&b.ID,
		&b.ReferenceCode,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.CustomerAddress,
		&b.Status,
		&b.PaymentMode,
		&b.PaymentStatus,
		&b.TotalAmount,
		&b.PaymentID,
		&b.OrderID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

// Create inserts the booking with its stays and charges in one transaction
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings (reference_code, customer_name, customer_email, customer_phone,
		                      customer_address, status, payment_mode, payment_status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		booking.ReferenceCode,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.CustomerAddress,
		booking.Status,
		booking.PaymentMode,
		booking.PaymentStatus,
		booking.TotalAmount,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range booking.Stays {
		stay := &booking.Stays[i]
		stay.BookingID = booking.ID

		stayQuery := `
			INSERT INTO room_stays (booking_id, room_id, check_in, check_out, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`

		err = tx.QueryRowContext(ctx, stayQuery,
			stay.BookingID, stay.RoomID, stay.CheckIn, stay.CheckOut, stay.Price,
		).Scan(&stay.ID, &stay.CreatedAt)
		if err != nil {
			return err
		}
	}

	for i := range booking.Charges {
		charge := &booking.Charges[i]
		charge.BookingID = booking.ID

		chargeQuery := `
			INSERT INTO booking_charges (booking_id, description, amount)
			VALUES ($1, $2, $3)
			RETURNING id, created_at`

		err = tx.QueryRowContext(ctx, chargeQuery,
			charge.BookingID, charge.Description, charge.Amount,
		).Scan(&charge.ID, &charge.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	err := scanBooking(r.db.QueryRowContext(ctx, query, id), booking)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadNested(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference_code = $1`

	err := scanBooking(r.db.QueryRowContext(ctx, query, reference), booking)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadNested(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepository) loadNested(ctx context.Context, booking *models.Booking) error {
	stays, err := r.GetStays(ctx, booking.ID)
	if err != nil {
		return err
	}
	booking.Stays = stays

	charges, err := r.GetCharges(ctx, booking.ID)
	if err != nil {
		return err
	}
	booking.Charges = charges

	return nil
}

// List returns bookings matching the optional filters, newest first
func (r *BookingRepository) List(ctx context.Context, status, query string, startDate, endDate *time.Time, page, pageSize int) ([]models.Booking, error) {
	var args []interface{}
	argIndex := 1

	sqlQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`

	if status != "" {
		sqlQuery += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	if query != "" {
		sqlQuery += fmt.Sprintf(" AND (customer_name ILIKE $%d OR customer_email ILIKE $%d OR reference_code ILIKE $%d)",
			argIndex, argIndex, argIndex)
		args = append(args, "%"+query+"%")
		argIndex++
	}

	if startDate != nil {
		sqlQuery += fmt.Sprintf(" AND created_at >= $%d", argIndex)
		args = append(args, *startDate)
		argIndex++
	}

	if endDate != nil {
		sqlQuery += fmt.Sprintf(" AND created_at <= $%d", argIndex)
		args = append(args, *endDate)
		argIndex++
	}

	sqlQuery += " ORDER BY created_at DESC"

	if page > 0 && pageSize > 0 {
		offset := (page - 1) * pageSize
		sqlQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, pageSize, offset)
	}

	return r.queryBookings(ctx, sqlQuery, args...)
}

// GetByIDs returns bookings for the given ids, preserving the input order
func (r *BookingRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Booking, error) {
	byID := make(map[int64]models.Booking, len(ids))
	for _, id := range ids {
		booking, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if booking != nil {
			byID[id] = *booking
		}
	}

	result := make([]models.Booking, 0, len(byID))
	for _, id := range ids {
		if booking, ok := byID[id]; ok {
			result = append(result, booking)
		}
	}

	return result, nil
}

// ListAllWithStays returns every booking with its stays loaded, for the scanner
func (r *BookingRepository) ListAllWithStays(ctx context.Context) ([]models.Booking, error) {
	bookings, err := r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		stays, err := r.GetStays(ctx, bookings[i].ID)
		if err != nil {
			return nil, err
		}
		bookings[i].Stays = stays
	}

	return bookings, nil
}

// queryBookings runs list queries through the retrying executor since
// they back the dashboard's hottest screens
func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.db.ExecuteWithRetry(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET customer_name = $1, customer_email = $2, customer_phone = $3,
		    customer_address = $4, status = $5, payment_status = $6,
		    total_amount = $7, payment_id = $8, order_id = $9, updated_at = NOW()
		WHERE id = $10`

	_, err := r.db.ExecContext(ctx, query,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.CustomerAddress,
		booking.Status,
		booking.PaymentStatus,
		booking.TotalAmount,
		booking.PaymentID,
		booking.OrderID,
		booking.ID,
	)

	return err
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *BookingRepository) GetStays(ctx context.Context, bookingID int64) ([]models.RoomStay, error) {
	query := `
		SELECT id, booking_id, room_id, check_in, check_out, price, created_at
		FROM room_stays
		WHERE booking_id = $1
		ORDER BY check_in, id`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stays []models.RoomStay
	for rows.Next() {
		var stay models.RoomStay
		err := rows.Scan(
			&stay.ID,
			&stay.BookingID,
			&stay.RoomID,
			&stay.CheckIn,
			&stay.CheckOut,
			&stay.Price,
			&stay.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		stays = append(stays, stay)
	}

	return stays, rows.Err()
}

func (r *BookingRepository) GetCharges(ctx context.Context, bookingID int64) ([]models.BookingCharge, error) {
	query := `
		SELECT id, booking_id, description, amount, created_at
		FROM booking_charges
		WHERE booking_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charges []models.BookingCharge
	for rows.Next() {
		var charge models.BookingCharge
		err := rows.Scan(
			&charge.ID,
			&charge.BookingID,
			&charge.Description,
			&charge.Amount,
			&charge.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		charges = append(charges, charge)
	}

	return charges, rows.Err()
}

func (r *BookingRepository) GetStayByID(ctx context.Context, stayID int64) (*models.RoomStay, error) {
	stay := &models.RoomStay{}
	query := `
		SELECT id, booking_id, room_id, check_in, check_out, price, created_at
		FROM room_stays
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, stayID).Scan(
		&stay.ID,
		&stay.BookingID,
		&stay.RoomID,
		&stay.CheckIn,
		&stay.CheckOut,
		&stay.Price,
		&stay.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return stay, err
}

func (r *BookingRepository) UpdateStayCheckOut(ctx context.Context, stayID int64, checkOut time.Time, price int64) error {
	query := `UPDATE room_stays SET check_out = $1, price = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, checkOut, price, stayID)
	return err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status string, paymentID string) error {
	query := `
		UPDATE bookings
		SET payment_status = $1, payment_id = $2, updated_at = NOW()
		WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, status, paymentID, id)
	return err
}

// GetStaleReserved returns unpaid reservations created before the cutoff
func (r *BookingRepository) GetStaleReserved(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'reserved'
		  AND payment_mode = 'paystack'
		  AND payment_status IN ('PENDING', 'INITIATED')
		  AND created_at < $1
		ORDER BY created_at ASC`

	return r.queryBookings(ctx, query, cutoff)
}
