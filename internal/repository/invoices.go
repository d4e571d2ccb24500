package repository

import (
	"context"
	"database/sql"
	"fmt"

	"innkeeper/internal/database"
	"innkeeper/internal/models"
)

type InvoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceColumns = `id, booking_id, customer_name, status, total_amount, issued_at, created_at, updated_at`

func scanInvoice(row interface{ Scan(...interface{}) error }, inv *models.Invoice) error {
	return row.Scan(
		&inv.ID,
		&inv.BookingID,
		&inv.CustomerName,
		&inv.Status,
		&inv.TotalAmount,
		&inv.IssuedAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
}

// Create inserts the invoice with its items in one transaction
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO invoices (booking_id, customer_name, status, total_amount, issued_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		invoice.BookingID,
		invoice.CustomerName,
		invoice.Status,
		invoice.TotalAmount,
		invoice.IssuedAt,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.InvoiceID = invoice.ID

		itemQuery := `
			INSERT INTO invoice_items (invoice_id, description, quantity, amount)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`

		err = tx.QueryRowContext(ctx, itemQuery,
			item.InvoiceID, item.Description, item.Quantity, item.Amount,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	err := scanInvoice(r.db.QueryRowContext(ctx, query, id), invoice)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.GetItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items

	return invoice, nil
}

func (r *InvoiceRepository) List(ctx context.Context, status string, bookingID *int64) ([]models.Invoice, error) {
	var args []interface{}
	argIndex := 1

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	if bookingID != nil {
		query += fmt.Sprintf(" AND booking_id = $%d", argIndex)
		args = append(args, *bookingID)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var invoice models.Invoice
		if err := scanInvoice(rows, &invoice); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}

func (r *InvoiceRepository) GetItems(ctx context.Context, invoiceID int64) ([]models.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, description, quantity, amount, created_at
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		var item models.InvoiceItem
		err := rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.Description,
			&item.Quantity,
			&item.Amount,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, status string, issued bool) error {
	query := `UPDATE invoices SET status = $1, updated_at = NOW()`
	if issued {
		query += `, issued_at = NOW()`
	}
	query += ` WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
