package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// ErrInvoiceNotFound is returned when an invoice lookup fails.
var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepo provides access to the `invoices` table.  Rows arrive
// exclusively through the invoice webhook relay; this service never
// creates invoices on its own and only reads them to gate assignment
// eligibility.
type InvoiceRepo struct {
	db *sql.DB
}

// NewInvoiceRepo constructs an InvoiceRepo with the given DB handle.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

const invoiceColumns = `id, profile_id, status, amount_cents, external_ref, created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }, inv *model.Invoice) error {
	return row.Scan(&inv.ID, &inv.ProfileID, &inv.Status, &inv.AmountCents, &inv.ExternalRef, &inv.CreatedAt, &inv.UpdatedAt)
}

// UpsertByExternalRef stores an invoice keyed by the external
// provider's identifier: webhook deliveries may repeat or arrive out
// of order, so an existing row is updated in place instead of
// duplicated.
func (r *InvoiceRepo) UpsertByExternalRef(ctx context.Context, inv *model.Invoice) error {
	const qFind = `SELECT id FROM invoices WHERE external_ref = ?`
	var existingID string
	err := r.db.QueryRowContext(ctx, qFind, inv.ExternalRef).Scan(&existingID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if inv.ID == "" {
			inv.ID = uuid.NewString()
		}
		const qInsert = `INSERT INTO invoices (id, profile_id, status, amount_cents, external_ref) VALUES (?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, qInsert, inv.ID, inv.ProfileID, inv.Status, inv.AmountCents, inv.ExternalRef); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		inv.ID = existingID
		const qUpdate = `UPDATE invoices SET profile_id = ?, status = ?, amount_cents = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, qUpdate, inv.ProfileID, inv.Status, inv.AmountCents, existingID); err != nil {
			return err
		}
	}
	const qSelect = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = ?`
	return scanInvoice(r.db.QueryRowContext(ctx, qSelect, inv.ID), inv)
}

// ListByProfile returns a profile's invoices, newest first.
func (r *InvoiceRepo) ListByProfile(ctx context.Context, profileID string) ([]*model.Invoice, error) {
	const q = `SELECT ` + invoiceColumns + ` FROM invoices WHERE profile_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Invoice
	for rows.Next() {
		inv := new(model.Invoice)
		if err := scanInvoice(rows, inv); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
