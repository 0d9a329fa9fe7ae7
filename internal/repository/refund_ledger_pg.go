package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/flightbooking/internal/domain"
)

// RefundLedger is append-only. Entries reference bookings by bare id so
// they outlive the booking rows they refund.
type RefundLedger interface {
	Append(ctx context.Context, entry *domain.RefundEntry) error
	ListByBooking(ctx context.Context, bookingID string) ([]domain.RefundEntry, error)
}

type PGRefundLedger struct {
	db *pgxpool.Pool
}

func NewRefundLedger(db *pgxpool.Pool) RefundLedger {
	return &PGRefundLedger{db: db}
}

func (r *PGRefundLedger) Append(ctx context.Context, entry *domain.RefundEntry) error {
	return r.db.QueryRow(ctx, `INSERT INTO refund_ledger (id, booking_id, method, amount_cents, upi_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING created_at`,
		entry.ID, entry.BookingID, entry.Method, entry.AmountCents, entry.UPIID).
		Scan(&entry.CreatedAt)
}

func (r *PGRefundLedger) ListByBooking(ctx context.Context, bookingID string) ([]domain.RefundEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, booking_id, method, amount_cents, COALESCE(upi_id, ''), created_at
		FROM refund_ledger WHERE booking_id=$1 ORDER BY created_at`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.RefundEntry, 0)
	for rows.Next() {
		var e domain.RefundEntry
		if err := rows.Scan(&e.ID, &e.BookingID, &e.Method, &e.AmountCents, &e.UPIID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ RefundLedger = (*PGRefundLedger)(nil)
