package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/flightbooking/internal/domain"
)

type PaymentRepository interface {
	ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error)
}

type PGPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &PGPaymentRepository{db: db}
}

func (r *PGPaymentRepository) ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error) {
	return listPayments(ctx, r.db, bookingID)
}

func listPayments(ctx context.Context, db *pgxpool.Pool, bookingID string) ([]domain.Payment, error) {
	rows, err := db.Query(ctx, `SELECT id, booking_id, method, amount_cents, status,
			COALESCE(upi_id, ''), COALESCE(card_last4, ''), COALESCE(card_brand, ''), created_at
		FROM payments WHERE booking_id=$1 ORDER BY created_at`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Method, &p.AmountCents, &p.Status, &p.UPIID, &p.CardLast4, &p.CardBrand, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

var _ PaymentRepository = (*PGPaymentRepository)(nil)
