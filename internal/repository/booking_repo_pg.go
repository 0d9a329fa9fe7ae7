package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/flightbooking/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.BookingDetails, error)
	// ConfirmWithPayment inserts the payment row and flips the booking to
	// CONFIRMED in a single transaction.
	ConfirmWithPayment(ctx context.Context, payment *domain.Payment) (*domain.Booking, error)
	// DeleteWithPayments removes the booking and all its payment rows.
	DeleteWithPayments(ctx context.Context, id string) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, flight_id, status, price_cents, created_at, updated_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (id, user_id, flight_id, status, price_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		booking.ID, booking.UserID, booking.FlightID, booking.Status, booking.PriceCents).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, status, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.BookingDetails, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.user_id, b.flight_id, b.status, b.price_cents, b.created_at, b.updated_at,
			f.id, f.origin, f.destination, f.airline, f.flight_number, f.departure, f.arrival, f.base_price_cents, f.created_at
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE b.user_id=$1
		ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.BookingDetails, 0)
	for rows.Next() {
		var d domain.BookingDetails
		var f domain.Flight
		if err := rows.Scan(&d.ID, &d.UserID, &d.FlightID, &d.Status, &d.PriceCents, &d.CreatedAt, &d.UpdatedAt,
			&f.ID, &f.Origin, &f.Destination, &f.Airline, &f.FlightNumber, &f.Departure, &f.Arrival, &f.BasePriceCents, &f.CreatedAt); err != nil {
			return nil, err
		}
		d.Flight = &f
		d.Payments = make([]domain.Payment, 0)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range details {
		payments, err := listPayments(ctx, r.db, details[i].ID)
		if err != nil {
			return nil, err
		}
		details[i].Payments = payments
	}
	return details, nil
}

func (r *PGBookingRepository) ConfirmWithPayment(ctx context.Context, payment *domain.Payment) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO payments (id, booking_id, method, amount_cents, status, upi_id, card_last4, card_brand)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
		RETURNING created_at`,
		payment.ID, payment.BookingID, payment.Method, payment.AmountCents, payment.Status, payment.UPIID, payment.CardLast4, payment.CardBrand).
		Scan(&payment.CreatedAt); err != nil {
		return nil, err
	}

	booking, err := scanBooking(tx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns,
		domain.BookingStatusConfirmed, payment.BookingID))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *PGBookingRepository) DeleteWithPayments(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE booking_id=$1`, id); err != nil {
		return err
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.FlightID, &b.Status, &b.PriceCents, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
