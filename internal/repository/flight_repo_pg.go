package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/flightbooking/internal/domain"
)

type FlightRepository interface {
	Search(ctx context.Context, origin, destination string, day *time.Time) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// Search matches origin/destination exactly. When day is set it keeps
// departures within that UTC calendar day. Results are ordered by
// departure time ascending.
func (r *PGFlightRepository) Search(ctx context.Context, origin, destination string, day *time.Time) ([]domain.Flight, error) {
	query := `SELECT id, origin, destination, airline, flight_number, departure, arrival, base_price_cents, created_at
		FROM flights WHERE origin=$1 AND destination=$2`
	args := []any{origin, destination}

	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		end := start.Add(24*time.Hour - time.Millisecond)
		query += ` AND departure >= $3 AND departure <= $4`
		args = append(args, start, end)
	}
	query += ` ORDER BY departure`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Origin, &f.Destination, &f.Airline, &f.FlightNumber, &f.Departure, &f.Arrival, &f.BasePriceCents, &f.CreatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, origin, destination, airline, flight_number, departure, arrival, base_price_cents, created_at FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Origin, &f.Destination, &f.Airline, &f.FlightNumber, &f.Departure, &f.Arrival, &f.BasePriceCents, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (id, origin, destination, airline, flight_number, departure, arrival, base_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (flight_number, departure) DO UPDATE SET airline = EXCLUDED.airline
		RETURNING created_at`,
		flight.ID, flight.Origin, flight.Destination, flight.Airline, flight.FlightNumber, flight.Departure, flight.Arrival, flight.BasePriceCents).
		Scan(&flight.CreatedAt)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
