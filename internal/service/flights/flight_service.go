package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/repository"
	"github.com/skyfare/flightbooking/internal/validate"
)

type FlightUseCase interface {
	Search(ctx context.Context, origin, destination, date string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context, origin, destination, date string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, origin, destination, date string, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

// Search filters the catalog by exact origin/destination. An optional
// date (YYYY-MM-DD or RFC 3339) narrows results to that UTC calendar day.
func (s *FlightService) Search(ctx context.Context, origin, destination, date string) ([]domain.Flight, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", domain.ErrValidation)
	}

	var day *time.Time
	if date != "" {
		if !validate.IsValidISODate(date) {
			return nil, fmt.Errorf("%w: invalid date", domain.ErrValidation)
		}
		parsed, err := parseDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date", domain.ErrValidation)
		}
		day = &parsed
	}

	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, origin, destination, date); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, origin, destination, day)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, origin, destination, date, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func parseDate(date string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

var _ FlightUseCase = (*FlightService)(nil)
