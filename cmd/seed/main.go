package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/flightbooking/config"
	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/repository"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Fatalf("parse time %q: %v", value, err)
	}
	return t
}

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	flightRepo := repository.NewFlightRepository(pool)

	flights := []domain.Flight{
		{
			Origin:         "DEL",
			Destination:    "BOM",
			Airline:        "DemoAir",
			FlightNumber:   "DA101",
			Departure:      mustTime("2025-12-20T06:00:00Z"),
			Arrival:        mustTime("2025-12-20T08:10:00Z"),
			BasePriceCents: 55000,
		},
		{
			Origin:         "DEL",
			Destination:    "BOM",
			Airline:        "FlyFast",
			FlightNumber:   "FF201",
			Departure:      mustTime("2025-12-20T09:00:00Z"),
			Arrival:        mustTime("2025-12-20T11:15:00Z"),
			BasePriceCents: 48000,
		},
		{
			Origin:         "BLR",
			Destination:    "MYS",
			Airline:        "SkyJet",
			FlightNumber:   "SJ300",
			Departure:      mustTime("2025-12-22T13:00:00Z"),
			Arrival:        mustTime("2025-12-22T14:30:00Z"),
			BasePriceCents: 32000,
		},
	}

	log.Println("seeding flights...")
	for i := range flights {
		flights[i].ID = uuid.NewString()
		if err := flightRepo.Create(ctx, &flights[i]); err != nil {
			log.Fatalf("seed flight %s: %v", flights[i].FlightNumber, err)
		}
	}
	log.Printf("seeded %d flights", len(flights))
}
