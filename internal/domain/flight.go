package domain

import "time"

type Flight struct {
	ID             string    `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Airline        string    `json:"airline"`
	FlightNumber   string    `json:"flight_number"`
	Departure      time.Time `json:"departure"`
	Arrival        time.Time `json:"arrival"`
	BasePriceCents int64     `json:"base_price_cents"`
	CreatedAt      time.Time `json:"created_at"`
}
