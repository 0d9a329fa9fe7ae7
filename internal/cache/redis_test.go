package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGetFlights_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(client, time.Minute)

	mock.ExpectGet("cache:flights:DEL:BOM:2025-12-20").RedisNil()

	flights, err := c.GetFlights(context.Background(), "DEL", "BOM", "2025-12-20")
	assert.NoError(t, err)
	assert.Nil(t, flights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetThenGetFlights(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(client, time.Minute)

	flights := []domain.Flight{{ID: "f1", Origin: "DEL", Destination: "BOM"}}
	payload, _ := json.Marshal(flights)

	mock.ExpectSet("cache:flights:DEL:BOM:", payload, time.Minute).SetVal("OK")
	mock.ExpectGet("cache:flights:DEL:BOM:").SetVal(string(payload))

	assert.NoError(t, c.SetFlights(context.Background(), "DEL", "BOM", "", flights))

	got, err := c.GetFlights(context.Background(), "DEL", "BOM", "")
	assert.NoError(t, err)
	assert.Equal(t, flights, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllow(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(client, time.Minute)

	mock.ExpectIncr("ratelimit:1.2.3.4").SetVal(1)
	mock.ExpectExpire("ratelimit:1.2.3.4", time.Minute).SetVal(true)

	ok, err := c.Allow(context.Background(), "1.2.3.4", 2, time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectIncr("ratelimit:1.2.3.4").SetVal(3)

	ok, err = c.Allow(context.Background(), "1.2.3.4", 2, time.Minute)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
