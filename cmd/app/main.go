package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/flightbooking/api"
	"github.com/skyfare/flightbooking/config"
	"github.com/skyfare/flightbooking/internal/bootstrap"
	"github.com/skyfare/flightbooking/internal/cache"
	"github.com/skyfare/flightbooking/internal/kafka"
	"github.com/skyfare/flightbooking/internal/llm"
	"github.com/skyfare/flightbooking/internal/repository"
	"github.com/skyfare/flightbooking/internal/service/auth"
	"github.com/skyfare/flightbooking/internal/service/booking"
	"github.com/skyfare/flightbooking/internal/service/chat"
	"github.com/skyfare/flightbooking/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	refundLedger := repository.NewRefundLedger(pool)

	authService := auth.NewAuthService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour)
	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		paymentRepo,
		refundLedger,
		userRepo,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	llmClient := llm.NewClient(cfg.Chat.APIKey, cfg.Chat.Endpoint, cfg.Chat.Model, cfg.Chat.MaxTokens)
	chatService := chat.NewChatService(llmClient, flightService)

	router := api.NewRouter(cfg.HTTP, authService, flightService, bookingService, chatService, redisCache)

	if err := bootstrap.Run(ctx, cfg.HTTP.Address, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
