package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rmoulin/skyflight/api"
	"github.com/rmoulin/skyflight/config"
	"github.com/rmoulin/skyflight/internal/bootstrap"
	"github.com/rmoulin/skyflight/internal/cache"
	"github.com/rmoulin/skyflight/internal/kafka"
	"github.com/rmoulin/skyflight/internal/repository"
	"github.com/rmoulin/skyflight/internal/service/bookings"
	"github.com/rmoulin/skyflight/internal/service/flights"
	"github.com/rmoulin/skyflight/internal/service/wizard"
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

	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatalf("load timezone %s: %v", cfg.Booking.Timezone, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second,
		time.Duration(cfg.Booking.SessionTTLMinutes)*time.Minute,
	)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	aircraftRepo := repository.NewAircraftRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := bookings.NewBookingService(
		bookingRepo,
		flightRepo,
		passengerRepo,
		producer,
		cfg.Kafka.BookingTopic,
		loc,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	wizardService := wizard.NewWizardService(
		flightService,
		passengerRepo,
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		loc,
		wizard.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	handlers := bootstrap.Handlers{
		Flights:    api.NewFlightHandler(flightService, flightRepo),
		Aircraft:   api.NewAircraftHandler(aircraftRepo),
		Employees:  api.NewEmployeeHandler(employeeRepo),
		Passengers: api.NewPassengerHandler(passengerRepo),
		Bookings:   api.NewBookingHandler(bookingService, bookingRepo),
		Wizard:     api.NewWizardHandler(wizardService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
