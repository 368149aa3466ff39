package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjunm592/airtravel/api"
	"github.com/arjunm592/airtravel/config"
	"github.com/arjunm592/airtravel/internal/bootstrap"
	"github.com/arjunm592/airtravel/internal/cache"
	"github.com/arjunm592/airtravel/internal/kafka"
	"github.com/arjunm592/airtravel/internal/logging"
	"github.com/arjunm592/airtravel/internal/opensky"
	"github.com/arjunm592/airtravel/internal/repository"
	"github.com/arjunm592/airtravel/internal/service/booking"
	"github.com/arjunm592/airtravel/internal/service/flights"
	"github.com/arjunm592/airtravel/internal/service/nlsearch"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
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

	logger, err := logging.New(os.Getenv("DEBUG") != "")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Flights.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	provider, err := nlsearch.NewProvider(cfg.NLSearch)
	if err != nil {
		logger.Fatal("init nlsearch provider", zap.Error(err))
	}
	logger.Info("nlsearch provider selected", zap.String("provider", provider.Name()))

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache, logger)
	bookingService := booking.NewBookingService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.ReservationsTopic,
		logger,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	extractor := nlsearch.NewExtractor(provider, time.Duration(cfg.NLSearch.TimeoutSeconds)*time.Second, logger)

	handlers := bootstrap.Handlers{
		Flights:  api.NewFlightHandler(flightService, opensky.NewClient()),
		Bookings: api.NewBookingHandler(bookingService),
		NLSearch: api.NewNLSearchHandler(extractor, flightService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
