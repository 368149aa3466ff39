package booking

import (
	"context"
	"fmt"

	"github.com/arjunm592/airtravel/internal/domain"
	"github.com/arjunm592/airtravel/internal/kafka"
	"github.com/arjunm592/airtravel/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTravelClass = "Economy"

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*domain.Reservation, error)
	Reservations(ctx context.Context) ([]domain.Reservation, error)
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	FlightID    int64            `json:"flight_id"`
	Passenger   domain.Passenger `json:"passenger"`
	SeatNumber  string           `json:"seat_number"`
	TravelClass string           `json:"travel_class"`
	Price       float64          `json:"price"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	reservationsTopic  string
	notificationsTopic string
	log                *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	reservationsTopic string,
	log *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}
	service := &BookingService{
		bookings:          bookings,
		cache:             cache,
		producer:          producer,
		reservationsTopic: reservationsTopic,
		log:               log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book validates the input, runs the booking transaction and, after commit,
// publishes a reservation event and drops the cached flight list. Publish
// and cache failures are logged, never returned; the reservation is already
// durable at that point.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*domain.Reservation, error) {
	if input.FlightID <= 0 {
		return nil, fmt.Errorf("%w: flight_id is required", domain.ErrValidation)
	}
	if input.Passenger.FullName == "" {
		return nil, fmt.Errorf("%w: passenger full_name is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	travelClass := input.TravelClass
	if travelClass == "" {
		travelClass = defaultTravelClass
	}

	passenger := input.Passenger
	reservation := &domain.Reservation{
		FlightID:    input.FlightID,
		Reference:   uuid.NewString(),
		SeatNumber:  input.SeatNumber,
		TravelClass: travelClass,
		Price:       input.Price,
	}

	if err := s.bookings.Book(ctx, &passenger, reservation); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.log.Warn("failed to invalidate flights cache", zap.Error(err))
		}
	}
	if err := s.publish(ctx, "reservation_created", &passenger, reservation); err != nil {
		s.log.Warn("failed to publish reservation event",
			zap.String("reference", reservation.Reference), zap.Error(err))
	}

	reservation.PassengerName = passenger.FullName
	return reservation, nil
}

func (s *BookingService) Reservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.bookings.ListReservations(ctx)
}

func (s *BookingService) publish(ctx context.Context, eventType string, passenger *domain.Passenger, reservation *domain.Reservation) error {
	if s.producer == nil || s.reservationsTopic == "" {
		return nil
	}
	event := kafka.ReservationEvent{
		Type:        eventType,
		Reference:   reservation.Reference,
		FlightID:    reservation.FlightID,
		Passenger:   passenger.FullName,
		Email:       passenger.Email,
		SeatNumber:  reservation.SeatNumber,
		TravelClass: reservation.TravelClass,
		Price:       reservation.Price,
		BookedAt:    reservation.BookedAt,
	}
	if err := s.producer.Publish(ctx, s.reservationsTopic, reservation.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, reservation.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
