package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arjunm592/airtravel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Book(ctx context.Context, passenger *domain.Passenger, reservation *domain.Reservation) error {
	args := m.Called(ctx, passenger, reservation)
	return args.Error(0)
}

func (m *MockBookingRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validInput() BookInput {
	return BookInput{
		FlightID: 4,
		Passenger: domain.Passenger{
			FullName: "Asha Rao",
			Age:      34,
			Gender:   "Female",
			Email:    "asha@example.com",
		},
		SeatNumber:  "12A",
		TravelClass: "Economy",
		Price:       4999.50,
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}

	service := NewBookingService(mockRepo, mockCache, mockProducer, "reservations", nil)

	ctx := context.Background()
	input := validInput()

	mockRepo.On("Book", ctx, mock.AnythingOfType("*domain.Passenger"), mock.AnythingOfType("*domain.Reservation")).
		Run(func(args mock.Arguments) {
			passenger := args.Get(1).(*domain.Passenger)
			reservation := args.Get(2).(*domain.Reservation)
			passenger.ID = 7
			reservation.ID = 11
			reservation.PassengerID = 7
			reservation.BookedAt = time.Now()
		}).
		Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	mockProducer.On("Publish", ctx, "reservations", mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	reservation, err := service.Book(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, reservation)
	assert.Equal(t, int64(11), reservation.ID)
	assert.Equal(t, int64(4), reservation.FlightID)
	assert.Equal(t, "12A", reservation.SeatNumber)
	assert.NotEmpty(t, reservation.Reference)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_Book_DefaultsTravelClass(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := NewBookingService(mockRepo, nil, nil, "", nil)

	ctx := context.Background()
	input := validInput()
	input.TravelClass = ""

	mockRepo.On("Book", ctx, mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.TravelClass == "Economy"
	})).Return(nil).Once()

	_, err := service.Book(ctx, input)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_Book_MissingFullName(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := NewBookingService(mockRepo, nil, nil, "", nil)

	input := validInput()
	input.Passenger.FullName = ""

	_, err := service.Book(context.Background(), input)

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Book")
}

func TestBookingService_Book_MissingFlightID(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := NewBookingService(mockRepo, nil, nil, "", nil)

	input := validInput()
	input.FlightID = 0

	_, err := service.Book(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Book")
}

func TestBookingService_Book_NegativePrice(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := NewBookingService(mockRepo, nil, nil, "", nil)

	input := validInput()
	input.Price = -1

	_, err := service.Book(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Book")
}

func TestBookingService_Book_FlightNotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}

	service := NewBookingService(mockRepo, mockCache, mockProducer, "reservations", nil)

	ctx := context.Background()

	mockRepo.On("Book", ctx, mock.Anything, mock.Anything).Return(domain.ErrFlightNotFound).Once()

	_, err := service.Book(ctx, validInput())

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	mockCache.AssertNotCalled(t, "InvalidateFlights")
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestBookingService_Book_NoSeats(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := NewBookingService(mockRepo, nil, nil, "", nil)

	ctx := context.Background()

	mockRepo.On("Book", ctx, mock.Anything, mock.Anything).Return(domain.ErrNoSeatsAvailable).Once()

	_, err := service.Book(ctx, validInput())

	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
}

func TestBookingService_Book_PublishFailureDoesNotFailBooking(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}

	service := NewBookingService(mockRepo, mockCache, mockProducer, "reservations", nil)

	ctx := context.Background()

	mockRepo.On("Book", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	mockProducer.On("Publish", ctx, "reservations", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	reservation, err := service.Book(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, reservation)
}

func TestBookingService_Book_CacheFailureDoesNotFailBooking(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}

	service := NewBookingService(mockRepo, mockCache, nil, "", nil)

	ctx := context.Background()

	mockRepo.On("Book", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(errors.New("redis down")).Once()

	_, err := service.Book(ctx, validInput())

	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}

func TestBookingService_Book_NotificationsTopic(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}

	service := NewBookingService(mockRepo, nil, mockProducer, "reservations", nil,
		WithNotificationsTopic("notifications"))

	ctx := context.Background()

	mockRepo.On("Book", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "reservations", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := service.Book(ctx, validInput())

	assert.NoError(t, err)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_Reservations(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := NewBookingService(mockRepo, nil, nil, "", nil)

	ctx := context.Background()

	expected := []domain.Reservation{
		{ID: 1, FlightID: 4, PassengerID: 7, SeatNumber: "12A", PassengerName: "Asha Rao", FlightNumber: "AI101"},
	}
	mockRepo.On("ListReservations", ctx).Return(expected, nil).Once()

	result, err := service.Reservations(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_Reservations_RepositoryError(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := NewBookingService(mockRepo, nil, nil, "", nil)

	ctx := context.Background()
	expectedErr := errors.New("database error")
	mockRepo.On("ListReservations", ctx).Return(nil, expectedErr).Once()

	result, err := service.Reservations(ctx)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, expectedErr, err)
}
