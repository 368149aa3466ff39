package flights

import (
	"context"

	"github.com/arjunm592/airtravel/internal/domain"
	"github.com/arjunm592/airtravel/internal/repository"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
	log   *zap.Logger
}

func NewFlightService(repo repository.FlightRepository, cache Cache, log *zap.Logger) *FlightService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FlightService{repo: repo, cache: cache, log: log}
}

// List returns all flights with airline metadata, cache-aside. Cache errors
// fall through to the database.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.log.Debug("flights cache read failed", zap.Error(err))
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Debug("flights cache write failed", zap.Error(err))
		}
	}
	return flights, nil
}

// Search results are never cached; filter combinations are unbounded and the
// unfiltered case already has List.
func (s *FlightService) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Flight, error) {
	return s.repo.Search(ctx, filters)
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
