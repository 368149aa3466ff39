package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/arjunm592/airtravel/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.flight_id, f.airline_id, f.flight_number, f.departure_airport, f.arrival_airport, f.departure_datetime, f.arrival_datetime, f.seats_total, f.seats_available, COALESCE(a.name, ''), COALESCE(a.code, '')`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights f LEFT JOIN airlines a ON f.airline_id = a.airline_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFlights(rows)
}

// Search ANDs the present filters; filter values are always bound as
// parameters. The date filter matches the departure calendar date, not a
// timestamp range.
func (r *PGFlightRepository) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights f LEFT JOIN airlines a ON f.airline_id = a.airline_id WHERE 1=1`
	args := make([]interface{}, 0, 3)

	if filters.Origin != "" {
		args = append(args, filters.Origin)
		query += fmt.Sprintf(" AND f.departure_airport = $%d", len(args))
	}
	if filters.Destination != "" {
		args = append(args, filters.Destination)
		query += fmt.Sprintf(" AND f.arrival_airport = $%d", len(args))
	}
	if filters.Date != "" {
		args = append(args, filters.Date)
		query += fmt.Sprintf(" AND f.departure_datetime::date = $%d::date", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFlights(rows)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights f LEFT JOIN airlines a ON f.airline_id = a.airline_id WHERE f.flight_id = $1`, id)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.AirlineID, &f.FlightNumber, &f.DepartureAirport, &f.ArrivalAirport, &f.DepartureDatetime, &f.ArrivalDatetime, &f.SeatsTotal, &f.SeatsAvailable, &f.AirlineName, &f.AirlineCode)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
