package repository

import (
	"context"
	"errors"

	"github.com/arjunm592/airtravel/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Book(ctx context.Context, passenger *domain.Passenger, reservation *domain.Reservation) error
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Book creates the passenger and reservation rows and decrements the
// flight's seat counter as one transaction. The seat counter is read under
// FOR UPDATE so concurrent bookings of the last seat serialize on the flight
// row; on any failure the whole unit rolls back, passenger insert included.
func (r *PGBookingRepository) Book(ctx context.Context, passenger *domain.Passenger, reservation *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO passengers (full_name, age, gender, email)
		VALUES ($1, $2, $3, $4)
		RETURNING passenger_id`, passenger.FullName, passenger.Age, passenger.Gender, passenger.Email).
		Scan(&passenger.ID); err != nil {
		return err
	}

	var available int
	if err := tx.QueryRow(ctx, `SELECT seats_available FROM flights WHERE flight_id = $1 FOR UPDATE`, reservation.FlightID).Scan(&available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFlightNotFound
		}
		return err
	}
	if available <= 0 {
		return domain.ErrNoSeatsAvailable
	}

	reservation.PassengerID = passenger.ID
	if err := tx.QueryRow(ctx, `INSERT INTO reservations (flight_id, passenger_id, reference, seat_number, travel_class, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING reservation_id, booked_at`, reservation.FlightID, reservation.PassengerID, reservation.Reference, reservation.SeatNumber, reservation.TravelClass, reservation.Price).
		Scan(&reservation.ID, &reservation.BookedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE flights SET seats_available = seats_available - 1 WHERE flight_id = $1`, reservation.FlightID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT r.reservation_id, r.flight_id, r.passenger_id, r.reference, r.seat_number, r.travel_class, r.price, r.booked_at, p.full_name, f.flight_number
		FROM reservations r
		JOIN passengers p ON r.passenger_id = p.passenger_id
		JOIN flights f ON r.flight_id = f.flight_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.FlightID, &res.PassengerID, &res.Reference, &res.SeatNumber, &res.TravelClass, &res.Price, &res.BookedAt, &res.PassengerName, &res.FlightNumber); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
