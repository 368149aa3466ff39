package domain

import "time"

type Passenger struct {
	ID       int64  `json:"passenger_id"`
	FullName string `json:"full_name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
}

// Reservation is the durable record of a successful booking. It is created
// once inside the booking transaction and never updated afterwards.
type Reservation struct {
	ID          int64     `json:"reservation_id"`
	FlightID    int64     `json:"flight_id"`
	PassengerID int64     `json:"passenger_id"`
	Reference   string    `json:"reference"`
	SeatNumber  string    `json:"seat_number"`
	TravelClass string    `json:"travel_class"`
	Price       float64   `json:"price"`
	BookedAt    time.Time `json:"booked_at"`

	// Joined fields for the reservations listing.
	PassengerName string `json:"passenger_name,omitempty"`
	FlightNumber  string `json:"flight_number,omitempty"`
}
