package domain

import "time"

type Airline struct {
	ID   int64  `json:"airline_id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Flight carries the airline display fields from the join so handlers can
// return rows in the same shape the SQL queries produce.
type Flight struct {
	ID                int64     `json:"flight_id"`
	AirlineID         int64     `json:"airline_id"`
	FlightNumber      string    `json:"flight_number"`
	DepartureAirport  string    `json:"departure_airport"`
	ArrivalAirport    string    `json:"arrival_airport"`
	DepartureDatetime time.Time `json:"departure_datetime"`
	ArrivalDatetime   time.Time `json:"arrival_datetime"`
	SeatsTotal        int       `json:"seats_total"`
	SeatsAvailable    int       `json:"seats_available"`
	AirlineName       string    `json:"airline_name"`
	AirlineCode       string    `json:"airline_code"`
}

// SearchFilters are ANDed together; empty fields impose no constraint.
// Date is a calendar date in YYYY-MM-DD form, matched against the departure
// date regardless of time of day.
type SearchFilters struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	TravelClass string `json:"travel_class"`
}

func (f SearchFilters) Empty() bool {
	return f.Origin == "" && f.Destination == "" && f.Date == ""
}
