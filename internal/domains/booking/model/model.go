package model

import "airtech/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldFlightID        = "flight_id"
	FieldPassengerID     = "passenger_id"
	FieldNumberOfTickets = "number_of_tickets"
)

// DefaultNumberOfTickets applies when a booking request omits the count.
const DefaultNumberOfTickets = 1

type Booking struct {
	ID              string `db:"id"`
	FlightID        string `db:"flight_id"`
	PassengerID     string `db:"passenger_id"`
	NumberOfTickets int    `db:"number_of_tickets"`
	FlightNumber    string `db:"flight_number"      table:"flights"`
	Passenger       string `db:"passenger_username" table:"users" column:"username"`
	model.Metadata
}

// GetJoinQuery resolves the flight number and passenger username alongside
// each booking row.
func (Booking) GetJoinQuery() string {
	return "JOIN flights ON flights.id = bookings.flight_id JOIN users ON users.id = bookings.passenger_id"
}
