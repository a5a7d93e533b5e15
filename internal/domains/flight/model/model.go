package model

import (
	"airtech/shared/model"
	"time"
)

const (
	TableName  = "flights"
	EntityName = "flight"

	FieldID           = "id"
	FieldOrigin       = "origin"
	FieldDestination  = "destination"
	FieldDeparture    = "departure"
	FieldArrival      = "arrival"
	FieldTypeOfFlight = "type_of_flight"
	FieldFlightStatus = "flight_status"
	FieldFlightNumber = "flight_number"
	FieldAirline      = "airline"
	FieldPrice        = "price"
)

// Flight type and status codes form closed sets; an unrecognized code is a
// validation failure, never a silent default.
const (
	TypeOneWay       = "OW"
	TypeRoundTrip    = "RT"
	TypeDirectFlight = "DF"

	StatusDelayed    = "D"
	StatusCancelled  = "C"
	StatusEnRoute    = "E"
	StatusScheduled  = "S"
	StatusLanded     = "L"
	StatusRedirected = "R"
	StatusUnknown    = "U"
)

var (
	FlightTypes = map[string]string{
		TypeOneWay:       "One-way",
		TypeRoundTrip:    "Round-trip",
		TypeDirectFlight: "Direct-flight",
	}

	FlightStatuses = map[string]string{
		StatusDelayed:    "Delayed",
		StatusCancelled:  "Cancelled",
		StatusEnRoute:    "En-route",
		StatusScheduled:  "Scheduled",
		StatusLanded:     "Landed",
		StatusRedirected: "Redirected",
		StatusUnknown:    "Unknown",
	}
)

// TypeDisplay returns the human-readable name of a flight type code.
func TypeDisplay(code string) string {
	return FlightTypes[code]
}

// StatusDisplay returns the human-readable name of a flight status code.
func StatusDisplay(code string) string {
	return FlightStatuses[code]
}

type Flight struct {
	ID           string    `db:"id"`
	Origin       string    `db:"origin"`
	Destination  string    `db:"destination"`
	Departure    time.Time `db:"departure"`
	Arrival      time.Time `db:"arrival"`
	TypeOfFlight string    `db:"type_of_flight"`
	FlightStatus string    `db:"flight_status"`
	FlightNumber string    `db:"flight_number"`
	Airline      string    `db:"airline"`
	Price        int       `db:"price"`
	model.Metadata
}
