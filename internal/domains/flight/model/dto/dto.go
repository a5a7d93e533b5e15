package dto

import (
	"time"

	"github.com/google/uuid"

	"airtech/internal/domains/flight/model"
	"airtech/shared"
	"airtech/shared/constant"
	gDto "airtech/shared/dto"
	"airtech/shared/failure"
	gModel "airtech/shared/model"
	"airtech/shared/timezone"
	"airtech/shared/validation"
	"airtech/shared/validator"
)

const (
	msgDepartureInPast = "The departure date cannot be in the past"
	msgArrivalInPast   = "The arrival date cannot be in the past"
	msgInvalidDates    = "The arrival date cannot be less than the departure date"
	msgBadDateFormat   = "must be a valid date in YYYY-MM-DD format"

	fieldInvalidDates = "invalid_dates"
)

type CreateFlightRequest struct {
	Origin       string `json:"origin"         validate:"required,max=100,alphaonly"`
	Destination  string `json:"destination"    validate:"required,max=100,alphaonly"`
	Departure    string `json:"departure"      validate:"required"`
	Arrival      string `json:"arrival"        validate:"required"`
	TypeOfFlight string `json:"type_of_flight" validate:"omitempty,oneof=OW RT DF"`
	FlightStatus string `json:"flight_status"  validate:"omitempty,oneof=D C E S L R U"`
	FlightNumber string `json:"flight_number"  validate:"required,max=7,alphanumspace"`
	Airline      string `json:"airline"        validate:"required,max=50,alphaonly"`
	Price        int    `json:"price"          validate:"gte=0"`
}

// ToModel validates the request and builds the flight. Pattern, enum and date
// failures are collected into one field map rather than short-circuited, so
// the caller receives every offending field at once.
func (c *CreateFlightRequest) ToModel(user string) (model.Flight, error) {
	fields := validator.ValidateStructFields(c)
	if fields == nil {
		fields = map[string]string{}
	}

	departure, arrival, dateFields := validateDates(c.Departure, c.Arrival)
	for field, msg := range dateFields {
		fields[field] = msg
	}

	if len(fields) > 0 {
		return model.Flight{}, failure.Fields(fields) //nolint:wrapcheck
	}

	typeOfFlight := c.TypeOfFlight
	if typeOfFlight == constant.Empty {
		typeOfFlight = model.TypeOneWay
	}

	flightStatus := c.FlightStatus
	if flightStatus == constant.Empty {
		flightStatus = model.StatusScheduled
	}

	return model.Flight{
		ID:           uuid.NewString(),
		Origin:       c.Origin,
		Destination:  c.Destination,
		Departure:    departure,
		Arrival:      arrival,
		TypeOfFlight: typeOfFlight,
		FlightStatus: flightStatus,
		FlightNumber: c.FlightNumber,
		Airline:      c.Airline,
		Price:        c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateFlightRequest struct {
	Origin       string `db:"origin"         json:"origin"         validate:"omitempty,max=100,alphaonly"`
	Destination  string `db:"destination"    json:"destination"    validate:"omitempty,max=100,alphaonly"`
	Departure    string `json:"departure"    validate:"omitempty"`
	Arrival      string `json:"arrival"      validate:"omitempty"`
	TypeOfFlight string `db:"type_of_flight" json:"type_of_flight" validate:"omitempty,oneof=OW RT DF"`
	FlightStatus string `db:"flight_status"  json:"flight_status"  validate:"omitempty,oneof=D C E S L R U"`
	FlightNumber string `db:"flight_number"  json:"flight_number"  validate:"omitempty,max=7,alphanumspace"`
	Airline      string `db:"airline"        json:"airline"        validate:"omitempty,max=50,alphaonly"`
	Price        *int   `db:"price"          json:"price"          validate:"omitempty,gte=0"`
}

// Validate collects pattern and date failures for the changed fields. The date
// rules run against the flight's stored dates when only one side changes, so a
// partial update can never leave the pair inconsistent.
func (u *UpdateFlightRequest) Validate(current model.Flight) (departure, arrival time.Time, err error) {
	fields := validator.ValidateStructFields(u)
	if fields == nil {
		fields = map[string]string{}
	}

	departureStr := u.Departure
	if departureStr == constant.Empty {
		departureStr = timezone.Format(current.Departure, constant.DateOnlyFormat)
	}

	arrivalStr := u.Arrival
	if arrivalStr == constant.Empty {
		arrivalStr = timezone.Format(current.Arrival, constant.DateOnlyFormat)
	}

	departure, arrival, dateFields := validateDates(departureStr, arrivalStr)
	for field, msg := range dateFields {
		fields[field] = msg
	}

	if len(fields) > 0 {
		return departure, arrival, failure.Fields(fields) //nolint:wrapcheck
	}

	return departure, arrival, nil
}

// validateDates parses and checks the date pair, reporting every failure. The
// past-date checks run independently per field and the ordering check runs
// whenever both dates parsed, regardless of earlier failures.
func validateDates(departureStr, arrivalStr string) (departure, arrival time.Time, fields map[string]string) {
	fields = map[string]string{}
	today := timezone.Now()

	departure, depErr := timezone.Parse(constant.DateOnlyFormat, departureStr)
	if depErr != nil {
		fields[model.FieldDeparture] = msgBadDateFormat
	} else if validation.IsPastDate(departure, today) {
		fields[model.FieldDeparture] = msgDepartureInPast
	}

	arrival, arrErr := timezone.Parse(constant.DateOnlyFormat, arrivalStr)
	if arrErr != nil {
		fields[model.FieldArrival] = msgBadDateFormat
	} else if validation.IsPastDate(arrival, today) {
		fields[model.FieldArrival] = msgArrivalInPast
	}

	if depErr == nil && arrErr == nil && validation.IsArrivalBeforeDeparture(arrival, departure) {
		fields[fieldInvalidDates] = msgInvalidDates
	}

	return departure, arrival, fields
}

type FlightResponse struct {
	ID                 string `json:"id"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	Departure          string `json:"departure"`
	Arrival            string `json:"arrival"`
	TypeOfFlight       string `json:"type_of_flight"`
	TypeOfFlightDetail string `json:"type_of_flight_detail"`
	FlightStatus       string `json:"flight_status"`
	FlightStatusDetail string `json:"flight_status_detail"`
	FlightNumber       string `json:"flight_number"`
	Airline            string `json:"airline"`
	Price              int    `json:"price"`
	gDto.Metadata
}

func (r *FlightResponse) FromModel(mod model.Flight) {
	r.ID = mod.ID
	r.Origin = mod.Origin
	r.Destination = mod.Destination
	r.Departure = timezone.Format(mod.Departure, constant.DateOnlyFormat)
	r.Arrival = timezone.Format(mod.Arrival, constant.DateOnlyFormat)
	r.TypeOfFlight = mod.TypeOfFlight
	r.TypeOfFlightDetail = model.TypeDisplay(mod.TypeOfFlight)
	r.FlightStatus = mod.FlightStatus
	r.FlightStatusDetail = model.StatusDisplay(mod.FlightStatus)
	r.FlightNumber = mod.FlightNumber
	r.Airline = mod.Airline
	r.Price = mod.Price
	r.Metadata.FromModel(mod.Metadata)
}

// FlightBookingResponse is the booking projection embedded in a flight detail.
type FlightBookingResponse struct {
	ID              string `json:"id"`
	PassengerID     string `json:"passenger"`
	NumberOfTickets int    `json:"number_of_tickets"`
}

type FlightDetailResponse struct {
	FlightResponse
	Bookings []FlightBookingResponse `json:"bookings"`
}

type GetFlightsResponse struct {
	Flights   []FlightResponse `json:"flights"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetFlightsResponse) FromModels(models []model.Flight, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Flights = make([]FlightResponse, len(models))
	for i, mod := range models {
		r.Flights[i].FromModel(mod)
	}
}
