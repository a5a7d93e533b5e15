package dto

import (
	"github.com/google/uuid"

	"airtech/internal/domains/booking/model"
	"airtech/shared"
	gDto "airtech/shared/dto"
	gModel "airtech/shared/model"
	"airtech/shared/timezone"
)

type CreateBookingRequest struct {
	Flight          string `json:"flight"            validate:"required,max=7,alphanumspace"`
	NumberOfTickets int    `json:"number_of_tickets" validate:"omitempty,gte=1"`
}

// ToModel builds a booking for the given passenger against a resolved flight.
// A missing ticket count falls back to the default of one.
func (c *CreateBookingRequest) ToModel(flightID, passengerID string) model.Booking {
	tickets := c.NumberOfTickets
	if tickets == 0 {
		tickets = model.DefaultNumberOfTickets
	}

	return model.Booking{
		ID:              uuid.NewString(),
		FlightID:        flightID,
		PassengerID:     passengerID,
		NumberOfTickets: tickets,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  passengerID,
			ModifiedBy: passengerID,
		},
	}
}

type UpdateBookingRequest struct {
	Flight          string `json:"flight"            validate:"omitempty,max=7,alphanumspace"`
	NumberOfTickets int    `db:"number_of_tickets" json:"number_of_tickets" validate:"omitempty,gte=1"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	Flight          string `json:"flight"`
	Passenger       string `json:"passenger"`
	NumberOfTickets int    `json:"number_of_tickets"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.Flight = mod.FlightNumber
	r.Passenger = mod.Passenger
	r.NumberOfTickets = mod.NumberOfTickets
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
