package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"airtech/internal/domains/flight/model"
	"airtech/internal/domains/flight/model/dto"
	"airtech/shared/constant"
	"airtech/shared/failure"
	gModel "airtech/shared/model"
	"airtech/shared/timezone"
)

func futureDate(days int) string {
	return timezone.Format(timezone.Now().AddDate(0, 0, days), constant.DateOnlyFormat)
}

func TestCreateFlightRequest_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateFlightRequest
		wantErr    bool
		wantFields []string
	}{
		{
			name: "valid request with defaults",
			req: dto.CreateFlightRequest{
				Origin:       "Jakarta",
				Destination:  "Singapore",
				Departure:    futureDate(7),
				Arrival:      futureDate(8),
				FlightNumber: "GA123",
				Airline:      "Garuda",
				Price:        150,
			},
			wantErr: false,
		},
		{
			name: "both dates in the past reported together",
			req: dto.CreateFlightRequest{
				Origin:       "Jakarta",
				Destination:  "Singapore",
				Departure:    "2020-01-01",
				Arrival:      "2020-01-02",
				FlightNumber: "GA123",
				Airline:      "Garuda",
			},
			wantErr:    true,
			wantFields: []string{model.FieldDeparture, model.FieldArrival},
		},
		{
			name: "arrival before departure",
			req: dto.CreateFlightRequest{
				Origin:       "Jakarta",
				Destination:  "Singapore",
				Departure:    futureDate(10),
				Arrival:      futureDate(5),
				FlightNumber: "GA123",
				Airline:      "Garuda",
			},
			wantErr:    true,
			wantFields: []string{"invalid_dates"},
		},
		{
			name: "malformed departure date",
			req: dto.CreateFlightRequest{
				Origin:       "Jakarta",
				Destination:  "Singapore",
				Departure:    "07-09-2026",
				Arrival:      futureDate(8),
				FlightNumber: "GA123",
				Airline:      "Garuda",
			},
			wantErr:    true,
			wantFields: []string{model.FieldDeparture},
		},
		{
			name: "origin with digits",
			req: dto.CreateFlightRequest{
				Origin:       "Jakarta1",
				Destination:  "Singapore",
				Departure:    futureDate(7),
				Arrival:      futureDate(8),
				FlightNumber: "GA123",
				Airline:      "Garuda",
			},
			wantErr:    true,
			wantFields: []string{"origin"},
		},
		{
			name: "pattern and date failures collected together",
			req: dto.CreateFlightRequest{
				Origin:       "Jakarta1",
				Destination:  "Singapore",
				Departure:    "2020-01-01",
				Arrival:      futureDate(8),
				FlightNumber: "GA-123",
				Airline:      "Garuda",
			},
			wantErr:    true,
			wantFields: []string{"origin", model.FieldDeparture, "flight_number"},
		},
		{
			name: "unknown flight status",
			req: dto.CreateFlightRequest{
				Origin:       "Jakarta",
				Destination:  "Singapore",
				Departure:    futureDate(7),
				Arrival:      futureDate(8),
				FlightStatus: "X",
				FlightNumber: "GA123",
				Airline:      "Garuda",
			},
			wantErr:    true,
			wantFields: []string{"flight_status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flight, err := tt.req.ToModel("test-user")

			if tt.wantErr {
				assert.Error(t, err)

				fields := failure.GetFields(err)
				assert.NotNil(t, fields)
				for _, field := range tt.wantFields {
					assert.Contains(t, fields, field)
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, flight.ID)
			assert.Equal(t, tt.req.Origin, flight.Origin)
			assert.Equal(t, tt.req.FlightNumber, flight.FlightNumber)
			assert.Equal(t, model.TypeOneWay, flight.TypeOfFlight)
			assert.Equal(t, model.StatusScheduled, flight.FlightStatus)
			assert.Equal(t, "test-user", flight.CreatedBy)
			assert.Equal(t, "test-user", flight.ModifiedBy)
		})
	}
}

func TestUpdateFlightRequest_Validate(t *testing.T) {
	current := model.Flight{
		ID:           "flight-id",
		Origin:       "Jakarta",
		Destination:  "Singapore",
		Departure:    timezone.Now().AddDate(0, 0, 7),
		Arrival:      timezone.Now().AddDate(0, 0, 8),
		FlightNumber: "GA123",
	}

	tests := []struct {
		name       string
		req        dto.UpdateFlightRequest
		wantErr    bool
		wantFields []string
	}{
		{
			name:    "empty update keeps the stored dates",
			req:     dto.UpdateFlightRequest{},
			wantErr: false,
		},
		{
			name: "moving departure past the stored arrival",
			req: dto.UpdateFlightRequest{
				Departure: futureDate(20),
			},
			wantErr:    true,
			wantFields: []string{"invalid_dates"},
		},
		{
			name: "moving arrival forward alone",
			req: dto.UpdateFlightRequest{
				Arrival: futureDate(30),
			},
			wantErr: false,
		},
		{
			name: "departure in the past",
			req: dto.UpdateFlightRequest{
				Departure: "2020-01-01",
			},
			wantErr:    true,
			wantFields: []string{model.FieldDeparture},
		},
		{
			name: "bad airline pattern",
			req: dto.UpdateFlightRequest{
				Airline: "Air 2000!",
			},
			wantErr:    true,
			wantFields: []string{"airline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			departure, arrival, err := tt.req.Validate(current)

			if tt.wantErr {
				assert.Error(t, err)

				fields := failure.GetFields(err)
				assert.NotNil(t, fields)
				for _, field := range tt.wantFields {
					assert.Contains(t, fields, field)
				}

				return
			}

			assert.NoError(t, err)
			assert.False(t, departure.IsZero())
			assert.False(t, arrival.IsZero())
		})
	}
}

func TestFlightResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	flight := model.Flight{
		ID:           "flight-id",
		Origin:       "Jakarta",
		Destination:  "Singapore",
		Departure:    now.AddDate(0, 0, 7),
		Arrival:      now.AddDate(0, 0, 8),
		TypeOfFlight: model.TypeRoundTrip,
		FlightStatus: model.StatusDelayed,
		FlightNumber: "GA123",
		Airline:      "Garuda",
		Price:        150,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.FlightResponse
	response.FromModel(flight)

	assert.Equal(t, flight.ID, response.ID)
	assert.Equal(t, flight.FlightNumber, response.FlightNumber)
	assert.Equal(t, model.TypeRoundTrip, response.TypeOfFlight)
	assert.Equal(t, model.TypeDisplay(model.TypeRoundTrip), response.TypeOfFlightDetail)
	assert.Equal(t, model.StatusDisplay(model.StatusDelayed), response.FlightStatusDetail)
	assert.Equal(t, timezone.Format(flight.Departure, constant.DateOnlyFormat), response.Departure)
	assert.Equal(t, timezone.Format(flight.Arrival, constant.DateOnlyFormat), response.Arrival)
}

func TestGetFlightsResponse_FromModels(t *testing.T) {
	flights := []model.Flight{
		{ID: "flight-1", FlightNumber: "GA123"},
		{ID: "flight-2", FlightNumber: "GA456"},
	}

	var response dto.GetFlightsResponse
	response.FromModels(flights, 12, 10)

	assert.Len(t, response.Flights, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, "GA123", response.Flights[0].FlightNumber)
}
