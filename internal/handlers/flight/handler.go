package flight

import (
	"net/http"

	"airtech/infras/otel"
	"airtech/internal/domains/flight/model"
	"airtech/internal/domains/flight/model/dto"
	"airtech/internal/domains/flight/service"
	"airtech/permissions"
	"airtech/shared/constant"
	gDto "airtech/shared/dto"
	"airtech/shared/validator"
	"airtech/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/flights", func(r chi.Router) {
		r.Post("/", handler.CreateFlight)
		r.Get("/", handler.GetFlights)
		r.Get("/{id}", handler.GetFlightByID)
		r.Patch("/{id}", handler.UpdateFlight)
		r.Delete("/{id}", handler.DeleteFlight)
	})
}

// CreateFlight handles the creation of a new flight.
// @Summary Create a new flight
// @Description Create a new flight with the provided details. Administrators only.
// @Tags Flight
// @Accept json
// @Produce json
// @Param request body dto.CreateFlightRequest true "Create Flight Request"
// @Success 201 {object} response.Data[dto.FlightResponse] "Flight created successfully"
// @Failure 400 {object} response.FieldError
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights [post]
// @Security BearerAuth
func (handler *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFlight")
	defer scope.End()

	if err := permissions.AdminOrReadOnly(permissions.FromContext(ctx), true); err != nil {
		scope.TraceError(err)
		log.Warn().Msg("flight create forbidden")

		response.WithError(w, err)

		return
	}

	req := dto.CreateFlightRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create flight")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Flight created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetFlights retrieves all flights based on query parameters.
// @Summary Get all flights
// @Description Retrieve all flights with optional filtering and pagination, ordered by flight number.
// @Tags Flight
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param origin query string false "Filter by origin"
// @Param destination query string false "Filter by destination"
// @Param flight_status query string false "Filter by status code"
// @Success 200 {object} response.Data[dto.GetFlightsResponse] "List of flights"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights [get]
// @Security BearerAuth
func (handler *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlights")
	defer scope.End()

	if err := permissions.AdminOrReadOnly(permissions.FromContext(ctx), false); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOrigin,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldOrigin),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDestination,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldDestination),
				Table:    model.TableName,
			},
		},
	}

	if status := r.URL.Query().Get(model.FieldFlightStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFlightStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	flights, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flights")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flights retrieved successfully")

	response.WithJSON(w, http.StatusOK, flights)
}

// GetFlightByID retrieves a flight by its ID, bookings included.
// @Summary Get a flight by ID
// @Description Retrieve a flight and its bookings by its unique identifier.
// @Tags Flight
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Data[dto.FlightDetailResponse] "Flight details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightByID")
	defer scope.End()

	if err := permissions.AdminOrReadOnly(permissions.FromContext(ctx), false); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	flight, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flight by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight retrieved successfully")

	response.WithJSON(w, http.StatusOK, flight)
}

// UpdateFlight updates an existing flight by its ID.
// @Summary Update a flight by ID
// @Description Update the details of an existing flight. Administrators only.
// @Tags Flight
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Param request body dto.UpdateFlightRequest true "Update Flight Request"
// @Success 200 {object} response.Message "Flight updated successfully"
// @Failure 400 {object} response.FieldError
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFlight")
	defer scope.End()

	if err := permissions.AdminOrReadOnly(permissions.FromContext(ctx), true); err != nil {
		scope.TraceError(err)
		log.Warn().Msg("flight update forbidden")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFlightRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update flight")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Flight updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Flight updated successfully")
}

// DeleteFlight deletes a flight by its ID.
// @Summary Delete a flight by ID
// @Description Delete a flight and its bookings. Administrators only.
// @Tags Flight
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Success 204 "Flight deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFlight")
	defer scope.End()

	if err := permissions.AdminOrReadOnly(permissions.FromContext(ctx), true); err != nil {
		scope.TraceError(err)
		log.Warn().Msg("flight delete forbidden")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete flight")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Flight deleted successfully by user " + user)

	w.WriteHeader(http.StatusNoContent)
}
