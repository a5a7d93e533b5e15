package service

import (
	"context"
	"fmt"

	"airtech/config"
	"airtech/infras/kafka"
	"airtech/infras/otel"
	"airtech/infras/postgres"
	"airtech/internal/domains/booking/model"
	"airtech/internal/domains/booking/model/dto"
	"airtech/internal/domains/booking/repository"
	flightModel "airtech/internal/domains/flight/model"
	flightRepo "airtech/internal/domains/flight/repository"
	"airtech/permissions"
	"airtech/shared"
	"airtech/shared/cache"
	"airtech/shared/constant"
	gDto "airtech/shared/dto"
	"airtech/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Booking
	flightRepo flightRepo.Flight
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	kafka      kafka.Client
}

func New(repo repository.Booking, flightRepo flightRepo.Flight, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:       repo,
		flightRepo: flightRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		kafka:      kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	passenger, _ := ctx.Value(constant.ContextKeyUserID).(string)

	flight, err := s.resolveFlight(ctx, req.Flight)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(flight.ID, passenger)

	// A passenger books a flight at most once. The unique index decides, so
	// two concurrent requests cannot both get through.
	if err = s.repo.Insert(ctx, booking); err != nil {
		if postgres.IsUniqueViolation(err) {
			log.Error().Str("flight", req.Flight).Str("passenger", passenger).Msg("duplicate booking")

			return res, failure.BadRequestFromString(constant.MessageDuplicateBooking) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert booking")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		s.publishEvent(c, constant.EventBookingCreated, booking, flight.FlightNumber)
	}()

	booking.FlightNumber = flight.FlightNumber
	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	booking.Passenger = username
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	actor := permissions.FromContext(ctx)
	if err = permissions.OwnerOrReadOnly(actor, booking.PassengerID, true); err != nil {
		log.Error().Str("booking", id).Str("actor", actor.ID).Msg("booking update forbidden")

		return err
	}

	updatedFields := shared.TransformFields(req, actor.ID)

	if req.Flight != constant.Empty && req.Flight != booking.FlightNumber {
		flight, err := s.resolveFlight(ctx, req.Flight)
		if err != nil {
			return err
		}

		updatedFields[model.FieldFlightID] = flight.ID
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		if postgres.IsUniqueViolation(err) {
			log.Error().Str("booking", id).Msg("duplicate booking")

			return failure.BadRequestFromString(constant.MessageDuplicateBooking) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	actor := permissions.FromContext(ctx)
	if err = permissions.OwnerOrReadOnly(actor, booking.PassengerID, true); err != nil {
		log.Error().Str("booking", id).Str("actor", actor.ID).Msg("booking delete forbidden")

		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, constant.EventBookingDeleted, booking, booking.FlightNumber)
	}()

	s.invalidate(ctx, id)

	return nil
}

// getBooking loads one booking or reports not found. The joined flight number
// and passenger username come along with the row.
func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// resolveFlight turns the flight number slug carried by booking payloads into
// the flight row it names.
func (s *serviceImpl) resolveFlight(ctx context.Context, flightNumber string) (flightModel.Flight, error) {
	flight, err := s.flightRepo.Get(
		ctx,
		shared.FilterByID(flightNumber, flightModel.FieldFlightNumber, flightModel.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve flight")

		return flight, fmt.Errorf("failed to resolve flight: %w", err)
	}

	if flight.ID == constant.Empty {
		return flight, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	return flight, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking, flightNumber string) {
	message := kafka.Message{
		Key: booking.ID,
		Value: map[string]any{
			"event":             event,
			"booking_id":        booking.ID,
			"flight_id":         booking.FlightID,
			"flight_number":     flightNumber,
			"passenger_id":      booking.PassengerID,
			"number_of_tickets": booking.NumberOfTickets,
		},
	}

	if err := s.kafka.SendMessages(ctx, constant.KafkaTopicBookingEvents, message); err != nil {
		log.Error().Err(err).Msg("failed to publish booking event")
	}
}
