package service

import (
	"context"
	"fmt"

	"airtech/config"
	"airtech/infras/kafka"
	"airtech/infras/otel"
	"airtech/infras/postgres"
	bookingModel "airtech/internal/domains/booking/model"
	bookingRepo "airtech/internal/domains/booking/repository"
	"airtech/internal/domains/flight/model"
	"airtech/internal/domains/flight/model/dto"
	"airtech/internal/domains/flight/repository"
	"airtech/shared"
	"airtech/shared/cache"
	"airtech/shared/constant"
	gDto "airtech/shared/dto"
	"airtech/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFlight    = "flight:get"
	cacheGetAllFlight = "flight:gets"
	cacheCountFlight  = "flight:count"

	cacheBookingPrefix = "booking"

	msgFlightNumberTaken = "flight with this flight number already exists."
)

type Flight interface {
	Create(ctx context.Context, req dto.CreateFlightRequest) (dto.FlightResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFlightsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.FlightDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateFlightRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Flight
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(repo repository.Flight, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Flight {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFlightRequest) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	flight, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("invalid flight request")

		return res, err
	}

	if err = s.repo.Insert(ctx, flight); err != nil {
		if postgres.IsUniqueViolation(err) {
			log.Error().Str("flightNumber", flight.FlightNumber).Msg("flight number already taken")

			return res, failure.Fields(map[string]string{model.FieldFlightNumber: msgFlightNumberTaken}) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert flight")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFlight)
		shared.InvalidateCaches(c, s.cache, cacheCountFlight)
	}()

	res.FromModel(flight)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Listings come back in flight number order unless the caller asks otherwise.
	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldFlightNumber
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFlight, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flights")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count flights")

		return res, fmt.Errorf("failed to count flights: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights")

		return res, fmt.Errorf("failed to get flights: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save flights to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFlight, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flight count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count flights")

		return res, fmt.Errorf("failed to count flights: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save flight count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FlightDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFlight, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flight")

		return res, nil
	}

	flight, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == constant.Empty {
		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	bookings, err := s.bookingRepo.GetAll(
		ctx,
		gDto.QueryParams{},
		shared.FilterByID(id, bookingModel.FieldFlightID, bookingModel.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight bookings")

		return res, fmt.Errorf("failed to get flight bookings: %w", err)
	}

	res.FromModel(flight)
	res.Bookings = make([]dto.FlightBookingResponse, len(bookings))
	for i, booking := range bookings {
		res.Bookings[i] = dto.FlightBookingResponse{
			ID:              booking.ID,
			PassengerID:     booking.PassengerID,
			NumberOfTickets: booking.NumberOfTickets,
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save flight to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFlightRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentFlight, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check flight existence")

		return err
	}

	if currentFlight.ID == constant.Empty {
		log.Error().Msg("flight not found")

		return failure.NotFound("flight not found") // nolint:wrapcheck
	}

	departure, arrival, err := req.Validate(currentFlight)
	if err != nil {
		log.Error().Err(err).Msg("invalid flight update request")

		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if req.Departure != constant.Empty {
		updatedFields[model.FieldDeparture] = departure
	}

	if req.Arrival != constant.Empty {
		updatedFields[model.FieldArrival] = arrival
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		if postgres.IsUniqueViolation(err) {
			log.Error().Str("flightNumber", req.FlightNumber).Msg("flight number already taken")

			return failure.Fields(map[string]string{model.FieldFlightNumber: msgFlightNumberTaken}) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update flight")

		return fmt.Errorf("failed to update flight: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFlight, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete flight cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFlight)
		shared.InvalidateCaches(c, s.cache, cacheCountFlight)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	flight, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight exists")

		return fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if flight.ID == constant.Empty {
		log.Error().Msg("flight not found")

		return failure.NotFound("flight not found") // nolint:wrapcheck
	}

	// Bookings go with the flight, in the same transaction.
	if err = s.repo.DeleteWithBookings(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete flight")

		return fmt.Errorf("failed to delete flight: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFlight, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete flight from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFlight)
		shared.InvalidateCaches(c, s.cache, cacheCountFlight)
		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)

		event := kafka.Message{
			Key: flight.ID,
			Value: map[string]any{
				"event":         constant.EventFlightDeleted,
				"flight_id":     flight.ID,
				"flight_number": flight.FlightNumber,
			},
		}
		if err := s.kafka.SendMessages(c, constant.KafkaTopicBookingEvents, event); err != nil {
			log.Error().Err(err).Msg("failed to publish flight deleted event")
		}
	}()

	return nil
}
