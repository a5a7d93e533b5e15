//go:build wireinject
// +build wireinject

package di

import (
	"airtech/config"
	"airtech/infras/jwt"
	"airtech/infras/kafka"
	"airtech/infras/otel"
	"airtech/infras/postgres"
	"airtech/infras/redis"
	"airtech/infras/s3"
	"airtech/shared/cache"
	"airtech/transport/http"
	"airtech/transport/http/middleware"
	"airtech/transport/http/router"

	"github.com/google/wire"

	authService "airtech/internal/domains/auth/service"
	bookingRepository "airtech/internal/domains/booking/repository"
	bookingService "airtech/internal/domains/booking/service"
	flightRepository "airtech/internal/domains/flight/repository"
	flightService "airtech/internal/domains/flight/service"
	userRepository "airtech/internal/domains/user/repository"
	userService "airtech/internal/domains/user/service"
	authHandler "airtech/internal/handlers/auth"
	bookingHandler "airtech/internal/handlers/booking"
	flightHandler "airtech/internal/handlers/flight"
	userHandler "airtech/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	flightDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	flightHandler.New,
	bookingHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
