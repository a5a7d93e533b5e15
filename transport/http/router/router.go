package router

import (
	"airtech/internal/handlers/auth"
	"airtech/internal/handlers/booking"
	"airtech/internal/handlers/flight"
	"airtech/internal/handlers/user"
	"airtech/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Flight  flight.Handler
	Booking booking.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

// SetupRoutes mounts every domain under /v1. The auth routes stay reachable
// without a token; everything else requires an authenticated user.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Authenticate)

		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.Auth.RequireAuth)

			r.DomainHandlers.Flight.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
			r.DomainHandlers.User.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
