package middleware

import (
	"context"
	"errors"
	"net/http"

	"airtech/infras/jwt"
	"airtech/infras/otel"
	"airtech/shared/constant"
	"airtech/shared/failure"
	"airtech/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth defines the authentication middleware surface. Authenticate resolves
// bearer tokens into request context without rejecting anonymous requests;
// RequireAuth rejects requests that carry no authenticated user. Splitting the
// two lets the register and login routes see who is calling while staying
// reachable without a token.
type Auth interface {
	Authenticate(http.Handler) http.Handler
	RequireAuth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Authenticate validates the bearer token when one is present and stores the
// claims in the request context. Requests without an Authorization header pass
// through anonymous; requests with a bad token are rejected outright.
func (m *authImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == constant.Empty {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.UserID == constant.Empty || claims.Username == constant.Empty {
			log.Error().Msg("JWT claims missing user identity")

			response.WithError(writer, failure.Unauthorized("Invalid token claims"))

			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireAuth rejects requests that did not authenticate. Must run after
// Authenticate.
func (m *authImpl) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		userID, _ := request.Context().Value(constant.ContextKeyUserID).(string)

		if userID == constant.Empty {
			response.WithError(writer, failure.Unauthorized("Missing authorization header"))

			return
		}

		next.ServeHTTP(writer, request)
	})
}
