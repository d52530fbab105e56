package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

type internalCallKey struct{}

var (
	errMissingHeader   = failure.Unauthorized("Missing authorization header")
	errMalformedHeader = failure.Unauthorized("Invalid authorization header format")
	errExpiredToken    = failure.Unauthorized("Token has expired")
	errInvalidToken    = failure.Unauthorized("Invalid token")
	errInvalidClaims   = failure.Unauthorized("Invalid token claims")
)

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		cfg:        cfg,
	}
}

// internalCall reports whether APIKey admitted the request with the shared key.
func internalCall(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallKey{}).(bool)

	return internal
}

func (m *authImpl) claims(ctx context.Context, header string) (*jwt.Claims, error) {
	if header == constant.Empty {
		return nil, errMissingHeader
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return nil, errMalformedHeader
	}

	claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)

	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return nil, errExpiredToken
	case errors.Is(err, jwt.ErrInvalidClaim):
		return nil, errInvalidClaims
	case err != nil:
		return nil, errInvalidToken
	case claims.UserID == constant.Empty || claims.Email == constant.Empty:
		log.Warn().Str("token", claims.TokenID).Msg("token is missing identity claims")

		return nil, errInvalidClaims
	}

	return claims, nil
}

// Auth validates the bearer token and puts the caller's identity on the context.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		if internalCall(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		claims, err := m.claims(ctx, request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("user.id", claims.UserID)

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// APIKey admits internal callers presenting the shared key; requests without a key
// continue to token authentication.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == constant.Empty {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		expected := m.cfg.App.APIKey
		if expected == constant.Empty || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, internalCallKey{}, true)))
	})
}
