package middleware

//go:generate go run go.uber.org/mock/mockgen -source=./access.go -destination=./mocks/access_mock.go -package=mocks

import (
	"context"
	"net/http"

	"hotel/infras/otel"
	"hotel/permissions"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Access gates admin routes on a portal section. Read accepts read or read_write, Write needs read_write.
type Access interface {
	Read(portal, section string) func(http.Handler) http.Handler
	Write(portal, section string) func(http.Handler) http.Handler
}

// SubjectLoader resolves the signed-in user's role and permission map.
type SubjectLoader interface {
	Subject(ctx context.Context, userID string) (permissions.Subject, error)
}

type accessImpl struct {
	loader   SubjectLoader
	resolver *permissions.Resolver
	otel     otel.Otel
}

func NewAccessMiddleware(loader SubjectLoader, resolver *permissions.Resolver, otel otel.Otel) Access {
	return &accessImpl{
		loader:   loader,
		resolver: resolver,
		otel:     otel,
	}
}

func (a *accessImpl) Read(portal, section string) func(http.Handler) http.Handler {
	return a.require(portal, section, false)
}

func (a *accessImpl) Write(portal, section string) func(http.Handler) http.Handler {
	return a.require(portal, section, true)
}

func (a *accessImpl) require(portal, section string, write bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx, scope := a.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "access.middleware")
			defer scope.End()

			if internalCall(ctx) {
				next.ServeHTTP(writer, request)

				return
			}

			scope.SetAttributes(map[string]any{
				"access.portal":  portal,
				"access.section": section,
				"access.write":   write,
			})

			actor := shared.ActorFromContext(ctx)
			if actor.ID == constant.ContextGuest {
				response.WithError(writer, errMissingHeader)

				return
			}

			subject, err := a.loader.Subject(ctx, actor.ID)
			if err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Str("user", actor.ID).Msg("failed to resolve permissions")

				response.WithError(writer, err)

				return
			}

			allowed := a.resolver.HasSectionAccess(subject, portal, section)
			if write {
				allowed = a.resolver.CanWrite(subject, portal, section)
			}

			if !allowed {
				scope.SetAttribute("reason", "section_locked")
				log.Warn().Str("user", actor.ID).Str("portal", portal).Str("section", section).Bool("write", write).
					Msg("access denied")

				response.WithError(writer, failure.ForbiddenError)

				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
