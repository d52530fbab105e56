package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/shared/cache"
	"hotel/shared/constant"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel    otel.Otel
	config  *config.Config
	cache   cache.RedisCache
	metrics *metrics.Metrics
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache, metrics *metrics.Metrics) AppMiddleware {
	return &appMiddleware{
		otel:    otel,
		config:  config,
		cache:   cache,
		metrics: metrics,
	}
}

// Tracing opens the request span, records the request metrics and writes one access log line.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", request.Method, request.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     clientIP(request),
			"http.request_id": chiMiddleware.GetReqID(ctx),
		})

		wrapped := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		a.metrics.InFlight.Inc()
		next.ServeHTTP(wrapped, request.WithContext(ctx))
		a.metrics.InFlight.Dec()

		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := request.URL.Path
		if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.RoutePattern() != constant.Empty {
			route = rctx.RoutePattern()
		}

		elapsed := time.Since(start)

		scope.SetAttributes(map[string]any{
			"http.route":       route,
			"http.status_code": status,
		})

		a.metrics.ObserveRequest(request.Method, route, strconv.Itoa(status), elapsed)

		log.Info().
			Str("method", request.Method).
			Str("route", route).
			Int("status", status).
			Int64("duration_ms", elapsed.Milliseconds()).
			Int("bytes", wrapped.BytesWritten()).
			Str("request_id", chiMiddleware.GetReqID(ctx)).
			Msg("request handled")
	})
}
