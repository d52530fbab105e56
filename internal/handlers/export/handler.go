package export

import (
	"fmt"
	"net/http"

	"hotel/infras/otel"
	auditModel "hotel/internal/domains/audit/model"
	"hotel/internal/domains/export/service"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	router.With(access.Read(permissions.PortalAccounts, permissions.SectionExports)).
		Get("/exports/{resource}", handler.Export)
}

// Export downloads a resource as CSV, honouring the list filters of that resource.
// @Summary Export CSV
// @Tags Export
// @Produce text/csv
// @Param resource path string true "bookings, companies, travel_agents or audit_logs"
// @Param q query string false "Search"
// @Param status query string false "Booking status"
// @Param company_id query string false "Booking company"
// @Param travel_agent_id query string false "Booking travel agent"
// @Param archived query bool false "Booking archived flag"
// @Param category query string false "Audit category"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /v1/exports/{resource} [get]
// @Security BearerAuth
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	resource := chi.URLParam(r, constant.RequestParamResource)

	filters := service.Filters{
		Search:   r.URL.Query().Get(constant.RequestParamSearch),
		Category: r.URL.Query().Get(auditModel.FieldCategory),
	}
	filters.Bookings.FromRequest(r)

	body, err := handler.service.Export(ctx, resource, filters)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", resource).Msg("failed to export")
		response.WithError(w, err)

		return
	}

	response.WithCSV(w, fmt.Sprintf("%s-%s.csv", resource, timezone.Format(timezone.Now(), "20060102-150405")), body)
}
