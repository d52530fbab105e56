package audit

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/audit/model"
	"hotel/internal/domains/audit/service"
	"hotel/permissions"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	router.With(access.Read(permissions.PortalAdministration, permissions.SectionAuditLogs)).
		Get("/audit-logs", handler.GetAuditLogs)
}

// GetAuditLogs lists audit records, newest first.
// @Summary List audit logs
// @Tags Audit
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Search action, entity or actor"
// @Param category query string false "Exact category"
// @Success 200 {object} response.Data[dto.GetLogsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/audit-logs [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	logs, err := handler.service.GetAll(ctx, queryParams,
		r.URL.Query().Get(constant.RequestParamSearch),
		r.URL.Query().Get(model.FieldCategory),
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}
