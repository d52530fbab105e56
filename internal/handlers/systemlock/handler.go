package systemlock

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/systemlock/model"
	"hotel/internal/domains/systemlock/model/dto"
	"hotel/internal/domains/systemlock/service"
	"hotel/permissions"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.SystemLock
	otel    otel.Otel
}

func New(service service.SystemLock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	write := access.Write(permissions.PortalFrontOffice, permissions.SectionLocks)

	router.Route("/locks", func(routerGroup chi.Router) {
		routerGroup.With(access.Read(permissions.PortalFrontOffice, permissions.SectionLocks)).Get("/", handler.GetLocks)
		routerGroup.With(write).Post("/", handler.AcquireLock)
		routerGroup.With(write).Delete("/{id}", handler.ReleaseLock)
	})
}

// GetLocks lists the locks currently in force.
// @Summary List active system locks
// @Tags SystemLock
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param resource_type query string false "folio or room"
// @Success 200 {object} response.Data[dto.GetLocksResponse]
// @Router /v1/locks [get]
// @Security BearerAuth
func (handler *Handler) GetLocks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	locks, err := handler.service.GetActive(ctx, queryParams, r.URL.Query().Get(model.FieldResourceType))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get system locks")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, locks)
}

// AcquireLock places a lock on a folio or room.
// @Summary Acquire a system lock
// @Tags SystemLock
// @Accept json
// @Produce json
// @Param request body dto.AcquireLockRequest true "Lock"
// @Success 201 {object} response.Data[dto.LockResponse]
// @Failure 409 {object} response.Error
// @Router /v1/locks [post]
// @Security BearerAuth
func (handler *Handler) AcquireLock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcquireLock")
	defer scope.End()

	var req dto.AcquireLockRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	lock, err := handler.service.Acquire(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, lock)
}

// ReleaseLock releases a lock.
// @Summary Release a system lock
// @Tags SystemLock
// @Produce json
// @Param id path string true "Lock ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/locks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) ReleaseLock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseLock")
	defer scope.End()

	if err := handler.service.Release(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release system lock")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Lock released successfully")
}
