package addon

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/addon/model"
	"hotel/internal/domains/addon/model/dto"
	"hotel/internal/domains/addon/service"
	"hotel/permissions"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Addon
	otel    otel.Otel
}

func New(service service.Addon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/addons", handler.GetAddons)
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	write := access.Write(permissions.PortalMasterData, permissions.SectionAddons)

	router.Route("/admin/addons", func(routerGroup chi.Router) {
		routerGroup.With(access.Read(permissions.PortalMasterData, permissions.SectionAddons)).Get("/", handler.GetAddons)
		routerGroup.With(access.Read(permissions.PortalMasterData, permissions.SectionAddons)).Get("/{id}", handler.GetAddon)
		routerGroup.With(write).Post("/", handler.CreateAddon)
		routerGroup.With(write).Patch("/{id}", handler.UpdateAddon)
		routerGroup.With(write).Delete("/{id}", handler.DeleteAddon)
	})
}

// CreateAddon creates a stay add-on.
// @Summary Create an add-on
// @Tags Addon
// @Accept json
// @Produce json
// @Param request body dto.CreateAddonRequest true "Add-on"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/addons [post]
// @Security BearerAuth
func (handler *Handler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAddon")
	defer scope.End()

	var req dto.CreateAddonRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create addon")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Add-on created successfully")
}

// GetAddons lists add-ons.
// @Summary List add-ons
// @Tags Addon
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetAddonsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/addons [get]
func (handler *Handler) GetAddons(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddons")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	addons, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get addons")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, addons)
}

// GetAddon returns one add-on.
// @Summary Get an add-on
// @Tags Addon
// @Produce json
// @Param id path string true "Add-on ID"
// @Success 200 {object} response.Data[dto.AddonResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/addons/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddon")
	defer scope.End()

	addon, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, addon)
}

// UpdateAddon updates an add-on.
// @Summary Update an add-on
// @Tags Addon
// @Accept json
// @Produce json
// @Param id path string true "Add-on ID"
// @Param request body dto.UpdateAddonRequest true "Changes"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/addons/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAddon")
	defer scope.End()

	var req dto.UpdateAddonRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update addon")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Add-on updated successfully")
}

// DeleteAddon deletes an add-on.
// @Summary Delete an add-on
// @Tags Addon
// @Produce json
// @Param id path string true "Add-on ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/addons/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAddon")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete addon")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Add-on deleted successfully")
}
