package masterdata

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/masterdata/model"
	"hotel/internal/domains/masterdata/model/dto"
	"hotel/internal/domains/masterdata/service"
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
	service service.MasterData
	otel    otel.Otel
}

func New(service service.MasterData, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	read := bySection(access.Read)
	write := bySection(access.Write)

	router.Route("/master-data/{collection}", func(routerGroup chi.Router) {
		routerGroup.With(read).Get("/", handler.GetEntries)
		routerGroup.With(write).Post("/", handler.CreateEntry)
		routerGroup.With(read).Get("/{id}", handler.GetEntry)
		routerGroup.With(read).Get("/{id}/usage", handler.CheckUsage)
		routerGroup.With(write).Patch("/{id}", handler.UpdateEntry)
		routerGroup.With(write).Delete("/{id}", handler.DeleteEntry)
	})
}

// bySection gates each collection on its own master data section.
func bySection(gate func(portal, section string) func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		companies := gate(permissions.PortalMasterData, permissions.SectionCompanies)(next)
		travelAgents := gate(permissions.PortalMasterData, permissions.SectionTravelAgents)(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if collectionParam(r) == model.CollectionTravelAgents {
				travelAgents.ServeHTTP(w, r)

				return
			}

			companies.ServeHTTP(w, r)
		})
	}
}

func collectionParam(r *http.Request) model.Collection {
	return model.Collection(chi.URLParam(r, constant.RequestParamCollection))
}

// GetEntries lists a master data collection with running balances.
// @Summary List master data
// @Tags MasterData
// @Produce json
// @Param collection path string true "companies or travel_agents"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Name, contact person or e-mail"
// @Success 200 {object} response.Data[dto.GetEntriesResponse]
// @Failure 404 {object} response.Error
// @Router /v1/master-data/{collection} [get]
// @Security BearerAuth
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	entries, err := handler.service.GetAll(ctx, collectionParam(r), queryParams, dto.SearchFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get master data")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, entries)
}

// CreateEntry
// @Summary Create master data entry
// @Tags MasterData
// @Accept json
// @Produce json
// @Param collection path string true "companies or travel_agents"
// @Param request body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} response.Data[dto.EntryResponse]
// @Failure 400 {object} response.Error
// @Router /v1/master-data/{collection} [post]
// @Security BearerAuth
func (handler *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEntry")
	defer scope.End()

	var req dto.CreateEntryRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	entry, err := handler.service.Create(ctx, collectionParam(r), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create master data entry")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, entry)
}

// GetEntry
// @Summary Get master data entry
// @Tags MasterData
// @Produce json
// @Param collection path string true "companies or travel_agents"
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Data[dto.EntryResponse]
// @Failure 404 {object} response.Error
// @Router /v1/master-data/{collection}/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntry")
	defer scope.End()

	entry, err := handler.service.Get(ctx, collectionParam(r), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get master data entry")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, entry)
}

// CheckUsage lists the bookings that still reference the entry.
// @Summary Check master data usage
// @Tags MasterData
// @Produce json
// @Param collection path string true "companies or travel_agents"
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Data[dto.UsageResponse]
// @Router /v1/master-data/{collection}/{id}/usage [get]
// @Security BearerAuth
func (handler *Handler) CheckUsage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckUsage")
	defer scope.End()

	usage, err := handler.service.CheckUsage(ctx, collectionParam(r), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check master data usage")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, usage)
}

// UpdateEntry
// @Summary Update master data entry
// @Tags MasterData
// @Accept json
// @Produce json
// @Param collection path string true "companies or travel_agents"
// @Param id path string true "Entry ID"
// @Param request body dto.UpdateEntryRequest true "Changes"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/master-data/{collection}/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEntry")
	defer scope.End()

	var req dto.UpdateEntryRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, collectionParam(r), req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update master data entry")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Entry updated successfully")
}

// DeleteEntry deletes an entry no booking references.
// @Summary Delete master data entry
// @Tags MasterData
// @Produce json
// @Param collection path string true "companies or travel_agents"
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Referenced by bookings"
// @Router /v1/master-data/{collection}/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEntry")
	defer scope.End()

	if err := handler.service.Delete(ctx, collectionParam(r), chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete master data entry")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Entry deleted successfully")
}
