package folio

import (
	"context"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/folio/model/dto"
	"hotel/internal/domains/folio/service"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	paramKind     = "kind"
	paramChargeID = "chargeID"
)

type Handler struct {
	service service.Folio
	otel    otel.Otel
}

func New(service service.Folio, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	router.Route("/bookings/{id}/folio", func(routerGroup chi.Router) {
		routerGroup.With(access.Read(permissions.PortalFrontOffice, permissions.SectionFolio)).Get("/", handler.GetFolio)
		routerGroup.With(access.Write(permissions.PortalFoodBeverage, permissions.SectionFoodOrders)).Post("/food-orders", handler.PostFoodOrder)
		routerGroup.With(access.Write(permissions.PortalFrontOffice, permissions.SectionFolio)).Post("/guest-services", handler.PostGuestService)
		routerGroup.With(access.Write(permissions.PortalFrontOffice, permissions.SectionFolio)).Post("/addons", handler.PostAddon)
		routerGroup.With(access.Write(permissions.PortalAccounts, permissions.SectionPayments)).Post("/transactions", handler.PostTransaction)
		routerGroup.With(access.Write(permissions.PortalFrontOffice, permissions.SectionFolio)).
			Patch("/{kind}/{chargeID}", handler.UpdateChargeStatus)
	})
}

// GetFolio lists every posting on a booking.
// @Summary Get booking folio
// @Tags Folio
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.FolioResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/folio [get]
// @Security BearerAuth
func (handler *Handler) GetFolio(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFolio")
	defer scope.End()

	folio, err := handler.service.List(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get folio")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, folio)
}

func post[T any](handler *Handler, writer http.ResponseWriter, request *http.Request, span string, call func(context.Context, string, T) error) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+span)
	defer scope.End()

	var req T

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := call(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("posting", span).Msg("failed to post to folio")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Posted to folio successfully")
}

// PostFoodOrder charges a restaurant or room-service order.
// @Summary Post food order
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PostFoodOrderRequest true "Food order"
// @Success 201 {object} response.Message
// @Failure 422 {object} response.Error "Folio is closed"
// @Router /v1/bookings/{id}/folio/food-orders [post]
// @Security BearerAuth
func (handler *Handler) PostFoodOrder(writer http.ResponseWriter, request *http.Request) {
	post(handler, writer, request, "PostFoodOrder", func(ctx context.Context, id string, req dto.PostFoodOrderRequest) error {
		return handler.service.PostFoodOrder(ctx, id, req)
	})
}

// PostGuestService charges a guest service.
// @Summary Post guest service
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PostGuestServiceRequest true "Guest service"
// @Success 201 {object} response.Message
// @Failure 422 {object} response.Error "Folio is closed"
// @Router /v1/bookings/{id}/folio/guest-services [post]
// @Security BearerAuth
func (handler *Handler) PostGuestService(writer http.ResponseWriter, request *http.Request) {
	post(handler, writer, request, "PostGuestService", func(ctx context.Context, id string, req dto.PostGuestServiceRequest) error {
		return handler.service.PostGuestService(ctx, id, req)
	})
}

// PostAddon adds an add-on to the stay.
// @Summary Post add-on
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PostAddonRequest true "Add-on"
// @Success 201 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/folio/addons [post]
// @Security BearerAuth
func (handler *Handler) PostAddon(writer http.ResponseWriter, request *http.Request) {
	post(handler, writer, request, "PostAddon", func(ctx context.Context, id string, req dto.PostAddonRequest) error {
		return handler.service.PostAddon(ctx, id, req)
	})
}

// PostTransaction records a payment or refund.
// @Summary Post payment or refund
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PostTransactionRequest true "Transaction"
// @Success 201 {object} response.Message
// @Failure 422 {object} response.Error "Folio is closed"
// @Router /v1/bookings/{id}/folio/transactions [post]
// @Security BearerAuth
func (handler *Handler) PostTransaction(writer http.ResponseWriter, request *http.Request) {
	post(handler, writer, request, "PostTransaction", func(ctx context.Context, id string, req dto.PostTransactionRequest) error {
		return handler.service.PostTransaction(ctx, id, req)
	})
}

// UpdateChargeStatus marks a food order or guest service served or cancelled.
// @Summary Update charge status
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param kind path string true "food-orders or guest-services"
// @Param chargeID path string true "Charge ID"
// @Param request body dto.UpdateChargeStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/folio/{kind}/{chargeID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateChargeStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateChargeStatus")
	defer scope.End()

	req := dto.UpdateChargeStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	err := handler.service.SetChargeStatus(ctx,
		chi.URLParam(request, constant.RequestParamID),
		chi.URLParam(request, paramKind),
		chi.URLParam(request, paramChargeID),
		req,
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update charge status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Charge updated successfully")
}
