package billing

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/billing/service"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	router.With(access.Write(permissions.PortalAccounts, permissions.SectionBilling)).
		Post("/bookings/{id}/bill", handler.GenerateBill)
	router.With(access.Read(permissions.PortalAccounts, permissions.SectionBilling)).
		Get("/bills/{id}", handler.GetBill)
}

// GenerateBill builds or rebuilds the checkout bill of a booking.
// @Summary Generate checkout bill
// @Description Itemises rooms, food, services and add-ons, applies taxes and the booking discount, and nets payments. Calling it again overwrites the previous bill.
// @Tags Billing
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.GenerateBillResponse]
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/bill [post]
// @Security BearerAuth
func (handler *Handler) GenerateBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateBill")
	defer scope.End()

	bill, err := handler.service.Generate(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate checkout bill")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("checkout bill generated: " + bill.BillID)

	response.WithJSON(writer, http.StatusOK, bill)
}

// GetBill returns a stored checkout bill.
// @Summary Get checkout bill
// @Tags Billing
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.Data[dto.BillResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bills/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBill")
	defer scope.End()

	bill, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checkout bill")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bill)
}
