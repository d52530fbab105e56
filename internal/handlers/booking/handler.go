package booking

import (
	"context"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
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
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	read := access.Read(permissions.PortalFrontOffice, permissions.SectionBookings)
	write := access.Write(permissions.PortalFrontOffice, permissions.SectionBookings)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.With(read).Get("/", handler.GetBookings)
		routerGroup.With(read).Get("/{id}", handler.GetBookingByID)
		routerGroup.With(write).Patch("/{id}", handler.UpdateBooking)
		routerGroup.With(write).Post("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.With(write).Post("/{id}/check-in", handler.CheckIn)
		routerGroup.With(write).Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.With(write).Post("/{id}/archive", handler.ArchiveBooking)
		routerGroup.With(access.Write(permissions.PortalFrontOffice, permissions.SectionCheckout)).
			Post("/{id}/check-out", handler.CheckOut)
	})
}

// GetBookings lists bookings.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Reference, guest name or e-mail"
// @Param status query string false "Booking status"
// @Param company_id query string false "Company"
// @Param travel_agent_id query string false "Travel agent"
// @Param archived query bool false "Archived flag"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter := dto.ListFilter{}
	filter.FromRequest(request)

	bookings, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID returns one booking with its rooms.
// @Summary Get booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// UpdateBooking changes guest details or the linked company and travel agent.
// @Summary Update booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking updated successfully")
}

func (handler *Handler) transition(writer http.ResponseWriter, request *http.Request, span, message string, call func(ctx context.Context, id string) error) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+span)
	defer scope.End()

	if err := call(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("transition", span).Msg("failed to change booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, message)
}

// ConfirmBooking moves a pending booking to confirmed.
// @Summary Confirm booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "ConfirmBooking", "Booking confirmed", handler.service.Confirm)
}

// CheckIn records the guest's arrival.
// @Summary Check in guest
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "CheckIn", "Guest checked in", handler.service.CheckIn)
}

// CancelBooking cancels a booking that has not started.
// @Summary Cancel booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "CancelBooking", "Booking cancelled", handler.service.Cancel)
}

// ArchiveBooking freezes a finished booking.
// @Summary Archive booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/archive [post]
// @Security BearerAuth
func (handler *Handler) ArchiveBooking(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "ArchiveBooking", "Booking archived", handler.service.Archive)
}

// CheckOut checks a guest out once the bill exists and nothing is locked.
// @Summary Check out guest
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckOutRequest false "Check-out notes"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "A folio or room lock is held"
// @Failure 422 {object} response.Error "No checkout bill, or the booking is not checked in"
// @Router /v1/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	req := dto.CheckOutRequest{}

	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}
	}

	booking, err := handler.service.CheckOut(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out guest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}
