package cart

import (
	"context"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/cart/model/dto"
	"hotel/internal/domains/cart/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cart
	otel    otel.Otel
}

func New(service service.Cart, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Route("/carts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCart)
		routerGroup.Get("/{id}", handler.GetCart)
		routerGroup.Put("/{id}/stay", handler.SetStay)
		routerGroup.Post("/{id}/rooms", handler.AddRoom)
		routerGroup.Delete("/{id}/rooms/{lineID}", handler.RemoveRoom)
		routerGroup.Post("/{id}/addons", handler.AddAddon)
		routerGroup.Put("/{id}/addons/{addonID}", handler.SetAddonQuantity)
		routerGroup.Delete("/{id}/addons/{addonID}", handler.RemoveAddon)
		routerGroup.Put("/{id}/coupon", handler.ApplyCoupon)
		routerGroup.Delete("/{id}/coupon", handler.RemoveCoupon)
		routerGroup.Post("/{id}/checkout", handler.Checkout)
	})
}

func (handler *Handler) reply(writer http.ResponseWriter, request *http.Request, span string, call func(ctx context.Context, id string) (dto.CartResponse, error)) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+span)
	defer scope.End()

	cart, err := call(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("operation", span).Msg("failed to handle cart")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, cart)
}

func withBody[T any](handler *Handler, writer http.ResponseWriter, request *http.Request, span string, call func(ctx context.Context, id string, req T) (dto.CartResponse, error)) {
	var req T

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	handler.reply(writer, request, span, func(ctx context.Context, id string) (dto.CartResponse, error) {
		return call(ctx, id, req)
	})
}

// CreateCart starts an empty cart.
// @Summary Create cart
// @Tags Cart
// @Produce json
// @Success 201 {object} response.Data[dto.CartResponse]
// @Router /v1/carts [post]
func (handler *Handler) CreateCart(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCart")
	defer scope.End()

	cart, err := handler.service.Create(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create cart")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, cart)
}

// GetCart returns the cart with its current summary.
// @Summary Get cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id} [get]
func (handler *Handler) GetCart(writer http.ResponseWriter, request *http.Request) {
	handler.reply(writer, request, "GetCart", handler.service.Get)
}

// SetStay
// @Summary Set stay dates and guests
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.SetStayRequest true "Stay"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 400 {object} response.Error
// @Router /v1/carts/{id}/stay [put]
func (handler *Handler) SetStay(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "SetStay", handler.service.SetStay)
}

// AddRoom
// @Summary Add room to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.AddRoomRequest true "Room"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id}/rooms [post]
func (handler *Handler) AddRoom(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "AddRoom", handler.service.AddRoom)
}

// RemoveRoom
// @Summary Remove room line from cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Param lineID path string true "Room line ID"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id}/rooms/{lineID} [delete]
func (handler *Handler) RemoveRoom(writer http.ResponseWriter, request *http.Request) {
	handler.reply(writer, request, "RemoveRoom", func(ctx context.Context, id string) (dto.CartResponse, error) {
		return handler.service.RemoveRoom(ctx, id, chi.URLParam(request, constant.RequestParamLineID))
	})
}

// AddAddon
// @Summary Add add-on to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.AddAddonRequest true "Add-on"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 404 {object} response.Error
// @Router /v1/carts/{id}/addons [post]
func (handler *Handler) AddAddon(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "AddAddon", handler.service.AddAddon)
}

// SetAddonQuantity sets the quantity of an add-on line. Zero removes it.
// @Summary Set add-on quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param addonID path string true "Add-on ID"
// @Param request body dto.SetQuantityRequest true "Quantity"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Router /v1/carts/{id}/addons/{addonID} [put]
func (handler *Handler) SetAddonQuantity(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "SetAddonQuantity", func(ctx context.Context, id string, req dto.SetQuantityRequest) (dto.CartResponse, error) {
		return handler.service.SetAddonQuantity(ctx, id, chi.URLParam(request, constant.RequestParamAddonID), req)
	})
}

// RemoveAddon
// @Summary Remove add-on from cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Param addonID path string true "Add-on ID"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Router /v1/carts/{id}/addons/{addonID} [delete]
func (handler *Handler) RemoveAddon(writer http.ResponseWriter, request *http.Request) {
	handler.reply(writer, request, "RemoveAddon", func(ctx context.Context, id string) (dto.CartResponse, error) {
		return handler.service.RemoveAddon(ctx, id, chi.URLParam(request, constant.RequestParamAddonID))
	})
}

// ApplyCoupon applies a coupon code. A rejected code answers 422 with the reason.
// @Summary Apply coupon
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.ApplyCouponRequest true "Coupon"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 422 {object} response.Error
// @Router /v1/carts/{id}/coupon [put]
func (handler *Handler) ApplyCoupon(writer http.ResponseWriter, request *http.Request) {
	withBody(handler, writer, request, "ApplyCoupon", handler.service.ApplyCoupon)
}

// RemoveCoupon
// @Summary Remove coupon
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Router /v1/carts/{id}/coupon [delete]
func (handler *Handler) RemoveCoupon(writer http.ResponseWriter, request *http.Request) {
	handler.reply(writer, request, "RemoveCoupon", handler.service.RemoveCoupon)
}

// Checkout submits the cart as a pending booking.
// @Summary Check out cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body dto.CheckoutRequest true "Guest details"
// @Success 201 {object} response.Data[bookingDto.BookingResponse]
// @Failure 422 {object} response.Error
// @Router /v1/carts/{id}/checkout [post]
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	req := dto.CheckoutRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Checkout(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out cart")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, booking)
}
