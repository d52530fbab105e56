package offer

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/offer/model"
	"hotel/internal/domains/offer/model/dto"
	"hotel/internal/domains/offer/service"
	"hotel/permissions"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Offer
	otel    otel.Otel
}

func New(service service.Offer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/offers/evaluate", handler.Evaluate)
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	read := access.Read(permissions.PortalMasterData, permissions.SectionOffers)
	write := access.Write(permissions.PortalMasterData, permissions.SectionOffers)

	router.Route("/admin/offers/{tier}", func(routerGroup chi.Router) {
		routerGroup.With(read).Get("/", handler.GetOffers)
		routerGroup.With(read).Get("/{id}", handler.GetOffer)
		routerGroup.With(write).Post("/", handler.CreateOffer)
		routerGroup.With(write).Patch("/{id}", handler.UpdateOffer)
		routerGroup.With(write).Delete("/{id}", handler.DeleteOffer)
	})
}

func tierParam(r *http.Request) model.Tier {
	return model.Tier(chi.URLParam(r, constant.RequestParamTier))
}

// Evaluate checks a coupon code against a prospective stay.
// @Summary Evaluate a coupon code
// @Description Rejections are reported in the body with valid=false; only backend failures return an error status.
// @Tags Offer
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Code and stay"
// @Success 200 {object} response.Data[dto.EvaluateResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offers/evaluate [post]
func (handler *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Evaluate")
	defer scope.End()

	var req dto.EvaluateRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	result, err := handler.service.Evaluate(ctx, req.Code, req.ToContext(timezone.Now()))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to evaluate coupon")
		response.WithError(w, err)

		return
	}

	var res dto.EvaluateResponse
	res.FromResult(req.Code, result)

	response.WithJSON(w, http.StatusOK, res)
}

// CreateOffer creates a special offer or discount.
// @Summary Create an offer
// @Tags Offer
// @Accept json
// @Produce json
// @Param tier path string true "special_offer or discount"
// @Param request body dto.CreateOfferRequest true "Offer"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/offers/{tier} [post]
// @Security BearerAuth
func (handler *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOffer")
	defer scope.End()

	var req dto.CreateOfferRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, tierParam(r), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create offer")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Offer created successfully")
}

// GetOffers lists the offers of one tier.
// @Summary List offers
// @Tags Offer
// @Produce json
// @Param tier path string true "special_offer or discount"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param code query string false "Filter by code"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetOffersResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/offers/{tier} [get]
// @Security BearerAuth
func (handler *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffers")
	defer scope.End()

	tier := tierParam(r)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCode),
				Table:    tier.TableName(),
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    tier.TableName(),
		})
	}

	offers, err := handler.service.GetAll(ctx, tier, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offers")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, offers)
}

// GetOffer returns one offer.
// @Summary Get an offer
// @Tags Offer
// @Produce json
// @Param tier path string true "special_offer or discount"
// @Param id path string true "Offer ID"
// @Success 200 {object} response.Data[dto.OfferResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/offers/{tier}/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffer")
	defer scope.End()

	offer, err := handler.service.Get(ctx, tierParam(r), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, offer)
}

// UpdateOffer updates an offer.
// @Summary Update an offer
// @Tags Offer
// @Accept json
// @Produce json
// @Param tier path string true "special_offer or discount"
// @Param id path string true "Offer ID"
// @Param request body dto.UpdateOfferRequest true "Changes"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/offers/{tier}/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOffer")
	defer scope.End()

	var req dto.UpdateOfferRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, tierParam(r), req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update offer")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Offer updated successfully")
}

// DeleteOffer deletes an offer.
// @Summary Delete an offer
// @Tags Offer
// @Produce json
// @Param tier path string true "special_offer or discount"
// @Param id path string true "Offer ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/offers/{tier}/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOffer")
	defer scope.End()

	if err := handler.service.Delete(ctx, tierParam(r), chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete offer")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Offer deleted successfully")
}
