package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/offer/engine"
	"hotel/internal/domains/offer/model"
	"hotel/internal/domains/offer/model/dto"
	"hotel/internal/domains/offer/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetOffer    = "offer:get"
	cacheGetAllOffer = "offer:gets"
)

var hundred = decimal.NewFromInt(100)

type Offer interface {
	Create(ctx context.Context, tier model.Tier, req dto.CreateOfferRequest) error
	GetAll(ctx context.Context, tier model.Tier, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOffersResponse, error)
	Get(ctx context.Context, tier model.Tier, id string) (dto.OfferResponse, error)
	Update(ctx context.Context, tier model.Tier, req dto.UpdateOfferRequest, id string) error
	Delete(ctx context.Context, tier model.Tier, id string) error
	Evaluate(ctx context.Context, code string, evalCtx engine.Context) (engine.Result, error)
}

type serviceImpl struct {
	repo    repository.Offer
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(repo repository.Offer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, metrics *metrics.Metrics) Offer {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		metrics: metrics,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, tier model.Tier, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOffer, string(tier), id)); err != nil {
			log.Error().Err(err).Msg("failed to delete offer cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllOffer, string(tier)))
}

func checkTier(tier model.Tier) error {
	if !tier.Valid() {
		return failure.NotFound(fmt.Sprintf("unknown offer tier %q", tier)) // nolint:wrapcheck
	}

	return nil
}

// checkRule rejects discount settings the evaluator could never apply.
func checkRule(discountType string, value decimal.Decimal, pay, stay int) error {
	switch discountType {
	case model.DiscountPercentage:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return failure.BadRequestFromString("percentage discount must be between 0 and 100") // nolint:wrapcheck
		}
	case model.DiscountFixed:
		if value.IsNegative() {
			return failure.BadRequestFromString("fixed discount must not be negative") // nolint:wrapcheck
		}
	case model.DiscountPayXStayY:
		if stay <= 0 || pay <= 0 || pay >= stay {
			return failure.BadRequestFromString("pay nights must be positive and fewer than stay nights") // nolint:wrapcheck
		}
	}

	return nil
}

func checkGuests(minGuests, maxGuests *int) error {
	if minGuests != nil && maxGuests != nil && *minGuests > *maxGuests {
		return failure.BadRequestFromString("min guests must not exceed max guests") // nolint:wrapcheck
	}

	return nil
}

func checkWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, tier model.Tier, req dto.CreateOfferRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkTier(tier); err != nil {
		return err
	}

	if err = checkRule(req.DiscountType, req.DiscountValue, req.PayNights, req.StayNights); err != nil {
		return err
	}

	if err = checkGuests(req.MinGuests, req.MaxGuests); err != nil {
		return err
	}

	offer, err := req.ToModel(shared.ActorFromContext(ctx).ID)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = checkWindow(offer.StartDate, offer.EndDate); err != nil {
		return err
	}

	existing, err := s.repo.FindByCode(ctx, offer.Code)
	if err != nil {
		log.Error().Err(err).Msg("failed to check offer code")

		return fmt.Errorf("failed to check offer code: %w", err)
	}

	if existing.ID != constant.Empty {
		return failure.Conflict(fmt.Sprintf("code %s is already used by a %s", existing.Code, existing.Tier)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, tier, offer); err != nil {
		log.Error().Err(err).Msg("failed to create offer")

		return fmt.Errorf("failed to create offer: %w", err)
	}

	go s.invalidate(ctx, tier, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, tier model.Tier, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkTier(tier); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllOffer, string(tier)), req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, tier, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count offers")

		return res, fmt.Errorf("failed to count offers: %w", err)
	}

	offers, err := s.repo.GetAll(ctx, tier, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offers")

		return res, fmt.Errorf("failed to get offers: %w", err)
	}

	res.FromModels(offers, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save offers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, tier model.Tier, id string) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkTier(tier); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetOffer, string(tier), id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	offer, err := s.repo.Get(ctx, tier, shared.FilterByID(id, model.FieldID, tier.TableName()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get offer")

		return res, fmt.Errorf("failed to get offer: %w", err)
	}

	if offer.ID == constant.Empty {
		return res, failure.NotFound("offer not found") // nolint:wrapcheck
	}

	res.FromModel(offer)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save offer to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, tier model.Tier, req dto.UpdateOfferRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkTier(tier); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, tier.TableName())

	current, err := s.repo.Get(ctx, tier, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offer")

		return fmt.Errorf("failed to get offer: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("offer not found") // nolint:wrapcheck
	}

	merged, err := mergeRule(current, req)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = checkRule(merged.DiscountType, merged.DiscountValue, merged.PayNights, merged.StayNights); err != nil {
		return err
	}

	if err = checkGuests(merged.MinGuests, merged.MaxGuests); err != nil {
		return err
	}

	if err = checkWindow(merged.StartDate, merged.EndDate); err != nil {
		return err
	}

	fields, err := req.ToFields(shared.ActorFromContext(ctx).ID)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, tier, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update offer")

		return fmt.Errorf("failed to update offer: %w", err)
	}

	go s.invalidate(ctx, tier, id)

	return nil
}

// mergeRule overlays the rule fields and validity window of req onto current so the result can be validated as a whole.
func mergeRule(current model.Offer, req dto.UpdateOfferRequest) (model.Offer, error) {
	if req.DiscountType != constant.Empty {
		current.DiscountType = req.DiscountType
	}

	if req.DiscountValue != nil {
		current.DiscountValue = *req.DiscountValue
	}

	if req.PayNights != nil {
		current.PayNights = *req.PayNights
	}

	if req.StayNights != nil {
		current.StayNights = *req.StayNights
	}

	if req.MinGuests != nil {
		current.MinGuests = req.MinGuests
	}

	if req.MaxGuests != nil {
		current.MaxGuests = req.MaxGuests
	}

	if req.StartDate != constant.Empty {
		start, err := dto.ParseStartDate(req.StartDate)
		if err != nil {
			return current, err //nolint:wrapcheck
		}

		current.StartDate = start
	}

	if req.EndDate != constant.Empty {
		end, err := dto.ParseEndDate(req.EndDate)
		if err != nil {
			return current, err //nolint:wrapcheck
		}

		current.EndDate = end
	}

	return current, nil
}

func (s *serviceImpl) Delete(ctx context.Context, tier model.Tier, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkTier(tier); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, tier.TableName())

	exist, err := s.repo.Exist(ctx, tier, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check offer existence")

		return fmt.Errorf("failed to check offer existence: %w", err)
	}

	if !exist {
		return failure.NotFound("offer not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, tier, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete offer")

		return fmt.Errorf("failed to delete offer: %w", err)
	}

	go s.invalidate(ctx, tier, id)

	return nil
}

// Evaluate only errors when the lookup itself fails. Unknown or ineligible codes come back as a rejected result.
func (s *serviceImpl) Evaluate(ctx context.Context, code string, evalCtx engine.Context) (res engine.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Evaluate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	offer, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to look up coupon")
		s.metrics.CouponEvaluation.WithLabelValues(metrics.ResultError).Inc()

		return res, fmt.Errorf("failed to look up coupon: %w", err)
	}

	if offer.ID == constant.Empty {
		res = engine.Rejected(engine.ReasonInvalidCode)
	} else {
		res = engine.Evaluate(offer, evalCtx)
	}

	result := metrics.ResultSuccess
	if !res.Applied {
		result = metrics.ResultRejected
	}

	s.metrics.CouponEvaluation.WithLabelValues(result).Inc()
	scope.SetAttributes(map[string]any{
		"coupon.applied":  res.Applied,
		"coupon.discount": res.Discount.String(),
	})

	return res, nil
}
