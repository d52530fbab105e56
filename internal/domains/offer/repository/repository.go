package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/offer/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

// Offer stores both coupon tiers. Every method but FindByCode targets one tier's table.
type Offer interface {
	Insert(ctx context.Context, tier model.Tier, offer model.Offer) error
	Get(ctx context.Context, tier model.Tier, filter gDto.FilterGroup) (model.Offer, error)
	GetAll(ctx context.Context, tier model.Tier, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Offer, error)
	Count(ctx context.Context, tier model.Tier, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, tier model.Tier, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, tier model.Tier, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, tier model.Tier, filter gDto.FilterGroup) error
	FindByCode(ctx context.Context, code string) (model.Offer, error)
}

type repositoryImpl struct {
	tiers map[model.Tier]*gRepo.Repository[model.Offer]
}

func New(db *postgres.Connection, otel otel.Otel) Offer {
	tiers := make(map[model.Tier]*gRepo.Repository[model.Offer], len(model.Tiers))

	for _, tier := range model.Tiers {
		repo := gRepo.NewRepository[model.Offer](model.EntityName, tier.TableName(), model.FieldID, db, otel)
		tiers[tier] = &repo
	}

	return &repositoryImpl{tiers: tiers}
}

func (r *repositoryImpl) tier(tier model.Tier) (*gRepo.Repository[model.Offer], error) {
	repo, ok := r.tiers[tier]
	if !ok {
		return nil, fmt.Errorf("unknown offer tier %q", tier)
	}

	return repo, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, tier model.Tier, offer model.Offer) error {
	repo, err := r.tier(tier)
	if err != nil {
		return err
	}

	return repo.Insert(ctx, offer) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, tier model.Tier, filter gDto.FilterGroup) (model.Offer, error) {
	repo, err := r.tier(tier)
	if err != nil {
		return model.Offer{}, err
	}

	offer, err := repo.Get(ctx, filter)
	if err != nil {
		return offer, err //nolint:wrapcheck
	}

	if offer.ID != "" {
		offer.Tier = tier
	}

	return offer, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, tier model.Tier, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Offer, error) {
	repo, err := r.tier(tier)
	if err != nil {
		return nil, err
	}

	offers, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	for i := range offers {
		offers[i].Tier = tier
	}

	return offers, nil
}

func (r *repositoryImpl) Count(ctx context.Context, tier model.Tier, filter gDto.FilterGroup) (int, error) {
	repo, err := r.tier(tier)
	if err != nil {
		return 0, err
	}

	return repo.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Exist(ctx context.Context, tier model.Tier, filter gDto.FilterGroup) (bool, error) {
	repo, err := r.tier(tier)
	if err != nil {
		return false, err
	}

	return repo.Exist(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, tier model.Tier, fields map[string]any, filter gDto.FilterGroup) error {
	repo, err := r.tier(tier)
	if err != nil {
		return err
	}

	return repo.Update(ctx, fields, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, tier model.Tier, filter gDto.FilterGroup) error {
	repo, err := r.tier(tier)
	if err != nil {
		return err
	}

	return repo.Delete(ctx, filter) //nolint:wrapcheck
}

// FindByCode looks the code up case-insensitively in tier order. A miss returns the zero offer.
func (r *repositoryImpl) FindByCode(ctx context.Context, code string) (model.Offer, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  model.FieldCode,
				Field:    fmt.Sprintf("LOWER(%s)", model.FieldCode),
				Value:    strings.ToLower(strings.TrimSpace(code)),
				Operator: gDto.FilterOperatorEq,
			},
		},
	}

	for _, tier := range model.Tiers {
		offer, err := r.Get(ctx, tier, filter)
		if err != nil {
			return model.Offer{}, fmt.Errorf("failed to look up %s code: %w", tier, err)
		}

		if offer.ID != "" {
			return offer, nil
		}
	}

	return model.Offer{}, nil
}
