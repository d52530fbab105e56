package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/masterdata/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type MasterData interface {
	Insert(ctx context.Context, collection model.Collection, entry model.Entry) error
	Get(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) (model.Entry, error)
	GetAll(ctx context.Context, collection model.Collection, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Entry, error)
	Count(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, collection model.Collection, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	collections map[model.Collection]*gRepo.Repository[model.Entry]
}

func New(db *postgres.Connection, otel otel.Otel) MasterData {
	collections := make(map[model.Collection]*gRepo.Repository[model.Entry], len(model.Collections))

	for _, collection := range model.Collections {
		repo := gRepo.NewRepository[model.Entry](collection.EntityName(), collection.TableName(), model.FieldID, db, otel)
		collections[collection] = &repo
	}

	return &repositoryImpl{collections: collections}
}

func (r *repositoryImpl) collection(collection model.Collection) (*gRepo.Repository[model.Entry], error) {
	repo, ok := r.collections[collection]
	if !ok {
		return nil, fmt.Errorf("unknown master data collection %q", collection)
	}

	return repo, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, collection model.Collection, entry model.Entry) error {
	repo, err := r.collection(collection)
	if err != nil {
		return err
	}

	return repo.Insert(ctx, entry) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) (model.Entry, error) {
	repo, err := r.collection(collection)
	if err != nil {
		return model.Entry{}, err
	}

	entry, err := repo.Get(ctx, filter)
	if err != nil {
		return entry, err //nolint:wrapcheck
	}

	if entry.ID != "" {
		entry.Collection = collection
	}

	return entry, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, collection model.Collection, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Entry, error) {
	repo, err := r.collection(collection)
	if err != nil {
		return nil, err
	}

	entries, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	for i := range entries {
		entries[i].Collection = collection
	}

	return entries, nil
}

func (r *repositoryImpl) Count(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) (int, error) {
	repo, err := r.collection(collection)
	if err != nil {
		return 0, err
	}

	return repo.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Exist(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) (bool, error) {
	repo, err := r.collection(collection)
	if err != nil {
		return false, err
	}

	return repo.Exist(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, collection model.Collection, fields map[string]any, filter gDto.FilterGroup) error {
	repo, err := r.collection(collection)
	if err != nil {
		return err
	}

	return repo.Update(ctx, fields, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, collection model.Collection, filter gDto.FilterGroup) error {
	repo, err := r.collection(collection)
	if err != nil {
		return err
	}

	return repo.Delete(ctx, filter) //nolint:wrapcheck
}
