package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/accountdeletion/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Request interface {
	Insert(ctx context.Context, model model.Request) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Request]
}

func New(db *postgres.Connection, otel otel.Otel) Request {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Request](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, model model.Request) error {
	return r.repo.Insert(ctx, model) //nolint:wrapcheck
}

func (r *repositoryImpl) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return r.repo.Exist(ctx, filter) //nolint:wrapcheck
}
