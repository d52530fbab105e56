package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/billing/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Bill interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Bill) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bill, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Bill]
}

func New(db *postgres.Connection, otel otel.Otel) Bill {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bill](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
