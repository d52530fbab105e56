package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/systemlock/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
)

type SystemLock interface {
	Insert(ctx context.Context, model model.SystemLock) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SystemLock, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SystemLock, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ReleaseExpired(ctx context.Context, now time.Time, releasedBy string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.SystemLock]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) SystemLock {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SystemLock](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReleaseExpired deactivates every active lock whose expiry has passed and returns how many it touched.
func (r *repositoryImpl) ReleaseExpired(ctx context.Context, now time.Time, releasedBy string) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".system_lock.ReleaseExpired")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = false, %s = $1, %s = $2 WHERE %s = true AND %s IS NOT NULL AND %s <= $1",
		model.TableName, model.FieldActive, constant.FieldModifiedAt, constant.FieldModifiedBy,
		model.FieldActive, model.FieldExpiresAt, model.FieldExpiresAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query, now, releasedBy)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to release expired locks: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read released lock count: %w", err)
	}

	return affected, nil
}
