package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel/mocks"
	auditMocks "hotel/internal/domains/audit/service/mocks"
	lockMocks "hotel/internal/domains/systemlock/mocks"
	"hotel/internal/domains/systemlock/model"
	"hotel/internal/domains/systemlock/model/dto"
	"hotel/internal/domains/systemlock/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc     service.SystemLock
	repo    *lockMocks.MockSystemLock
	audit   *auditMocks.MockAudit
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Metrics.Namespace = "test"

	f := fixture{
		repo:    lockMocks.NewMockSystemLock(ctrl),
		audit:   auditMocks.NewMockAudit(ctrl),
		metrics: metrics.New(cfg),
	}
	f.svc = service.New(f.repo, f.audit, mocks.NewOtel(), f.metrics)

	return f
}

func TestSystemLockService_Acquire(t *testing.T) {
	req := dto.AcquireLockRequest{ResourceType: model.ResourceFolio, ResourceID: "b-1", Reason: "night audit", TTLMinutes: 30}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "acquires a free resource",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, lock model.SystemLock) error {
					assert.True(t, lock.Active)
					assert.Equal(t, "admin-1", lock.LockedBy)
					require.NotNil(t, lock.ExpiresAt)

					return nil
				})
				f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "resource already held",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.SystemLock{
					{ID: "l-1", ResourceType: model.ResourceFolio, ResourceID: "b-1", LockedBy: "cashier", Reason: "settlement", Active: true},
				}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "audit failure does not undo the lock",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			res, err := f.svc.Acquire(ctx, req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "b-1", res.ResourceID)
		})
	}
}

func TestSystemLockService_FindBlocking(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.SystemLock, error) {
			where, args := filter.GetWhereClause()

			assert.Contains(t, where, "system_locks.expires_at IS NULL")
			assert.Equal(t, model.ResourceFolio, args["resource_type_0"])
			assert.Equal(t, "r-2", args["resource_id_1"])

			return []model.SystemLock{{ID: "l-9"}}, nil
		})

	locks, err := f.svc.FindBlocking(context.Background(), []model.Resource{
		{Type: model.ResourceFolio, ID: "b-1"},
		{Type: model.ResourceRoom, ID: "r-2"},
	})

	require.NoError(t, err)
	assert.Len(t, locks, 1)

	none, err := f.svc.FindBlocking(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSystemLockService_Release(t *testing.T) {
	t.Run("missing lock", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SystemLock{}, nil)

		err := f.svc.Release(context.Background(), "nope")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("already released is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SystemLock{ID: "l-1"}, nil)

		assert.NoError(t, f.svc.Release(context.Background(), "l-1"))
	})

	t.Run("releases an active lock", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SystemLock{ID: "l-1", Active: true}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, false, fields[model.FieldActive])

			return nil
		})
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Release(context.Background(), "l-1"))
	})
}

func TestSystemLockService_Sweep(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().ReleaseExpired(gomock.Any(), gomock.Any(), "system").Return(int64(3), nil)

	released, err := f.svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), released)
	assert.Equal(t, float64(3), testutil.ToFloat64(f.metrics.LocksSwept))
}
