package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hotel/infras/otel/mocks"
	auditMocks "hotel/internal/domains/audit/mocks"
	"hotel/internal/domains/audit/model"
	"hotel/internal/domains/audit/model/dto"
	"hotel/internal/domains/audit/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := auditMocks.NewMockAudit(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "ops@hotel.test")

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "stores actor and details",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry model.Log) error {
					assert.Equal(t, "admin-1", entry.ActorID)
					assert.Equal(t, "ops@hotel.test", entry.ActorEmail)
					assert.Equal(t, model.CategoryMasterData, entry.Category)

					var details map[string]string
					require.NoError(t, json.Unmarshal(entry.Details, &details))
					assert.Equal(t, "Acme", details["name"])

					return nil
				})
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Record(ctx, dto.Entry{
				Category:   model.CategoryMasterData,
				Action:     model.ActionCreate,
				EntityType: "companies",
				EntityID:   "c-1",
				Details:    map[string]string{"name": "Acme"},
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	empty := service.Filter("", "")
	where, _ := empty.GetWhereClause()
	assert.Empty(t, where)

	filter := service.Filter("acme", model.CategoryMasterData)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "audit_logs.category = :category")
	assert.Contains(t, where, " OR ")
	assert.Equal(t, model.CategoryMasterData, args[model.FieldCategory])
	assert.Equal(t, "%acme%", args["search_"+model.FieldActorEmail])
}

func TestAuditService_GetAll_DefaultsToNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := auditMocks.NewMockAudit(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Log, error) {
			assert.Equal(t, model.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Log{{ID: "l-1", Category: model.CategoryLocks}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "", "")

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "{}", string(res.Logs[0].Details))
}
