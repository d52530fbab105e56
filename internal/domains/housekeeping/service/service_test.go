package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	housekeepingMocks "hotel/internal/domains/housekeeping/mocks"
	"hotel/internal/domains/housekeeping/model"
	"hotel/internal/domains/housekeeping/model/dto"
	"hotel/internal/domains/housekeeping/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

func TestHousekeepingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := housekeepingMocks.NewMockHousekeeping(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task model.Task) error {
						assert.Equal(t, "test-user-id", task.CreatedBy)
						assert.Equal(t, model.StatusPending, task.Status)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, dto.CreateTaskRequest{RoomID: "r-1", RoomName: "Room 101", Title: "Deep clean"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHousekeepingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := housekeepingMocks.NewMockHousekeeping(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	task := model.Task{
		ID:       "test-id",
		RoomID:   "r-1",
		RoomName: "Room 101",
		Title:    "Clean Room 101 after check-out",
		Status:   model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(task, nil)
			},
			wantID: "test-id",
		},
		{
			name: "task not found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Task{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Task{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), "test-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestHousekeepingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := housekeepingMocks.NewMockHousekeeping(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.UpdateTaskRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "mark done",
			req:  dto.UpdateTaskRequest{Status: model.StatusDone},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusDone, fields[model.FieldStatus])
						assert.NotContains(t, fields, model.FieldNotes)

						return nil
					})
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateTaskRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "task not found",
			req:  dto.UpdateTaskRequest{Status: model.StatusInProgress},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "test-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHousekeepingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := housekeepingMocks.NewMockHousekeeping(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Task{{ID: "t-1"}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Tasks, 1)
}
