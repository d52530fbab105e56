package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	activityMocks "hotel/internal/domains/activity/mocks"
	"hotel/internal/domains/activity/model"
	"hotel/internal/domains/activity/model/dto"
	"hotel/internal/domains/activity/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc   service.Activity
	repo  *activityMocks.MockActivity
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "hotel-assets"

	f := fixture{
		repo:  activityMocks.NewMockActivity(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestActivityService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, activity model.Activity) error {
					assert.NotEmpty(t, activity.ID)
					assert.True(t, activity.Active)

					return nil
				})
			},
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(context.Background(), dto.CreateActivityRequest{
				Title:    "Sunrise trek",
				Schedule: "Daily 05:00",
				Price:    decimal.NewFromInt(250000),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestActivityService_GetAll(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
		assert.NoError(t, err)
	})

	t.Run("cache miss reads the repository", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Activity{
			{ID: "a-1", Title: "Sunrise trek"},
		}, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Len(t, res.Activities, 1)
		assert.Equal(t, 2, res.TotalPage)
	})

	t.Run("count error", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestActivityService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{ID: "a-1", Title: "Sunrise trek"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "a-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "a-1", res.ID)
		})
	}
}

func TestActivityService_Update(t *testing.T) {
	title := "Sunset trek"

	t.Run("updates an existing activity", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, title, fields[model.FieldTitle])

				return nil
			})

		assert.NoError(t, f.svc.Update(context.Background(), dto.UpdateActivityRequest{Title: title}, "a-1"))
	})

	t.Run("unknown activity", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(context.Background(), dto.UpdateActivityRequest{Title: title}, "a-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestActivityService_Delete(t *testing.T) {
	t.Run("removes the row and its images", func(t *testing.T) {
		f := newFixture(t)
		url := "https://cdn.example.com/activity/trek.jpg"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{ID: "a-1", Images: []string{url}}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL("hotel-assets", url).Return("trek.jpg").AnyTimes()
		f.s3.EXPECT().DeleteFile(gomock.Any(), "hotel-assets", model.EntityName, "trek.jpg").Return(nil).AnyTimes()

		assert.NoError(t, f.svc.Delete(context.Background(), "a-1"))
	})

	t.Run("unknown activity", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{}, nil)

		err := f.svc.Delete(context.Background(), "a-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestActivityService_UploadImage(t *testing.T) {
	f := newFixture(t)
	header := &multipart.FileHeader{Filename: "trek.jpg"}

	f.s3.EXPECT().UploadFile(gomock.Any(), "hotel-assets", model.EntityName, nil, header, "trek.jpg").
		Return("https://cdn.example.com/activity/trek.jpg", nil)

	res, err := f.svc.UploadImage(context.Background(), dto.UploadImageRequest{Image: header})

	require.NoError(t, err)
	assert.Equal(t, "trek.jpg", res.FileName)
	assert.Equal(t, "https://cdn.example.com/activity/trek.jpg", res.URL)
}

func TestActivityService_DeleteImages(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name: "all deleted",
			setupMock: func(f fixture) {
				f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), gomock.Any()).Return("a.jpg").Times(2)
				f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name: "unparseable url is skipped",
			setupMock: func(f fixture) {
				f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), gomock.Any()).Return("").Times(2)
			},
		},
		{
			name: "partial failure",
			setupMock: func(f fixture) {
				f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), gomock.Any()).Return("a.jpg").Times(2)
				f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("access denied"))
			},
			wantErr: service.ErrDeleteImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.DeleteImages(context.Background(), dto.DeleteImagesRequest{
				ImageURLs: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
