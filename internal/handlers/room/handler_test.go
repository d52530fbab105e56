package room_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service/mocks"
	"hotel/internal/handlers/room"
	gDto "hotel/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockRoom) {
	t.Helper()

	svc := mocks.NewMockRoom(gomock.NewController(t))
	handler := room.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.PublicRouter(router)
	router.Post("/admin/rooms", handler.CreateRoom)

	return router, svc
}

func TestHandler_GetPublicRooms_OnlyActive(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
			where, args := filter.GetWhereClause()

			assert.Contains(t, where, "rooms.active = :active")
			assert.Equal(t, true, args["active"])

			return dto.GetRoomsResponse{}, nil
		})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/rooms?active=false", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_GetPublicRoom(t *testing.T) {
	tests := []struct {
		name     string
		room     dto.RoomResponse
		wantCode int
	}{
		{name: "active room", room: dto.RoomResponse{ID: "r-1", Active: true}, wantCode: http.StatusOK},
		{name: "inactive room is hidden", room: dto.RoomResponse{ID: "r-1"}, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			svc.EXPECT().Get(gomock.Any(), "r-1").Return(tt.room, nil)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/rooms/r-1", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func multipartRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/admin/rooms", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	return request
}

func TestHandler_CreateRoom(t *testing.T) {
	t.Run("parses the form", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.CreateRoomRequest) error {
			assert.Equal(t, "Garden Villa", req.Name)
			assert.Equal(t, 4, req.Capacity)
			assert.True(t, req.NightlyRate.Equal(decimal.NewFromInt(250)))
			assert.Nil(t, req.Image)

			return nil
		})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartRequest(t, map[string]string{
			"name": "Garden Villa", "kind": "villa", "capacity": "4", "nightly_rate": "250",
		}))

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("rejects a fractional capacity", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartRequest(t, map[string]string{
			"name": "Garden Villa", "kind": "villa", "capacity": "2.5", "nightly_rate": "250",
		}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects a bad rate", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartRequest(t, map[string]string{
			"name": "Garden Villa", "kind": "villa", "nightly_rate": "cheap",
		}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
