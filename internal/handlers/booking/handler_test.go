package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service/mocks"
	"hotel/internal/handlers/booking"
	"hotel/permissions"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingAccess admits every request and remembers which sections guarded it.
type recordingAccess struct {
	writes map[string]bool
}

func (a *recordingAccess) Read(_, _ string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func (a *recordingAccess) Write(portal, section string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.writes[portal+"."+section] = true
			next.ServeHTTP(w, r)
		})
	}
}

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockBooking, *recordingAccess) {
	t.Helper()

	svc := mocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())
	access := &recordingAccess{writes: map[string]bool{}}

	router := chi.NewRouter()
	handler.AdminRouter(router, access)

	return router, svc, access
}

func post(router http.Handler, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()

	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(http.MethodPost, target, nil)
	} else {
		request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}

	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_CheckOut(t *testing.T) {
	t.Run("checks the guest out", func(t *testing.T) {
		router, svc, access := newRouter(t)

		svc.EXPECT().CheckOut(gomock.Any(), "b-1", dto.CheckOutRequest{Notes: "left keys at desk"}).
			Return(dto.BookingResponse{ID: "b-1", Status: "checked_out"}, nil)

		rec := post(router, "/bookings/b-1/check-out", `{"notes":"left keys at desk"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, access.writes[permissions.PortalFrontOffice+"."+permissions.SectionCheckout])

		var body response.Data[dto.BookingResponse]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Data)
		assert.Equal(t, "checked_out", body.Data.Status)
	})

	t.Run("body is optional", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().CheckOut(gomock.Any(), "b-1", dto.CheckOutRequest{}).Return(dto.BookingResponse{ID: "b-1"}, nil)

		rec := post(router, "/bookings/b-1/check-out", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing bill is reported", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().CheckOut(gomock.Any(), "b-1", gomock.Any()).
			Return(dto.BookingResponse{}, failure.Unprocessable("checkout bill must be generated before check-out"))

		rec := post(router, "/bookings/b-1/check-out", "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "checkout bill must be generated before check-out")
	})

	t.Run("held lock is a conflict", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().CheckOut(gomock.Any(), "b-1", gomock.Any()).
			Return(dto.BookingResponse{}, failure.Conflict("folio is locked by night audit"))

		rec := post(router, "/bookings/b-1/check-out", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_Transitions(t *testing.T) {
	router, svc, access := newRouter(t)

	svc.EXPECT().Confirm(gomock.Any(), "b-2").Return(nil)
	svc.EXPECT().CheckIn(gomock.Any(), "b-2").Return(failure.Unprocessable("booking must be confirmed before check-in"))

	assert.Equal(t, http.StatusOK, post(router, "/bookings/b-2/confirm", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, post(router, "/bookings/b-2/check-in", "").Code)
	assert.True(t, access.writes[permissions.PortalFrontOffice+"."+permissions.SectionBookings])
}
