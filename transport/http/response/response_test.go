package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "client failure keeps its message", err: failure.Conflict("room is locked"), wantCode: http.StatusConflict, wantMsg: "room is locked"},
		{name: "plain error is masked", err: errors.New("pq: connection refused"), wantCode: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, decode(t, recorder)["error"])
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, map[string]any{"id": "b-1"}, decode(t, recorder)["data"])
}

func TestWithOutcome(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		response.WithOutcome(recorder, http.StatusOK, "coupon applied", nil)

		body := decode(t, recorder)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "coupon applied", body["message"])
	})

	t.Run("failure", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		response.WithOutcome(recorder, http.StatusOK, "coupon applied", failure.Unprocessable("coupon expired"))

		body := decode(t, recorder)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "coupon expired", body["error"])
	})
}

func TestWithCSV(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithCSV(recorder, "bookings.csv", []byte("id\nb-1\n"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="bookings.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "id\nb-1\n", recorder.Body.String())
}
