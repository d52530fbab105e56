package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	GuestName  string          `json:"guest_name"  validate:"required,max=20"`
	GuestEmail string          `json:"guest_email" validate:"required,email"`
	Guests     int             `json:"guests"      validate:"gte=1,lte=8"`
	Channel    string          `json:"channel"     validate:"omitempty,oneof=web walk_in agent"`
	CheckIn    string          `json:"check_in"    validate:"required,date"`
	Deposit    decimal.Decimal `json:"deposit"     validate:"gte=0"`
}

func validStay() stayRequest {
	return stayRequest{
		GuestName:  "Sari",
		GuestEmail: "sari@example.com",
		Guests:     2,
		CheckIn:    "2026-06-01",
		Deposit:    decimal.NewFromInt(50),
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *stayRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*stayRequest) {}},
		{name: "missing name", mutate: func(req *stayRequest) { req.GuestName = "" }, wantMsg: "guest_name is required"},
		{name: "name too long", mutate: func(req *stayRequest) { req.GuestName = strings.Repeat("x", 21) }, wantMsg: "guest_name must be at most 20"},
		{name: "bad email", mutate: func(req *stayRequest) { req.GuestEmail = "sari" }, wantMsg: "guest_email must be a valid email address"},
		{name: "no guests", mutate: func(req *stayRequest) { req.Guests = 0 }, wantMsg: "guests must be greater than or equal to 1"},
		{name: "too many guests", mutate: func(req *stayRequest) { req.Guests = 9 }, wantMsg: "guests must be less than or equal to 8"},
		{name: "unknown channel", mutate: func(req *stayRequest) { req.Channel = "fax" }, wantMsg: "channel must be one of web walk_in agent"},
		{name: "bad date", mutate: func(req *stayRequest) { req.CheckIn = "01/06/2026" }, wantMsg: "check_in must be a date in YYYY-MM-DD format"},
		{name: "negative deposit", mutate: func(req *stayRequest) { req.Deposit = decimal.NewFromInt(-1) }, wantMsg: "deposit must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		req := stayRequest{}
		body := `{"guest_name":"Sari","guest_email":"sari@example.com","guests":2,"check_in":"2026-06-01","deposit":"0"}`

		require.NoError(t, validator.Validate(strings.NewReader(body), &req))
		assert.Equal(t, 2, req.Guests)
	})

	t.Run("empty body", func(t *testing.T) {
		req := stayRequest{}

		err := validator.Validate(strings.NewReader(""), &req)

		assert.EqualError(t, err, "request body is required")
	})

	t.Run("malformed json", func(t *testing.T) {
		req := stayRequest{}

		err := validator.Validate(strings.NewReader(`{"guests":`), &req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "failed to decode request body")
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-06-01", "date"))
	assert.NoError(t, validator.ValidateVar("", "date"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.Error(t, validator.ValidateVar("not-a-uuid", "uuid"))
}

type upload struct {
	Image *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{Filename: "villa.png", Header: header, Size: size}
}

func TestValidateStruct_Uploads(t *testing.T) {
	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantMsg string
	}{
		{name: "png within limit", file: fileHeader("image/png", 512<<10)},
		{name: "wrong type", file: fileHeader("application/pdf", 1024), wantMsg: "image must be one of image/png image/jpeg"},
		{name: "too large", file: fileHeader("image/jpeg", 2<<20), wantMsg: "image must not exceed 1 MB"},
		{name: "missing", file: nil, wantMsg: "image is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&upload{Image: tt.file})

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}
