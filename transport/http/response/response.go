package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

const internalErrorMessage = "internal server error"

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Outcome is the envelope of the public intake endpoints.
type Outcome struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError writes err with its failure code. Server side errors are logged and masked.
func WithError(writer http.ResponseWriter, err error) {
	code, message := describe(err)

	write(writer, code, Error{Error: &message})
}

// WithOutcome reports success with message, or failure with the error's message and code.
func WithOutcome(writer http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		code, errMsg := describe(err)
		write(writer, code, Outcome{Error: &errMsg})

		return
	}

	write(writer, code, Outcome{Success: true, Message: &message})
}

// WithCSV sends body as a downloadable CSV file.
func WithCSV(writer http.ResponseWriter, filename string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func describe(err error) (int, string) {
	code := failure.GetCode(err)
	if code < http.StatusInternalServerError {
		return code, err.Error()
	}

	logger.ErrorWithStack(err)

	return code, internalErrorMessage
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
