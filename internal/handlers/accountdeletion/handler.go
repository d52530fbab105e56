package accountdeletion

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/accountdeletion/model/dto"
	"hotel/internal/domains/accountdeletion/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AccountDeletion
	otel    otel.Otel
}

func New(service service.AccountDeletion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// PublicRouter is mounted under /api rather than the versioned prefix.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/account-deletion", handler.Submit)
}

// Submit records a guest's request to delete their account.
// @Summary Request account deletion
// @Tags AccountDeletion
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Deletion request"
// @Success 200 {object} response.Outcome
// @Failure 400 {object} response.Outcome
// @Failure 500 {object} response.Outcome
// @Router /api/account-deletion [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitAccountDeletion")
	defer scope.End()

	var req dto.SubmitRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithOutcome(w, http.StatusOK, constant.Empty, err)

		return
	}

	msg, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit account deletion request")
		response.WithOutcome(w, http.StatusOK, constant.Empty, err)

		return
	}

	response.WithOutcome(w, http.StatusOK, msg, nil)
}
