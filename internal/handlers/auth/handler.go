package auth

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the auth endpoints; only the password change needs a signed-in user.
func (handler *Handler) Router(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)
		r.With(authenticate).Patch("/password", handler.ChangePassword)
	})
}

// bind decodes and validates the JSON body, answering the request itself on failure.
func bind[T any](w http.ResponseWriter, r *http.Request, scope otel.Scope) (T, bool) {
	var req T

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return req, false
	}

	return req, true
}

func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	if !failure.IsClient(err) {
		log.Error().Err(err).Msg(msg)
	}

	response.WithError(w, err)
}

// Register creates an account awaiting activation.
// @Summary Register a new user
// @Description Creates an inactive account with no permissions; an administrator activates it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req, ok := bind[dto.RegisterRequest](w, r, scope)
	if !ok {
		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		fail(w, scope, err, "failed to register user")

		return
	}

	response.WithMessage(w, http.StatusCreated, "Registration received, an administrator will activate the account")
}

// Login exchanges credentials for a token pair.
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error "Account not active"
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req, ok := bind[dto.LoginRequest](w, r, scope)
	if !ok {
		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		fail(w, scope, err, "failed to login user")

		return
	}

	scope.SetAttribute("user.id", res.User.ID)

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken rotates the token pair.
// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req, ok := bind[dto.RefreshTokenRequest](w, r, scope)
	if !ok {
		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		fail(w, scope, err, "failed to refresh token")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword changes the signed-in user's password.
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/password [patch]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req, ok := bind[dto.ChangePasswordRequest](w, r, scope)
	if !ok {
		return
	}

	if err := handler.service.ChangePassword(ctx, req, shared.ActorFromContext(ctx).ID); err != nil {
		fail(w, scope, err, "failed to change password")

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
