package user

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/permissions"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	read := access.Read(permissions.PortalAdministration, permissions.SectionUsers)
	write := access.Write(permissions.PortalAdministration, permissions.SectionUsers)

	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/me/access", handler.GetMyAccess)

		routerGroup.With(read).Get("/", handler.GetUsers)
		routerGroup.With(read).Get("/{id}", handler.GetUserByID)
		routerGroup.With(read).Get("/{id}/access", handler.GetUserAccess)
		routerGroup.With(write).Post("/", handler.CreateUser)
		routerGroup.With(write).Patch("/{id}", handler.UpdateUser)
		routerGroup.With(write).Delete("/{id}", handler.DeleteUser)
		routerGroup.With(write).Put("/{id}/permissions", handler.ReplacePermissions)
		routerGroup.With(write).Patch("/{id}/permissions", handler.ToggleSection)
	})
}

// CreateUser adds a back-office account with the role's default permissions.
// @Summary Create user
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/users [post]
// @Security BearerAuth
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create user")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "User created successfully")
}

// GetUsers lists back-office accounts.
// @Summary Get all users
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "E-mail or name contains"
// @Param role query string false "Role"
// @Param active query bool false "Active flag"
// @Success 200 {object} response.Data[dto.GetUsersResponse]
// @Failure 500 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	users, err := handler.service.GetAll(ctx, queryParams, dto.Filter(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, users)
}

// GetUserByID returns one account with its permission map.
// @Summary Get user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	user, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// UpdateUser changes name, role or active flag.
// @Summary Update user
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	req := dto.UpdateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "User updated successfully")
}

// DeleteUser removes an account.
// @Summary Delete user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "User deleted successfully")
}

// ReplacePermissions overwrites the whole permission map.
// @Summary Replace user permissions
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.ReplacePermissionsRequest true "Permission map"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/permissions [put]
// @Security BearerAuth
func (handler *Handler) ReplacePermissions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplacePermissions")
	defer scope.End()

	req := dto.ReplacePermissionsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.ReplacePermissions(ctx, req, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace permissions")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Permissions updated successfully")
}

// ToggleSection switches a single section on or off.
// @Summary Toggle a permission section
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.ToggleSectionRequest true "Section toggle"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/permissions [patch]
// @Security BearerAuth
func (handler *Handler) ToggleSection(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleSection")
	defer scope.End()

	req := dto.ToggleSectionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	user, err := handler.service.ToggleSection(ctx, req, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle section")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// GetMyAccess returns the caller's resolved lock/unlock matrix.
// @Summary Get my access matrix
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.AccessResponse]
// @Failure 401 {object} response.Error
// @Router /v1/users/me/access [get]
// @Security BearerAuth
func (handler *Handler) GetMyAccess(writer http.ResponseWriter, request *http.Request) {
	handler.access(writer, request, shared.ActorFromContext(request.Context()).ID)
}

// GetUserAccess returns another user's resolved matrix.
// @Summary Get user access matrix
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.AccessResponse]
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/access [get]
// @Security BearerAuth
func (handler *Handler) GetUserAccess(writer http.ResponseWriter, request *http.Request) {
	handler.access(writer, request, chi.URLParam(request, constant.RequestParamID))
}

func (handler *Handler) access(writer http.ResponseWriter, request *http.Request, userID string) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccess")
	defer scope.End()

	res, err := handler.service.Access(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user", userID).Msg("failed to resolve access")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
