package housekeeping

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/housekeeping/model"
	"hotel/internal/domains/housekeeping/model/dto"
	"hotel/internal/domains/housekeeping/service"
	"hotel/permissions"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	read := access.Read(permissions.PortalFrontOffice, permissions.SectionHousekeeping)
	write := access.Write(permissions.PortalFrontOffice, permissions.SectionHousekeeping)

	router.Route("/housekeeping", func(routerGroup chi.Router) {
		routerGroup.With(read).Get("/", handler.GetTasks)
		routerGroup.With(read).Get("/{id}", handler.GetTask)
		routerGroup.With(write).Post("/", handler.CreateTask)
		routerGroup.With(write).Patch("/{id}", handler.UpdateTask)
	})
}

// CreateTask queues a manual housekeeping task.
// @Summary Create a housekeeping task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/housekeeping [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create housekeeping task")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Housekeeping task created successfully")
}

// GetTasks lists housekeeping tasks.
// @Summary List housekeeping tasks
// @Tags Housekeeping
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "pending, in_progress or done"
// @Param room_id query string false "Room"
// @Success 200 {object} response.Data[dto.GetTasksResponse]
// @Router /v1/housekeeping [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldStatus, model.FieldRoomID} {
		if value := request.URL.Query().Get(field); value != constant.Empty {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	tasks, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, tasks)
}

// GetTask returns one task.
// @Summary Get a housekeeping task
// @Tags Housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.TaskResponse]
// @Failure 404 {object} response.Error
// @Router /v1/housekeeping/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTask")
	defer scope.End()

	task, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, task)
}

// UpdateTask changes a task's status or notes.
// @Summary Update a housekeeping task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Changes"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/housekeeping/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	req := dto.UpdateTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update housekeeping task")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Housekeeping task updated successfully")
}
