package activity

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/activity/model/dto"
	"hotel/internal/domains/activity/service"
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
	service service.Activity
	otel    otel.Otel
}

func New(service service.Activity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Route("/activities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.listActivities(true))
		routerGroup.Get("/{id}", handler.GetActivityByID)
	})
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	read := access.Read(permissions.PortalMasterData, permissions.SectionActivities)
	write := access.Write(permissions.PortalMasterData, permissions.SectionActivities)

	router.Route("/admin/activities", func(routerGroup chi.Router) {
		routerGroup.With(read).Get("/", handler.listActivities(false))
		routerGroup.With(read).Get("/{id}", handler.GetActivityByID)
		routerGroup.With(write).Post("/", handler.CreateActivity)
		routerGroup.With(write).Patch("/{id}", handler.UpdateActivity)
		routerGroup.With(write).Delete("/{id}", handler.DeleteActivity)
		routerGroup.With(write).Post("/upload", handler.UploadImage)
		routerGroup.With(write).Delete("/images", handler.DeleteImages)
	})
}

// CreateActivity adds an activity to the catalogue.
// @Summary Create activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body dto.CreateActivityRequest true "Create Activity Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/activities [post]
// @Security BearerAuth
func (handler *Handler) CreateActivity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateActivity")
	defer scope.End()

	req := dto.CreateActivityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create activity")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Activity created by user " + shared.ActorFromContext(ctx).ID)

	response.WithMessage(writer, http.StatusCreated, "Activity created successfully")
}

// GetActivities lists activities. The public listing only shows active ones.
// @Summary Get all activities
// @Tags Activity
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Title contains"
// @Param active query bool false "Active flag (admin only)"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/activities [get]
// @Router /v1/admin/activities [get]
func (handler *Handler) listActivities(public bool) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
		defer scope.End()

		queryParams := gDto.QueryParams{}
		queryParams.FromRequest(request, true)

		activities, err := handler.service.GetAll(ctx, queryParams, dto.Filter(request, public))
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to get activities")

			response.WithError(writer, err)

			return
		}

		response.WithJSON(writer, http.StatusOK, activities)
	}
}

// GetActivityByID returns one activity.
// @Summary Get activity by ID
// @Tags Activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response.Data[dto.ActivityResponse]
// @Failure 404 {object} response.Error
// @Router /v1/activities/{id} [get]
// @Router /v1/admin/activities/{id} [get]
func (handler *Handler) GetActivityByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivityByID")
	defer scope.End()

	activity, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activity")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, activity)
}

// UpdateActivity changes an activity. Omitted fields are left as they are.
// @Summary Update activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body dto.UpdateActivityRequest true "Update Activity Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/activities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateActivity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateActivity")
	defer scope.End()

	req := dto.UpdateActivityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update activity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Activity updated successfully")
}

// DeleteActivity removes an activity and its images.
// @Summary Delete activity
// @Tags Activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/activities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteActivity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteActivity")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete activity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Activity deleted successfully")
}

// UploadImage stores an activity image and returns its public URL.
// @Summary Upload activity image
// @Tags Activity
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/activities/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(writer, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload activity image")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteImages removes uploaded images by URL.
// @Summary Delete activity images
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body dto.DeleteImagesRequest true "Delete Images Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/activities/images [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImages")
	defer scope.End()

	req := dto.DeleteImagesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteImages(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete activity images")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Images deleted successfully")
}
