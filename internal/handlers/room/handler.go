package room

import (
	"net/http"
	"strconv"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/permissions"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	errInvalidCapacity = failure.BadRequestFromString("capacity must be a whole number")
	errRoomNotFound    = failure.NotFound("room not found")
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// PublicRouter exposes active rooms and villas to the website.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPublicRooms)
		routerGroup.Get("/{id}", handler.GetPublicRoom)
	})
}

func (handler *Handler) AdminRouter(router chi.Router, access middleware.Access) {
	read := access.Read(permissions.PortalFrontOffice, permissions.SectionRooms)
	write := access.Write(permissions.PortalFrontOffice, permissions.SectionRooms)

	router.Route("/admin/rooms", func(routerGroup chi.Router) {
		routerGroup.With(read).Get("/", handler.GetRooms)
		routerGroup.With(read).Get("/{id}", handler.GetRoom)
		routerGroup.With(write).Post("/", handler.CreateRoom)
		routerGroup.With(write).Patch("/{id}", handler.UpdateRoom)
		routerGroup.With(write).Delete("/{id}", handler.DeleteRoom)
	})
}

// roomForm holds the multipart fields shared by create and update.
type roomForm struct {
	nightlyRate *decimal.Decimal
	taxRate     *decimal.Decimal
	capacity    *int
	active      *bool
	image       dto.Image
}

func parseDecimal(field, value string) (*decimal.Decimal, error) {
	if value == constant.Empty {
		return nil, nil
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid " + field + ": " + value)
	}

	return &parsed, nil
}

// readForm parses the multipart body. The caller closes the image file, if any.
func readForm(r *http.Request) (roomForm, error) {
	var form roomForm

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return form, failure.BadRequest(err)
	}

	var err error

	if form.nightlyRate, err = parseDecimal(model.FieldNightlyRate, r.FormValue(model.FieldNightlyRate)); err != nil {
		return form, err
	}

	if form.taxRate, err = parseDecimal(model.FieldTaxRate, r.FormValue(model.FieldTaxRate)); err != nil {
		return form, err
	}

	if raw := r.FormValue(model.FieldCapacity); raw != constant.Empty {
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			return form, errInvalidCapacity
		}

		form.capacity = &capacity
	}

	form.active = shared.ConvertStringToBool(r.FormValue(model.FieldActive))

	if file, header, err := r.FormFile(model.FieldImage); err == nil {
		form.image = dto.Image{Header: header, File: file}
	}

	return form, nil
}

func (f roomForm) close() {
	if f.image.File != nil {
		_ = f.image.File.Close()
	}
}

// CreateRoom creates a room or villa.
// @Summary Create a room
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Room name"
// @Param kind formData string true "room or villa"
// @Param category formData string false "Room category"
// @Param description formData string false "Room description"
// @Param capacity formData integer false "Room capacity"
// @Param nightly_rate formData string true "Nightly rate"
// @Param tax_rate formData string false "Tax per night"
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	form, err := readForm(r)
	defer form.close()

	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateRoomRequest{
		Name:        r.FormValue(model.FieldName),
		Kind:        r.FormValue(model.FieldKind),
		Category:    r.FormValue(model.FieldCategory),
		Description: r.FormValue(model.FieldDescription),
		Active:      form.active,
	}
	req.SetImage(form.image)

	if form.nightlyRate != nil {
		req.NightlyRate = *form.nightlyRate
	}

	if form.taxRate != nil {
		req.TaxRate = *form.taxRate
	}

	if form.capacity != nil {
		req.Capacity = *form.capacity
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

func filters(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldName), Table: model.TableName},
			gDto.Filter{Field: model.FieldCategory, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldCategory), Table: model.TableName},
		},
	}

	if kind := query.Get(model.FieldKind); kind != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldKind, Operator: gDto.FilterOperatorEq, Value: kind, Table: model.TableName})
	}

	return group
}

func activeFilter(active bool) gDto.Filter {
	return gDto.Filter{Field: model.FieldActive, Operator: gDto.FilterOperatorEq, Value: active, Table: model.TableName}
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, operation string, filter gDto.FilterGroup) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	rooms, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRooms lists every room for the back office.
// @Summary List rooms (back office)
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param kind query string false "room or villa"
// @Param category query string false "Filter by category"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	filter := filters(r)

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filter.Filters = append(filter.Filters, activeFilter(*active))
	}

	handler.list(w, r, "GetRooms", filter)
}

// GetPublicRooms lists the active rooms shown on the website.
// @Summary List rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param kind query string false "room or villa"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetPublicRooms(w http.ResponseWriter, r *http.Request) {
	filter := filters(r)
	filter.Filters = append(filter.Filters, activeFilter(true))

	handler.list(w, r, "GetPublicRooms", filter)
}

func (handler *Handler) get(w http.ResponseWriter, r *http.Request, operation string, activeOnly bool) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err == nil && activeOnly && !room.Active {
		err = errRoomNotFound
	}

	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetRoom returns a room regardless of its status.
// @Summary Get a room (back office)
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	handler.get(w, r, "GetRoom", false)
}

// GetPublicRoom returns an active room; inactive rooms are reported as missing.
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetPublicRoom(w http.ResponseWriter, r *http.Request) {
	handler.get(w, r, "GetPublicRoom", true)
}

// UpdateRoom patches a room; omitted fields keep their value.
// @Summary Update a room
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param name formData string false "Room name"
// @Param kind formData string false "room or villa"
// @Param category formData string false "Room category"
// @Param nightly_rate formData string false "Nightly rate"
// @Param tax_rate formData string false "Tax per night"
// @Param capacity formData integer false "Room capacity"
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	form, err := readForm(r)
	defer form.close()

	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		Name:        r.FormValue(model.FieldName),
		Kind:        r.FormValue(model.FieldKind),
		Category:    r.FormValue(model.FieldCategory),
		Description: r.FormValue(model.FieldDescription),
		NightlyRate: form.nightlyRate,
		TaxRate:     form.taxRate,
		Capacity:    form.capacity,
		Active:      form.active,
	}
	req.SetImage(form.image)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room and its image.
// @Summary Delete a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
