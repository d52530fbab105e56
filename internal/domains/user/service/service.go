package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	auditModel "hotel/internal/domains/audit/model"
	auditDto "hotel/internal/domains/audit/model/dto"
	auditService "hotel/internal/domains/audit/service"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/repository"
	"hotel/permissions"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	Delete(ctx context.Context, id string) error
	ReplacePermissions(ctx context.Context, req dto.ReplacePermissionsRequest, id string) error
	ToggleSection(ctx context.Context, req dto.ToggleSectionRequest, id string) (dto.UserResponse, error)
	Access(ctx context.Context, id string) (dto.AccessResponse, error)
	// Subject loads what the access middleware needs to authorise a request.
	Subject(ctx context.Context, id string) (permissions.Subject, error)
}

type serviceImpl struct {
	repo     repository.User
	resolver *permissions.Resolver
	audit    auditService.Audit
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.User,
	resolver *permissions.Resolver,
	audit auditService.Audit,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) User {
	return &serviceImpl{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// invalidate runs before the write returns so the next read sees the change.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
			log.Error().Err(err).Str("user", id).Msg("failed to delete user from cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
}

func (s *serviceImpl) remember(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save users to cache")
	}
}

func (s *serviceImpl) record(ctx context.Context, action, id string, details map[string]any) {
	if err := s.audit.Record(ctx, auditDto.Entry{
		Category:   auditModel.CategoryUsers,
		Action:     action,
		EntityType: model.EntityName,
		EntityID:   id,
		Details:    details,
	}); err != nil {
		log.Warn().Err(err).Str("user", id).Msg("failed to audit user change")
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.Exist(ctx, repository.ByEmail(shared.NormalizeEmail(req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(shared.ActorFromContext(ctx).ID, hashedPassword, s.resolver.Catalog())

	if err = s.repo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	s.record(ctx, auditModel.ActionCreate, user.ID, map[string]any{"email": user.Email, "role": user.Role})

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users, total, req.Limit)

	s.remember(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	s.remember(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor := shared.ActorFromContext(ctx)

	if actor.ID == id && req.Active != nil && !*req.Active {
		return failure.Unprocessable("you cannot deactivate your own account") // nolint:wrapcheck
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor.ID), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	details := map[string]any{}
	if req.Role != nil {
		details["role"] = map[string]string{"from": user.Role, "to": *req.Role}
	}

	if req.Active != nil {
		details["active"] = *req.Active
	}

	s.record(ctx, auditModel.ActionUpdate, id, details)

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.ActorFromContext(ctx).ID == id {
		return failure.Unprocessable("you cannot delete your own account") // nolint:wrapcheck
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.record(ctx, auditModel.ActionDelete, id, map[string]any{"email": user.Email})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) storePermissions(ctx context.Context, id string, access permissions.AccessMap) error {
	err := s.repo.Update(ctx, map[string]any{
		model.FieldPermissions:   access,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.ActorFromContext(ctx).ID,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("user", id).Msg("failed to store permissions")

		return fmt.Errorf("failed to store permissions: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// ReplacePermissions swaps the whole map after checking it against the catalog.
func (s *serviceImpl) ReplacePermissions(ctx context.Context, req dto.ReplacePermissionsRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReplacePermissions")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Permissions.Validate(s.resolver.Catalog()); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.storePermissions(ctx, id, req.Permissions); err != nil {
		return err
	}

	s.record(ctx, auditModel.ActionAccess, id, map[string]any{"permissions": req.Permissions})

	return nil
}

// ToggleSection turns one section on (read_write) or off (entry removed) and returns the updated user.
func (s *serviceImpl) ToggleSection(ctx context.Context, req dto.ToggleSectionRequest, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleSection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.resolver.Catalog().HasSection(req.Portal, req.Section) {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown section %s.%s", req.Portal, req.Section)) // nolint:wrapcheck
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	user.Permissions = user.Permissions.Toggle(req.Portal, req.Section, *req.Enabled)

	if err = s.storePermissions(ctx, id, user.Permissions); err != nil {
		return res, err
	}

	s.record(ctx, auditModel.ActionAccess, id, map[string]any{
		"portal":  req.Portal,
		"section": req.Section,
		"enabled": *req.Enabled,
	})

	res.FromModel(user)

	return res, nil
}

// Subject always reads the stored user: a revoked section must lock on the very next request.
func (s *serviceImpl) Subject(ctx context.Context, id string) (res permissions.Subject, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("account no longer exists") // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("account is deactivated") // nolint:wrapcheck
	}

	return user.Subject(), nil
}

func (s *serviceImpl) Access(ctx context.Context, id string) (res dto.AccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Access")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	subject, err := s.Subject(ctx, id)
	if err != nil {
		return res, err
	}

	return dto.AccessResponse{
		UserID:     id,
		Role:       subject.Role,
		FullAccess: s.resolver.HasFullAccess(subject),
		Portals:    s.resolver.Matrix(subject),
	}, nil
}
