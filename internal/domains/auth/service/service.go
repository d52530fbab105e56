package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	errInvalidCredentials = failure.Unauthorized("invalid email or password")
	errInactiveAccount    = failure.Forbidden("account is not active")
	errWrongPassword      = failure.BadRequestFromString("current password is incorrect")
	errEmailTaken         = failure.Conflict("email already registered")
	errUserNotFound       = failure.NotFound("user not found")
	errInvalidRefresh     = failure.Unauthorized("invalid refresh token")
)

// decoyHash is compared against when the email is unknown so both paths cost one bcrypt run.
var decoyHash = sync.OnceValue(func() string {
	hash, err := password.Hash("decoy-password-for-unknown-accounts")
	if err != nil {
		log.Error().Err(err).Msg("failed to prepare decoy hash")
	}

	return hash
})

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// checkPassword maps a mismatch to rejection and an unusable stored hash to an internal error.
func checkPassword(plain, hash string, rejection error) error {
	err := password.Verify(plain, hash)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, password.ErrInvalidPassword):
		return rejection
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, userRepo.ByEmail(shared.NormalizeEmail(req.Email)))
	if err != nil {
		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return errEmailTaken
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashed, timezone.Now())); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("email", shared.NormalizeEmail(req.Email)).Msg("account registered, awaiting activation")

	return nil
}

// Login checks the password before the account status so an inactive account
// is only disclosed to someone who knows its password.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, userRepo.ByEmail(shared.NormalizeEmail(req.Email)))
	if err != nil {
		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		_ = password.Verify(req.Password, decoyHash())

		return res, errInvalidCredentials
	}

	if err = checkPassword(req.Password, user.Password, errInvalidCredentials); err != nil {
		log.Warn().Str("user", user.ID).Msg("rejected login")

		return res, err
	}

	if !user.Active {
		return res, errInactiveAccount
	}

	pair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	fields := shared.TransformFields(dto.LastLoginUpdate{LastLogin: timezone.Now()}, user.ID)
	if err := s.userRepo.Update(context.WithoutCancel(ctx), fields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user", user.ID).Msg("failed to record last login")
	}

	res.FromTokenPair(pair)
	res.SetUser(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")

		return res, errInvalidRefresh
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return errUserNotFound
	}

	if err = checkPassword(req.CurrentPassword, user.Password, errWrongPassword); err != nil {
		return err
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err = s.userRepo.Update(ctx, shared.TransformFields(dto.PasswordUpdate{Password: hashed}, userID), filter); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
