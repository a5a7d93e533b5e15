package service

import (
	"context"
	"fmt"

	"airtech/config"
	"airtech/infras/jwt"
	"airtech/infras/otel"
	"airtech/internal/domains/auth/model/dto"
	userModel "airtech/internal/domains/user/model"
	userDto "airtech/internal/domains/user/model/dto"
	userRepo "airtech/internal/domains/user/repository"
	"airtech/shared"
	"airtech/shared/constant"
	"airtech/shared/failure"
	"airtech/shared/password"
	"airtech/shared/timezone"
	"airtech/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	msgUsernameTaken = "A user with that username already exists."
	msgEmailTaken    = "user with this email address already exists."
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (userDto.UserResponse, error)
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

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Every failing field comes back at once, not just the first one.
	if fields := validator.ValidateStructFields(&req); len(fields) > 0 {
		return res, failure.Fields(fields) // nolint:wrapcheck
	}

	// Both uniqueness checks run so the caller learns about every conflict
	// in one round trip.
	fields := map[string]string{}

	usernameTaken, err := s.userRepo.Exist(ctx, shared.FilterByID(req.Username, userModel.FieldUsername, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if username exists")

		return res, fmt.Errorf("failed to check if username exists: %w", err)
	}

	if usernameTaken {
		fields[userModel.FieldUsername] = msgUsernameTaken
	}

	emailTaken, err := s.userRepo.Exist(ctx, shared.FilterByID(req.Email, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email exists")

		return res, fmt.Errorf("failed to check if email exists: %w", err)
	}

	if emailTaken {
		fields[userModel.FieldEmail] = msgEmailTaken
	}

	if len(fields) > 0 {
		return res, failure.Fields(fields) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	usernameFilter := shared.FilterByID(req.Username, userModel.FieldUsername, userModel.TableName)

	// Unknown username, wrong password and deactivated account all answer
	// with the same message, so the response never confirms which part of
	// the credentials was wrong.
	user, err := s.userRepo.Get(ctx, usernameFilter)
	if err != nil || user.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.BadRequestFromString(constant.MessageInvalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(constant.MessageInvalidCredentials) // nolint:wrapcheck
	}

	if !user.Active {
		log.Warn().Str("username", req.Username).Msg("login attempt on deactivated account")

		return res, failure.BadRequestFromString(constant.MessageInvalidCredentials) // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, usernameFilter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.User.FromModel(user)
	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updated := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updated, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
