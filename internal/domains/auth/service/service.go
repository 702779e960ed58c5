package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/jwt"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	adminModel "github.com/gabrielgilbord/Frantana-Booking/internal/domains/admin/model"
	adminRepo "github.com/gabrielgilbord/Frantana-Booking/internal/domains/admin/repository"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/auth/model/dto"
	"github.com/gabrielgilbord/Frantana-Booking/shared"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/password"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, adminID string) error
}

type serviceImpl struct {
	adminRepo  adminRepo.Admin
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(adminRepo adminRepo.Admin, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		adminRepo:  adminRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Unknown username, wrong password and deactivated account all surface
	// the same generic message. Nothing is written on a failed attempt.
	usernameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    adminModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Username,
				Table:    adminModel.TableName,
			},
			gDto.Filter{
				Field:    adminModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    adminModel.TableName,
			},
		},
	}

	admin, err := s.adminRepo.Get(ctx, usernameFilter)
	if err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt failed to look up admin")

		return res, failure.Unauthorized("invalid credentials")
	}

	if admin.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown or inactive username")

		return res, failure.Unauthorized("invalid credentials")
	}

	if err := password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid credentials")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(admin.ID, admin.Username, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, admin.Username)

	if err := s.adminRepo.Update(ctx, updatedFields, usernameFilter); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

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

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, adminID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(adminID, adminModel.FieldID, adminModel.TableName)

	admin, err := s.adminRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found")
	}

	if err := password.Verify(req.CurrentPassword, admin.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, username)

	if err = s.adminRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
