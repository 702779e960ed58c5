package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/jwt"
	jwtMocks "github.com/gabrielgilbord/Frantana-Booking/infras/jwt/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel/mocks"
	adminMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/admin/mocks"
	adminModel "github.com/gabrielgilbord/Frantana-Booking/internal/domains/admin/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/auth/model/dto"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/auth/service"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gModel "github.com/gabrielgilbord/Frantana-Booking/shared/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdminRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockAdminRepo, cfg, mockOtel, mockJWT)

	validAdmin := adminModel.Admin{
		ID:       "admin-id-123",
		Username: "frantana",
		Password: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Email:    "admin@frantana.com",
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login updates last login",
			req: dto.LoginRequest{
				Username: "frantana",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validAdmin.ID, validAdmin.Username, constant.RoleAdmin).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockAdminRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown username never touches last login",
			req: dto.LoginRequest{
				Username: "nobody",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password never touches last login",
			req: dto.LoginRequest{
				Username: "frantana",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)
			},
			wantErr: true,
		},
		{
			name: "lookup error",
			req: dto.LoginRequest{
				Username: "frantana",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Username: "frantana",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validAdmin.ID, validAdmin.Username, constant.RoleAdmin).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_Login_GenericMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdminRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockAdminRepo, &config.Config{}, mockOtel, mockJWT)

	validAdmin := adminModel.Admin{
		ID:       "admin-id-123",
		Username: "frantana",
		Password: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi",
		Active:   true,
	}

	// Unknown username
	mockAdminRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(adminModel.Admin{}, nil)

	_, errUnknown := svc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "password"})

	// Wrong password
	mockAdminRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(validAdmin, nil)

	_, errWrongPass := svc.Login(context.Background(), dto.LoginRequest{Username: "frantana", Password: "nope"})

	assert.Error(t, errUnknown)
	assert.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error(), "both failure modes must be indistinguishable")
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdminRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockAdminRepo, &config.Config{}, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req: dto.RefreshTokenRequest{
				RefreshToken: "valid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req: dto.RefreshTokenRequest{
				RefreshToken: "invalid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.RefreshToken(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdminRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockAdminRepo, &config.Config{}, mockOtel, mockJWT)

	validAdmin := adminModel.Admin{
		ID:       "admin-id-123",
		Username: "frantana",
		Password: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		adminID   string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful password change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
				ConfirmPassword: "newpassword123",
			},
			adminID: "admin-id-123",
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)

				mockAdminRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "admin not found",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
				ConfirmPassword: "newpassword123",
			},
			adminID: "nonexistent-id",
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "wrongpassword",
				NewPassword:     "newpassword123",
				ConfirmPassword: "newpassword123",
			},
			adminID: "admin-id-123",
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)
			},
			wantErr: true,
		},
		{
			name: "update password error",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
				ConfirmPassword: "newpassword123",
			},
			adminID: "admin-id-123",
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)

				mockAdminRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.ChangePassword(ctx, tt.req, tt.adminID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
