package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"homestay/config"
	"homestay/infras/jwt"
	jwtMocks "homestay/infras/jwt/mocks"
	kafkaMocks "homestay/infras/kafka/mocks"
	otelMocks "homestay/infras/otel/mocks"
	"homestay/internal/domains/auth/model/dto"
	"homestay/internal/domains/auth/service"
	userModel "homestay/internal/domains/user/model"
	userMocks "homestay/internal/domains/user/mocks"
	"homestay/shared/cache"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/failure"
	"homestay/shared/password"
)

type authServiceMocks struct {
	userRepo *userMocks.MockUser
	cache    *cacheMocks.MockRedisCache
	jwt      *jwtMocks.MockJWT
	kafka    *kafkaMocks.MockClient
}

func newAuthService(t *testing.T) (service.Auth, authServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := authServiceMocks{
		userRepo: userMocks.NewMockUser(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.Guard.LoginMaxFailures = 5
	cfg.App.Guard.LoginWindowSeconds = 600
	cfg.App.Guard.SMSSendIntervalSeconds = 60
	cfg.App.SMSCodeTTLSeconds = 300
	cfg.Kafka.SMSTopic = "sms.send"

	svc := service.New(deps.userRepo, cfg, deps.cache, otelMocks.NewOtel(), deps.jwt, deps.kafka)

	return svc, deps
}

func TestAuthService_RequestSMSCode(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(deps authServiceMocks)
		wantCode  int
	}{
		{
			name: "code is stored and dispatched for a new mobile",
			setupMock: func(deps authServiceMocks) {
				deps.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				deps.cache.EXPECT().
					Get(gomock.Any(), "sms:interval:13800001111", gomock.Any()).
					Return(cache.Nil)

				deps.cache.EXPECT().
					Save(gomock.Any(), "sms:code:13800001111", gomock.Any(), 300).
					Return(nil)

				deps.kafka.EXPECT().
					SendMessages(gomock.Any(), "sms.send", gomock.Any()).
					Return(nil)

				deps.cache.EXPECT().
					Increment(gomock.Any(), "sms:interval:13800001111", 60).
					Return(int64(1), nil)
			},
		},
		{
			name: "registered mobile is refused",
			setupMock: func(deps authServiceMocks) {
				deps.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: failure.GetCode(failure.Conflict("")),
		},
		{
			name: "a send inside the interval window is refused",
			setupMock: func(deps authServiceMocks) {
				deps.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				deps.cache.EXPECT().
					Get(gomock.Any(), "sms:interval:13800001111", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						raw, _ := value.(*string)
						*raw = "1"

						return nil
					})
			},
			wantCode: failure.GetCode(failure.TooManyRequests("")),
		},
		{
			name: "failing to store the code aborts the send",
			setupMock: func(deps authServiceMocks) {
				deps.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				deps.cache.EXPECT().
					Get(gomock.Any(), "sms:interval:13800001111", gomock.Any()).
					Return(cache.Nil)

				deps.cache.EXPECT().
					Save(gomock.Any(), "sms:code:13800001111", gomock.Any(), 300).
					Return(errors.New("redis down"))
			},
			wantCode: failure.GetCode(errors.New("redis down")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newAuthService(t)
			tt.setupMock(deps)

			err := svc.RequestSMSCode(context.Background(), dto.RequestSMSCodeRequest{Mobile: "13800001111"})

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Mobile:   "13800001111",
		Code:     "123456",
		Password: "s3cret-pass",
		Name:     "Alice",
	}

	tests := []struct {
		name      string
		setupMock func(deps authServiceMocks)
		wantCode  int
	}{
		{
			name: "matching code creates the account and consumes the code",
			setupMock: func(deps authServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "sms:code:13800001111", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						stored, _ := value.(*string)
						*stored = "123456"

						return nil
					})

				deps.userRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, req.Mobile, user.Mobile)
						assert.NoError(t, password.Verify(req.Password, user.Password))

						return nil
					})

				deps.cache.EXPECT().
					Delete(gomock.Any(), "sms:code:13800001111").
					Return(nil)
			},
		},
		{
			name: "mismatched code is refused",
			setupMock: func(deps authServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "sms:code:13800001111", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						stored, _ := value.(*string)
						*stored = "654321"

						return nil
					})
			},
			wantCode: failure.GetCode(failure.BadRequestFromString("")),
		},
		{
			name: "expired code is refused",
			setupMock: func(deps authServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "sms:code:13800001111", gomock.Any()).
					Return(cache.Nil)
			},
			wantCode: failure.GetCode(failure.BadRequestFromString("")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newAuthService(t)
			tt.setupMock(deps)

			err := svc.Register(context.Background(), req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(deps authServiceMocks)
		wantCode  int
	}{
		{
			name: "valid credentials return a token pair",
			req:  dto.LoginRequest{Mobile: "13800001111", Password: "s3cret-pass"},
			setupMock: func(deps authServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "login:fail:203.0.113.7", gomock.Any()).
					Return(cache.Nil)

				deps.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "user-1", Mobile: "13800001111", Password: hashed, Name: "Alice"}, nil)

				deps.jwt.EXPECT().
					GenerateTokenPair("user-1", "13800001111", "").
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, nil)
			},
		},
		{
			name: "wrong password records a strike",
			req:  dto.LoginRequest{Mobile: "13800001111", Password: "wrong-pass"},
			setupMock: func(deps authServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "login:fail:203.0.113.7", gomock.Any()).
					Return(cache.Nil)

				deps.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "user-1", Mobile: "13800001111", Password: hashed}, nil)

				deps.cache.EXPECT().
					Increment(gomock.Any(), "login:fail:203.0.113.7", 600).
					Return(int64(1), nil)
			},
			wantCode: failure.GetCode(failure.BadRequestFromString("")),
		},
		{
			name: "unknown mobile records a strike with the same message",
			req:  dto.LoginRequest{Mobile: "13899999999", Password: "s3cret-pass"},
			setupMock: func(deps authServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "login:fail:203.0.113.7", gomock.Any()).
					Return(cache.Nil)

				deps.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)

				deps.cache.EXPECT().
					Increment(gomock.Any(), "login:fail:203.0.113.7", 600).
					Return(int64(1), nil)
			},
			wantCode: failure.GetCode(failure.BadRequestFromString("")),
		},
		{
			name: "the failure counter blocks further attempts",
			req:  dto.LoginRequest{Mobile: "13800001111", Password: "s3cret-pass"},
			setupMock: func(deps authServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "login:fail:203.0.113.7", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						raw, _ := value.(*string)
						*raw = "5"

						return nil
					})
			},
			wantCode: failure.GetCode(failure.TooManyRequests("")),
		},
		{
			name: "an unreachable counter store fails open",
			req:  dto.LoginRequest{Mobile: "13800001111", Password: "s3cret-pass"},
			setupMock: func(deps authServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "login:fail:203.0.113.7", gomock.Any()).
					Return(errors.New("redis down"))

				deps.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "user-1", Mobile: "13800001111", Password: hashed, Name: "Alice"}, nil)

				deps.jwt.EXPECT().
					GenerateTokenPair("user-1", "13800001111", "").
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newAuthService(t)
			tt.setupMock(deps)

			res, err := svc.Login(context.Background(), tt.req, "203.0.113.7")

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "access", res.AccessToken)
				assert.Equal(t, "user-1", res.UserID)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(deps authServiceMocks)
		wantCode  int
	}{
		{
			name: "valid refresh token rotates the pair",
			setupMock: func(deps authServiceMocks) {
				deps.jwt.EXPECT().
					RefreshTokens("refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", TokenType: "Bearer", ExpiresIn: 900}, nil)
			},
		},
		{
			name: "invalid refresh token is unauthorized",
			setupMock: func(deps authServiceMocks) {
				deps.jwt.EXPECT().
					RefreshTokens("refresh-token").
					Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: failure.GetCode(failure.Unauthorized("")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newAuthService(t)
			tt.setupMock(deps)

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "new-access", res.AccessToken)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}
