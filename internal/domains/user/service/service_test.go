package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"homestay/config"
	otelMocks "homestay/infras/otel/mocks"
	s3Mocks "homestay/infras/s3/mocks"
	"homestay/internal/domains/user/mocks"
	"homestay/internal/domains/user/model"
	"homestay/internal/domains/user/model/dto"
	"homestay/internal/domains/user/service"
	"homestay/shared/failure"
	gRepo "homestay/shared/repository"
)

type userServiceMocks struct {
	repo *mocks.MockUser
	s3   *s3Mocks.MockS3
}

func newUserService(t *testing.T) (service.User, userServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := userServiceMocks{
		repo: mocks.NewMockUser(ctrl),
		s3:   s3Mocks.NewMockS3(ctrl),
	}

	svc := service.New(deps.repo, &config.Config{}, otelMocks.NewOtel(), deps.s3)

	return svc, deps
}

func TestUserService_GetProfile(t *testing.T) {
	avatarURL := "https://cdn.example.com/user/user-1"

	tests := []struct {
		name      string
		setupMock func(deps userServiceMocks)
		expected  dto.ProfileResponse
		wantCode  int
	}{
		{
			name: "profile with avatar is returned",
			setupMock: func(deps userServiceMocks) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "user-1", Mobile: "13800001111", Name: "Alex", AvatarURL: &avatarURL}, nil)
			},
			expected: dto.ProfileResponse{UserID: "user-1", Mobile: "13800001111", Name: "Alex", AvatarURL: avatarURL},
		},
		{
			name: "a user without an avatar gets an empty url",
			setupMock: func(deps userServiceMocks) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "user-1", Mobile: "13800001111", Name: "Alex"}, nil)
			},
			expected: dto.ProfileResponse{UserID: "user-1", Mobile: "13800001111", Name: "Alex"},
		},
		{
			name: "unknown user is not found",
			setupMock: func(deps userServiceMocks) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantCode: failure.GetCode(failure.NotFound("")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newUserService(t)
			tt.setupMock(deps)

			res, err := svc.GetProfile(context.Background(), "user-1")

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestUserService_UpdateName(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(deps userServiceMocks)
		wantCode  int
	}{
		{
			name: "name change is written with the caller as modifier",
			setupMock: func(deps userServiceMocks) {
				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "Sam", fields[model.FieldName])
						assert.Equal(t, "user-1", fields["modified_by"])

						return nil
					})
			},
		},
		{
			name: "a vanished user row is not found",
			setupMock: func(deps userServiceMocks) {
				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(gRepo.ErrNoRowsUpdated)
			},
			wantCode: failure.GetCode(failure.NotFound("")),
		},
		{
			name: "a store failure surfaces as an internal error",
			setupMock: func(deps userServiceMocks) {
				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantCode: failure.GetCode(errors.New("connection reset")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newUserService(t)
			tt.setupMock(deps)

			err := svc.UpdateName(context.Background(), "user-1", dto.UpdateNameRequest{Name: "Sam"})

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestUserService_UploadAvatar(t *testing.T) {
	avatarURL := "https://cdn.example.com/user/user-1"

	tests := []struct {
		name      string
		setupMock func(deps userServiceMocks)
		wantCode  int
	}{
		{
			name: "uploaded avatar url is saved on the user",
			setupMock: func(deps userServiceMocks) {
				deps.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), "user-1").
					Return(avatarURL, nil)

				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, avatarURL, fields[model.FieldAvatarURL])

						return nil
					})
			},
		},
		{
			name: "a failed object upload writes nothing",
			setupMock: func(deps userServiceMocks) {
				deps.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), "user-1").
					Return("", errors.New("bucket unavailable"))
			},
			wantCode: failure.GetCode(errors.New("bucket unavailable")),
		},
		{
			name: "a vanished user row is not found",
			setupMock: func(deps userServiceMocks) {
				deps.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), "user-1").
					Return(avatarURL, nil)

				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(gRepo.ErrNoRowsUpdated)
			},
			wantCode: failure.GetCode(failure.NotFound("")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newUserService(t)
			tt.setupMock(deps)

			res, err := svc.UploadAvatar(context.Background(), "user-1", nil, nil)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.Equal(t, avatarURL, res.AvatarURL)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}
