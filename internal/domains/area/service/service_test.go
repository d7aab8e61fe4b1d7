package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"homestay/config"
	"homestay/infras/otel/mocks"
	areaMocks "homestay/internal/domains/area/mocks"
	"homestay/internal/domains/area/model"
	"homestay/internal/domains/area/service"
	"homestay/shared/cache"
	cacheMocks "homestay/shared/cache/mocks"
)

func TestAreaService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := areaMocks.NewMockArea(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.AreaTTL = 7200

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache miss repopulates from store",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "areas:all", gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Area{
						{ID: "area-1", Name: "Downtown"},
						{ID: "area-2", Name: "Riverside"},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "areas:all", gomock.Any(), 7200).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "store failure surfaces an error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "areas:all", gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Areas, tt.wantLen)
			}
		})
	}
}
