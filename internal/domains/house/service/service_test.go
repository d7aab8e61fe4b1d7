package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"homestay/config"
	"homestay/infras/otel/mocks"
	s3Mocks "homestay/infras/s3/mocks"
	areaMocks "homestay/internal/domains/area/mocks"
	houseMocks "homestay/internal/domains/house/mocks"
	"homestay/internal/domains/house/model"
	"homestay/internal/domains/house/model/dto"
	"homestay/internal/domains/house/service"
	reservationMocks "homestay/internal/domains/reservation/mocks"
	userMocks "homestay/internal/domains/user/mocks"
	"homestay/shared/cache"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/failure"
)

type houseServiceMocks struct {
	repo            *houseMocks.MockHouse
	imageRepo       *houseMocks.MockHouseImage
	areaRepo        *areaMocks.MockArea
	reservationRepo *reservationMocks.MockReservation
	userRepo        *userMocks.MockUser
	cache           *cacheMocks.MockRedisCache
	s3              *s3Mocks.MockS3
}

// txRunnerStub hands the callback a nil transaction; the repositories behind
// it are mocks and never touch it.
type txRunnerStub struct{}

func (txRunnerStub) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func newHouseService(t *testing.T) (service.House, houseServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := houseServiceMocks{
		repo:            houseMocks.NewMockHouse(ctrl),
		imageRepo:       houseMocks.NewMockHouseImage(ctrl),
		areaRepo:        areaMocks.NewMockArea(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		userRepo:        userMocks.NewMockUser(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
		s3:              s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.SearchPageSize = 10
	cfg.Cache.SearchTTL = 120
	cfg.Cache.DetailTTL = 3600

	svc := service.New(
		deps.repo,
		deps.imageRepo,
		deps.areaRepo,
		deps.reservationRepo,
		deps.userRepo,
		txRunnerStub{},
		cfg,
		deps.cache,
		mocks.NewOtel(),
		deps.s3,
	)

	return svc, deps
}

func TestHouseService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateHouseRequest
		setupMock func(deps houseServiceMocks)
		wantErr   bool
	}{
		{
			name: "valid house is created",
			req: dto.CreateHouseRequest{
				Title:   "Seaside loft",
				Price:   42000,
				AreaID:  "area-1",
				MinDays: 1,
				MaxDays: 14,
			},
			setupMock: func(deps houseServiceMocks) {
				deps.areaRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				deps.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				deps.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "max days below min days is rejected",
			req: dto.CreateHouseRequest{
				Title:   "Seaside loft",
				Price:   42000,
				AreaID:  "area-1",
				MinDays: 7,
				MaxDays: 3,
			},
			setupMock: func(deps houseServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "unknown area is rejected",
			req: dto.CreateHouseRequest{
				Title:   "Seaside loft",
				Price:   42000,
				AreaID:  "area-x",
				MinDays: 1,
			},
			setupMock: func(deps houseServiceMocks) {
				deps.areaRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newHouseService(t)
			tt.setupMock(deps)

			res, err := svc.Create(context.Background(), "owner-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.HouseID)
			}
		})
	}
}

func TestHouseService_Search(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SearchHousesRequest
		setupMock func(deps houseServiceMocks)
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cached page is served without touching the store",
			req:  dto.SearchHousesRequest{AreaID: "area-1", Page: "1"},
			setupMock: func(deps houseServiceMocks) {
				deps.cache.EXPECT().
					GetField(gomock.Any(), "houses:search:::area-1:", "1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, value any) error {
						res, _ := value.(*dto.SearchHousesResponse)
						res.Houses = []dto.HouseSummary{{ID: "house-1"}}
						res.Page = 1
						res.TotalPage = 1

						return nil
					})
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name: "cache miss excludes conflicting houses and caches the page",
			req:  dto.SearchHousesRequest{StartDate: "2026-09-01", EndDate: "2026-09-05"},
			setupMock: func(deps houseServiceMocks) {
				deps.cache.EXPECT().
					GetField(gomock.Any(), gomock.Any(), "1", gomock.Any()).
					Return(cache.Nil)

				deps.reservationRepo.EXPECT().
					ConflictingHouseIDs(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]string{"house-9"}, nil)

				deps.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				deps.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.House{{ID: "house-1"}, {ID: "house-2"}}, nil)

				deps.cache.EXPECT().
					SaveField(gomock.Any(), gomock.Any(), "1", gomock.Any(), 120).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name:      "start date after end date is rejected",
			req:       dto.SearchHousesRequest{StartDate: "2026-09-10", EndDate: "2026-09-01"},
			setupMock: func(deps houseServiceMocks) {},
			wantErr:   true,
		},
		{
			name:      "malformed date is rejected",
			req:       dto.SearchHousesRequest{StartDate: "not-a-date"},
			setupMock: func(deps houseServiceMocks) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newHouseService(t)
			tt.setupMock(deps)

			res, err := svc.Search(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Houses, tt.wantLen)
			}
		})
	}
}

func TestHouseService_GetDetail(t *testing.T) {
	indexImage := "https://cdn.example.com/houses/house-1.jpg"

	tests := []struct {
		name      string
		houseID   string
		viewerID  string
		setupMock func(deps houseServiceMocks)
		wantErr   error
		wantOwner bool
	}{
		{
			name:     "cached detail still resolves ownership per viewer",
			houseID:  "house-1",
			viewerID: "owner-1",
			setupMock: func(deps houseServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "houses:detail:house-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						detail, _ := value.(*dto.HouseDetail)
						detail.ID = "house-1"
						detail.OwnerID = "owner-1"

						return nil
					})
			},
			wantOwner: true,
		},
		{
			name:     "cache miss assembles detail from store",
			houseID:  "house-1",
			viewerID: "guest-1",
			setupMock: func(deps houseServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "houses:detail:house-1", gomock.Any()).
					Return(cache.Nil)

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.House{ID: "house-1", OwnerID: "owner-1", IndexImageURL: &indexImage}, nil)

				deps.imageRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.HouseImage{{ID: "img-1", HouseID: "house-1", URL: indexImage}}, nil)

				deps.reservationRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				deps.cache.EXPECT().
					Save(gomock.Any(), "houses:detail:house-1", gomock.Any(), 3600).
					Return(nil).
					AnyTimes()
			},
			wantOwner: false,
		},
		{
			name:     "unknown house is not found",
			houseID:  "house-x",
			viewerID: "",
			setupMock: func(deps houseServiceMocks) {
				deps.cache.EXPECT().
					Get(gomock.Any(), "houses:detail:house-x", gomock.Any()).
					Return(cache.Nil)

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.House{}, nil)
			},
			wantErr: failure.NotFound("house not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newHouseService(t)
			tt.setupMock(deps)

			res, err := svc.GetDetail(context.Background(), tt.houseID, tt.viewerID)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, failure.GetCode(tt.wantErr), failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.houseID, res.House.ID)
				assert.Equal(t, tt.wantOwner, res.IsOwner)
			}
		})
	}
}

func TestHouseService_UploadImage(t *testing.T) {
	uploadedURL := "https://cdn.example.com/house/img-1.jpg"

	t.Run("the stored object and the image row commit together", func(t *testing.T) {
		svc, deps := newHouseService(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.House{ID: "house-1", OwnerID: "owner-1"}, nil)

		deps.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uploadedURL, nil)

		deps.imageRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, image model.HouseImage) error {
				assert.Equal(t, "house-1", image.HouseID)
				assert.Equal(t, uploadedURL, image.URL)

				return nil
			})

		deps.repo.EXPECT().
			SetIndexImageTx(gomock.Any(), gomock.Any(), "house-1", uploadedURL).
			Return(nil)

		deps.cache.EXPECT().
			Delete(gomock.Any(), "houses:detail:house-1").
			Return(nil).
			AnyTimes()

		res, err := svc.UploadImage(context.Background(), "owner-1", "house-1", nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, uploadedURL, res.ImageURL)
	})

	t.Run("a failed cover assignment rolls the image row back", func(t *testing.T) {
		svc, deps := newHouseService(t)

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.House{ID: "house-1", OwnerID: "owner-1"}, nil)

		deps.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uploadedURL, nil)

		deps.imageRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		deps.repo.EXPECT().
			SetIndexImageTx(gomock.Any(), gomock.Any(), "house-1", uploadedURL).
			Return(errors.New("database error"))

		_, err := svc.UploadImage(context.Background(), "owner-1", "house-1", nil, nil)

		assert.Error(t, err)
	})
}

func TestHouseService_UploadImage_OwnershipGuards(t *testing.T) {
	tests := []struct {
		name      string
		ownerID   string
		setupMock func(deps houseServiceMocks)
		wantCode  int
	}{
		{
			name:    "non owner is forbidden",
			ownerID: "stranger-1",
			setupMock: func(deps houseServiceMocks) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.House{ID: "house-1", OwnerID: "owner-1"}, nil)
			},
			wantCode: failure.GetCode(failure.Forbidden("")),
		},
		{
			name:    "unknown house is not found",
			ownerID: "owner-1",
			setupMock: func(deps houseServiceMocks) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.House{}, nil)
			},
			wantCode: failure.GetCode(failure.NotFound("")),
		},
		{
			name:    "store failure surfaces an error",
			ownerID: "owner-1",
			setupMock: func(deps houseServiceMocks) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.House{}, errors.New("database error"))
			},
			wantCode: failure.GetCode(errors.New("database error")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newHouseService(t)
			tt.setupMock(deps)

			_, err := svc.UploadImage(context.Background(), tt.ownerID, "house-1", nil, nil)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
