package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/infras/s3"
	areaModel "homestay/internal/domains/area/model"
	areaRepo "homestay/internal/domains/area/repository"
	"homestay/internal/domains/house/model"
	"homestay/internal/domains/house/model/dto"
	"homestay/internal/domains/house/repository"
	reservationModel "homestay/internal/domains/reservation/model"
	reservationRepo "homestay/internal/domains/reservation/repository"
	userModel "homestay/internal/domains/user/model"
	userRepo "homestay/internal/domains/user/repository"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
)

const (
	cacheSearchHouses = "houses:search"
	cacheHouseDetail  = "houses:detail"
)

type House interface {
	Create(ctx context.Context, ownerID string, req dto.CreateHouseRequest) (dto.CreateHouseResponse, error)
	ListMine(ctx context.Context, ownerID string) (dto.GetMyHousesResponse, error)
	Search(ctx context.Context, req dto.SearchHousesRequest) (dto.SearchHousesResponse, error)
	GetDetail(ctx context.Context, houseID, viewerID string) (dto.HouseDetailResponse, error)
	UploadImage(ctx context.Context, ownerID, houseID string, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo            repository.House
	imageRepo       repository.HouseImage
	areaRepo        areaRepo.Area
	reservationRepo reservationRepo.Reservation
	userRepo        userRepo.User
	db              postgres.TxRunner
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	s3              s3.S3
}

func New(
	repo repository.House,
	imageRepo repository.HouseImage,
	areaRepository areaRepo.Area,
	reservationRepository reservationRepo.Reservation,
	userRepository userRepo.User,
	db postgres.TxRunner,
	cfg *config.Config,
	cacheStore cache.RedisCache,
	otl otel.Otel,
	s3Client s3.S3,
) House {
	return &serviceImpl{
		repo:            repo,
		imageRepo:       imageRepo,
		areaRepo:        areaRepository,
		reservationRepo: reservationRepository,
		userRepo:        userRepository,
		db:              db,
		cfg:             cfg,
		cache:           cacheStore,
		otel:            otl,
		s3:              s3Client,
	}
}

func (s *serviceImpl) Create(ctx context.Context, ownerID string, req dto.CreateHouseRequest) (res dto.CreateHouseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHouse")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.MaxDays > 0 && req.MaxDays < req.MinDays {
		return res, failure.BadRequestFromString("max_days must not be below min_days") //nolint:wrapcheck
	}

	areaExists, err := s.areaRepo.Exist(ctx, shared.FilterByID(req.AreaID, areaModel.FieldID, areaModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if area exists")

		return res, fmt.Errorf("failed to check if area exists: %w", err)
	}

	if !areaExists {
		return res, failure.BadRequestFromString("area does not exist") //nolint:wrapcheck
	}

	house := req.ToModel(ownerID)

	if err = s.repo.Insert(ctx, house); err != nil {
		log.Error().Err(err).Msg("failed to create house")

		return res, fmt.Errorf("failed to create house: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchHouses)
	}()

	res.HouseID = house.ID

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context, ownerID string) (res dto.GetMyHousesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMyHouses")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	houses, err := s.repo.GetAll(ctx, params, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get owned houses")

		return res, fmt.Errorf("failed to get owned houses: %w", err)
	}

	res.FromModels(houses)

	return res, nil
}

// Search plans a listing query from the raw filters: houses with a conflicting
// reservation are excluded, the rest is filtered by area and ordered by the
// sort key. Result pages are cached per filter signature, one hash field per
// page, so a signature's pages expire together.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchHousesRequest) (res dto.SearchHousesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchHouses")
	defer scope.End()
	defer scope.TraceIfError(err)

	begin, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	page := parsePage(req.Page)
	sortBy, sortDir := sortPlan(req.SortKey)

	cacheKey := shared.BuildCacheKey(cacheSearchHouses, req.StartDate, req.EndDate, req.AreaID, req.SortKey)
	cacheField := strconv.Itoa(page)

	err = s.cache.GetField(ctx, cacheKey, cacheField, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Str("page", cacheField).Msg("cache hit for house search")

		return res, nil
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if req.AreaID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldAreaID,
			Operator: gDto.FilterOperatorEq,
			Value:    req.AreaID,
			Table:    model.TableName,
		})
	}

	if begin != nil || end != nil {
		conflicting, err := s.reservationRepo.ConflictingHouseIDs(ctx, begin, end)
		if err != nil {
			log.Error().Err(err).Msg("failed to get conflicting houses")

			return res, fmt.Errorf("failed to get conflicting houses: %w", err)
		}

		if len(conflicting) > 0 {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorNotIn,
				Value:    conflicting,
				Table:    model.TableName,
			})
		}
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count houses")

		return res, fmt.Errorf("failed to count houses: %w", err)
	}

	params := gDto.QueryParams{
		Page:    page,
		Limit:   s.cfg.App.SearchPageSize,
		SortBy:  sortBy,
		SortDir: sortDir,
	}

	houses, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search houses")

		return res, fmt.Errorf("failed to search houses: %w", err)
	}

	res.FromModels(houses, page, shared.CalculateTotalPage(total, s.cfg.App.SearchPageSize))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.SaveField(c, cacheKey, cacheField, res, s.cfg.Cache.SearchTTL); err != nil {
			log.Error().Err(err).Msg("failed to save house search page to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetDetail(ctx context.Context, houseID, viewerID string) (res dto.HouseDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHouseDetail")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheHouseDetail, houseID)

	var detail dto.HouseDetail

	err = s.cache.Get(ctx, cacheKey, &detail)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for house detail")

		res.House = detail
		res.IsOwner = viewerID != constant.Empty && viewerID == detail.OwnerID

		return res, nil
	}

	house, err := s.repo.Get(ctx, shared.FilterByID(houseID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get house")

		return res, fmt.Errorf("failed to get house: %w", err)
	}

	if house.ID == constant.Empty {
		return res, failure.NotFound("house not found") //nolint:wrapcheck
	}

	images, err := s.imageRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(houseID, model.ImageFieldHouseID, model.ImageTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get house images")

		return res, fmt.Errorf("failed to get house images: %w", err)
	}

	comments, err := s.listComments(ctx, houseID)
	if err != nil {
		return res, err
	}

	detail.FromModel(house, images, comments)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, detail, s.cfg.Cache.DetailTTL); err != nil {
			log.Error().Err(err).Msg("failed to save house detail to cache")
		}
	}()

	res.House = detail
	res.IsOwner = viewerID != constant.Empty && viewerID == house.OwnerID

	return res, nil
}

// listComments collects the comments left by completed stays, newest first.
func (s *serviceImpl) listComments(ctx context.Context, houseID string) ([]dto.HouseComment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldHouseID,
				Operator: gDto.FilterOperatorEq,
				Value:    houseID,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				Field:    reservationModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    reservationModel.StatusComplete,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				Field:    reservationModel.FieldComment,
				Operator: gDto.FilterIsNotNull,
				Table:    reservationModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: constant.FieldModifiedAt, SortDir: gDto.SortDirDesc}

	reservations, err := s.reservationRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get house comments")

		return nil, fmt.Errorf("failed to get house comments: %w", err)
	}

	if len(reservations) == 0 {
		return []dto.HouseComment{}, nil
	}

	guestIDs := make([]string, len(reservations))
	for i, reservation := range reservations {
		guestIDs[i] = reservation.GuestID
	}

	guestFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    guestIDs,
				Table:    userModel.TableName,
			},
		},
	}

	guests, err := s.userRepo.GetAll(ctx, gDto.QueryParams{}, guestFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get comment authors")

		return nil, fmt.Errorf("failed to get comment authors: %w", err)
	}

	namesByID := make(map[string]string, len(guests))
	for _, guest := range guests {
		namesByID[guest.ID] = guest.Name
	}

	comments := make([]dto.HouseComment, 0, len(reservations))

	for _, reservation := range reservations {
		if reservation.Comment == nil {
			continue
		}

		comments = append(comments, dto.HouseComment{
			Author:    namesByID[reservation.GuestID],
			Content:   *reservation.Comment,
			CreatedAt: dto.FormatCommentDate(reservation.ModifiedAt),
		})
	}

	return comments, nil
}

// UploadImage stores the object first; the image row and the one-time cover
// assignment then commit together, so a failed write leaves no dangling row.
func (s *serviceImpl) UploadImage(ctx context.Context, ownerID, houseID string, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadHouseImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	house, err := s.repo.Get(ctx, shared.FilterByID(houseID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get house")

		return res, fmt.Errorf("failed to get house: %w", err)
	}

	if house.ID == constant.Empty {
		return res, failure.NotFound("house not found") //nolint:wrapcheck
	}

	if house.OwnerID != ownerID {
		return res, failure.Forbidden("only the owner can add house images") //nolint:wrapcheck
	}

	image := dto.NewHouseImage(houseID, constant.Empty, ownerID)

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, file, fileHeader, image.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload house image to S3")

		return res, fmt.Errorf("failed to upload house image: %w", err)
	}

	image.URL = url

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.imageRepo.InsertTx(ctx, tx, image); err != nil {
			return fmt.Errorf("failed to insert house image: %w", err)
		}

		if err := s.repo.SetIndexImageTx(ctx, tx, houseID, url); err != nil {
			return fmt.Errorf("failed to set house index image: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save house image")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheHouseDetail, houseID)); err != nil {
			log.Error().Err(err).Msg("failed to delete house detail cache")
		}
	}()

	res.ImageURL = url

	return res, nil
}

func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var begin, finish *time.Time

	if start != "" {
		parsed, err := time.Parse(constant.DateOnlyFormat, start)
		if err != nil {
			return nil, nil, failure.BadRequestFromString("invalid start date") //nolint:wrapcheck
		}

		begin = &parsed
	}

	if end != "" {
		parsed, err := time.Parse(constant.DateOnlyFormat, end)
		if err != nil {
			return nil, nil, failure.BadRequestFromString("invalid end date") //nolint:wrapcheck
		}

		finish = &parsed
	}

	if begin != nil && finish != nil && begin.After(*finish) {
		return nil, nil, failure.InvalidDateRangeParam
	}

	return begin, finish, nil
}

// A page value that does not parse is not an error; the first page is served.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// An unknown sort key falls back to newest first, same as SortKeyNew.
func sortPlan(sortKey string) (sortBy, sortDir string) {
	switch sortKey {
	case constant.SortKeyBooking:
		return model.FieldOrderCount, gDto.SortDirDesc
	case constant.SortKeyPriceInc:
		return model.FieldPrice, gDto.SortDirAsc
	case constant.SortKeyPriceDesc:
		return model.FieldPrice, gDto.SortDirDesc
	case constant.SortKeyNew:
		return model.FieldCreatedAt, gDto.SortDirDesc
	default:
		return model.FieldCreatedAt, gDto.SortDirDesc
	}
}
