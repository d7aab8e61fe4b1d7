package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/internal/domains/area/model"
	"homestay/internal/domains/area/model/dto"
	"homestay/internal/domains/area/repository"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
)

const (
	cacheGetAllAreas = "areas:all"
)

type Area interface {
	GetAll(ctx context.Context) (dto.GetAreasResponse, error)
}

type serviceImpl struct {
	repo  repository.Area
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Area, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Area {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll serves the area list from the cache, repopulating it on a miss.
// The data set is small and immutable, so one fixed key with a long TTL
// is enough.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetAreasResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllAreas")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllAreas, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllAreas).Msg("cache hit for areas")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}

	areas, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get areas")

		return res, fmt.Errorf("failed to get areas: %w", err)
	}

	res.FromModels(areas)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllAreas, res, s.cfg.Cache.AreaTTL); err != nil {
			log.Error().Err(err).Msg("failed to save areas to cache")
		}
	}()

	return res, nil
}
