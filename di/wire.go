//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"homestay/config"
	"homestay/infras/jwt"
	"homestay/infras/kafka"
	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/infras/redis"
	"homestay/infras/s3"
	"homestay/permissions"
	"homestay/shared/cache"
	"homestay/transport/http"
	"homestay/transport/http/middleware"
	"homestay/transport/http/router"

	areaRepository "homestay/internal/domains/area/repository"
	areaService "homestay/internal/domains/area/service"
	authService "homestay/internal/domains/auth/service"
	houseRepository "homestay/internal/domains/house/repository"
	houseService "homestay/internal/domains/house/service"
	reservationRepository "homestay/internal/domains/reservation/repository"
	reservationService "homestay/internal/domains/reservation/service"
	userRepository "homestay/internal/domains/user/repository"
	userService "homestay/internal/domains/user/service"

	areaHandler "homestay/internal/handlers/area"
	authHandler "homestay/internal/handlers/auth"
	houseHandler "homestay/internal/handlers/house"
	reservationHandler "homestay/internal/handlers/reservation"
	userHandler "homestay/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var areaDomain = wire.NewSet(
	areaRepository.New,
	areaService.New,
)

var houseDomain = wire.NewSet(
	houseRepository.New,
	houseRepository.NewImage,
	houseService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	areaDomain,
	houseDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	areaHandler.New,
	houseHandler.New,
	reservationHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
