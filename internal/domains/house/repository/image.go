package repository

//go:generate go run go.uber.org/mock/mockgen -source=./image.go -destination=../mocks/image_repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/house/model"
	gDto "homestay/shared/dto"
	gRepo "homestay/shared/repository"
)

type HouseImage interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.HouseImage) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HouseImage, error)
}

type imageRepositoryImpl struct {
	gRepo.Repository[model.HouseImage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewImage(db *postgres.Connection, otel otel.Otel) HouseImage {
	return &imageRepositoryImpl{
		Repository: gRepo.NewRepository[model.HouseImage](model.ImageEntityName, model.ImageTableName, model.ImageFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
