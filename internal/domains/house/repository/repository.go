package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/house/model"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	gRepo "homestay/shared/repository"
)

type House interface {
	Insert(ctx context.Context, model model.House) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.House, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.House, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	LockTx(ctx context.Context, tx *sqlx.Tx, houseID string) (bool, error)
	IncrementOrderCountTx(ctx context.Context, tx *sqlx.Tx, houseID string) error
	SetIndexImageTx(ctx context.Context, tx *sqlx.Tx, houseID, url string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.House]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) House {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.House](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockTx takes a row lock on the house so concurrent bookings of the same
// house serialize on it. Returns false when the house does not exist.
func (repo *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, houseID string) (found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".house.LockTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "SELECT id FROM houses WHERE id = $1 FOR UPDATE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var id string

	err = tx.GetContext(ctx, &id, query, houseID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to lock house row: %w", err)
	}

	return true, nil
}

func (repo *repositoryImpl) IncrementOrderCountTx(ctx context.Context, tx *sqlx.Tx, houseID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".house.IncrementOrderCountTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "UPDATE houses SET order_count = order_count + 1 WHERE id = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, houseID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to increment house order count: %w", err)
	}

	return nil
}

// SetIndexImageTx sets the cover image only when none is set yet; later
// uploads leave it untouched.
func (repo *repositoryImpl) SetIndexImageTx(ctx context.Context, tx *sqlx.Tx, houseID, url string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".house.SetIndexImageTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "UPDATE houses SET index_image_url = $1 WHERE id = $2 AND index_image_url IS NULL"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, url, houseID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to set house index image: %w", err)
	}

	return nil
}
