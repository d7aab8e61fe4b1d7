package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/reservation/model"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	gRepo "homestay/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	HasConflictTx(ctx context.Context, tx *sqlx.Tx, houseID string, begin, end time.Time) (bool, error)
	ConflictingHouseIDs(ctx context.Context, begin, end *time.Time) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Two inclusive ranges overlap when each one starts before the other ends.
// Rejected reservations never block a range.
const conflictQuery = `SELECT EXISTS(
	SELECT 1 FROM reservations
	WHERE house_id = :house_id
	AND begin_date <= :end_date
	AND end_date >= :begin_date
	AND status != :rejected
)`

// HasConflictTx runs the overlap predicate inside the booking transaction so
// the re-check sees writes serialized by the house row lock.
func (repo *repositoryImpl) HasConflictTx(ctx context.Context, tx *sqlx.Tx, houseID string, begin, end time.Time) (exist bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.HasConflictTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery)

	prepare, err := tx.PrepareNamedContext(ctx, conflictQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check reservation conflict: %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &exist, conflictArgs(houseID, begin, end))
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check reservation conflict: %w", err)
	}

	return exist, nil
}

func conflictArgs(houseID string, begin, end time.Time) map[string]any {
	return map[string]any{
		"house_id":   houseID,
		"begin_date": begin,
		"end_date":   end,
		"rejected":   model.StatusRejected,
	}
}

// ConflictingHouseIDs returns the houses with any non-rejected reservation
// overlapping the requested range. A nil bound leaves that side open, so a
// partial date filter still excludes conflicting houses.
func (repo *repositoryImpl) ConflictingHouseIDs(ctx context.Context, begin, end *time.Time) (houseIDs []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ConflictingHouseIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "SELECT DISTINCT house_id FROM reservations WHERE status != :rejected"
	args := map[string]any{"rejected": model.StatusRejected}

	if end != nil {
		query += " AND begin_date <= :end_date"
		args["end_date"] = *end
	}

	if begin != nil {
		query += " AND end_date >= :begin_date"
		args["begin_date"] = *begin
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get conflicting houses: %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &houseIDs, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get conflicting houses: %w", err)
	}

	return houseIDs, nil
}
