package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/infras/postgres"
	houseModel "homestay/internal/domains/house/model"
	houseRepo "homestay/internal/domains/house/repository"
	"homestay/internal/domains/reservation/model"
	"homestay/internal/domains/reservation/model/dto"
	"homestay/internal/domains/reservation/repository"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	gRepo "homestay/shared/repository"
	"homestay/shared/timezone"
)

const (
	cacheSearchHouses = "houses:search"
	cacheHouseDetail  = "houses:detail"
)

type Reservation interface {
	Create(ctx context.Context, guestID string, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	Decide(ctx context.Context, hostID, reservationID string, req dto.DecideReservationRequest) error
	Comment(ctx context.Context, guestID, reservationID string, req dto.CommentReservationRequest) error
	CompleteStay(ctx context.Context, reservationID string) error
	ListForGuest(ctx context.Context, guestID string) (dto.GetReservationsResponse, error)
	ListForHost(ctx context.Context, hostID string) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo      repository.Reservation
	houseRepo houseRepo.House
	db        postgres.TxRunner
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	houseRepository houseRepo.House,
	db postgres.TxRunner,
	cfg *config.Config,
	cacheStore cache.RedisCache,
	otl otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		houseRepo: houseRepository,
		db:        db,
		cfg:       cfg,
		cache:     cacheStore,
		otel:      otl,
	}
}

// Create books a house for an inclusive date range. The house row is locked
// and the overlap predicate re-checked inside the same transaction as the
// insert, so two guests racing for the same range cannot both commit.
func (s *serviceImpl) Create(ctx context.Context, guestID string, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	begin, err := time.Parse(constant.DateOnlyFormat, req.StartDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid start date") //nolint:wrapcheck
	}

	end, err := time.Parse(constant.DateOnlyFormat, req.EndDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid end date") //nolint:wrapcheck
	}

	if begin.After(end) {
		return res, failure.InvalidDateRangeParam
	}

	house, err := s.houseRepo.Get(ctx, shared.FilterByID(req.HouseID, houseModel.FieldID, houseModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get house")

		return res, fmt.Errorf("failed to get house: %w", err)
	}

	if house.ID == constant.Empty {
		return res, failure.NotFound("house not found") //nolint:wrapcheck
	}

	if house.OwnerID == guestID {
		return res, failure.Forbidden("cannot reserve your own house") //nolint:wrapcheck
	}

	reservation := dto.NewReservation(guestID, house.ID, begin, end, house.Price)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		found, err := s.houseRepo.LockTx(ctx, tx, house.ID)
		if err != nil {
			return fmt.Errorf("failed to lock house: %w", err)
		}

		if !found {
			return failure.NotFound("house not found") //nolint:wrapcheck
		}

		conflict, err := s.repo.HasConflictTx(ctx, tx, house.ID, begin, end)
		if err != nil {
			return fmt.Errorf("failed to check reservation conflict: %w", err)
		}

		if conflict {
			return failure.Conflict("house is already reserved for the requested dates") //nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, reservation); err != nil {
			return fmt.Errorf("failed to insert reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("house_id", house.ID).Msg("failed to create reservation")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchHouses)
	}()

	res.ReservationID = reservation.ID
	res.Amount = reservation.Amount

	return res, nil
}

// Decide lets the house owner accept or reject a pending reservation.
// Rejection requires a reason; it is stored in the comment field and the
// range is freed immediately.
func (s *serviceImpl) Decide(ctx context.Context, hostID, reservationID string, req dto.DecideReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DecideReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(reservationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	house, err := s.houseRepo.Get(ctx, shared.FilterByID(reservation.HouseID, houseModel.FieldID, houseModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get house")

		return fmt.Errorf("failed to get house: %w", err)
	}

	if house.OwnerID != hostID {
		return failure.Forbidden("only the house owner can decide a reservation") //nolint:wrapcheck
	}

	target := model.StatusWaitPayment
	update := reservationUpdate{}

	if req.Action == dto.DecideActionReject {
		if req.Reason == constant.Empty {
			return failure.BadRequestFromString("a rejection reason is required") //nolint:wrapcheck
		}

		target = model.StatusRejected
		update.Comment = req.Reason
	}

	if !model.CanTransition(reservation.Status, target) {
		return failure.InvalidState(fmt.Sprintf("reservation is %s, expected %s", reservation.Status, model.StatusWaitAccept)) //nolint:wrapcheck
	}

	update.Status = target

	err = s.repo.Update(ctx, shared.TransformFields(update, hostID), statusGuard(reservationID, model.StatusWaitAccept))
	if errors.Is(err, gRepo.ErrNoRowsUpdated) {
		return failure.InvalidState(fmt.Sprintf("reservation is no longer %s", model.StatusWaitAccept)) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if target == model.StatusRejected {
		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheSearchHouses)
		}()
	}

	return nil
}

// Comment finishes a stay: the status change, the comment, and the house
// booking counter commit in one transaction. The detail cache delete after
// commit is a required signal, but its failure is only logged.
func (s *serviceImpl) Comment(ctx context.Context, guestID, reservationID string, req dto.CommentReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CommentReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(reservationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if reservation.GuestID != guestID {
		return failure.Forbidden("only the reservation's guest can comment") //nolint:wrapcheck
	}

	if !model.CanTransition(reservation.Status, model.StatusComplete) {
		return failure.InvalidState(fmt.Sprintf("reservation is %s, expected %s", reservation.Status, model.StatusWaitComment)) //nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		update := reservationUpdate{Status: model.StatusComplete, Comment: req.Comment}

		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(update, guestID), statusGuard(reservationID, model.StatusWaitComment)); err != nil {
			return fmt.Errorf("failed to complete reservation: %w", err)
		}

		if err := s.houseRepo.IncrementOrderCountTx(ctx, tx, reservation.HouseID); err != nil {
			return fmt.Errorf("failed to increment house order count: %w", err)
		}

		return nil
	})
	if errors.Is(err, gRepo.ErrNoRowsUpdated) {
		return failure.InvalidState(fmt.Sprintf("reservation is no longer %s", model.StatusWaitComment)) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to complete reservation")

		return err
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheHouseDetail, reservation.HouseID)); err != nil {
		log.Error().Err(err).Str("house_id", reservation.HouseID).Msg("failed to delete house detail cache")
	}

	return nil
}

// CompleteStay moves a paid reservation into the comment window. Triggered by
// the external payment/stay flow, not by either party directly.
func (s *serviceImpl) CompleteStay(ctx context.Context, reservationID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteStay")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(reservationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if !model.CanTransition(reservation.Status, model.StatusWaitComment) {
		return failure.InvalidState(fmt.Sprintf("reservation is %s, expected %s", reservation.Status, model.StatusWaitPayment)) //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusWaitComment,
		constant.FieldModifiedAt: timezone.Now(),
	}

	err = s.repo.Update(ctx, updatedFields, statusGuard(reservationID, model.StatusWaitPayment))
	if errors.Is(err, gRepo.ErrNoRowsUpdated) {
		return failure.InvalidState(fmt.Sprintf("reservation is no longer %s", model.StatusWaitPayment)) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	return nil
}

func (s *serviceImpl) ListForGuest(ctx context.Context, guestID string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListGuestReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	reservations, err := s.repo.GetAll(ctx, params, shared.FilterByID(guestID, model.FieldGuestID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest reservations")

		return res, fmt.Errorf("failed to get guest reservations: %w", err)
	}

	res.FromModels(reservations)

	return res, nil
}

// ListForHost returns the reservations placed on any of the host's houses.
func (s *serviceImpl) ListForHost(ctx context.Context, hostID string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListHostReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	houses, err := s.houseRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(hostID, houseModel.FieldOwnerID, houseModel.TableName), houseModel.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get owned houses")

		return res, fmt.Errorf("failed to get owned houses: %w", err)
	}

	if len(houses) == 0 {
		res.FromModels(nil)

		return res, nil
	}

	houseIDs := make([]string, len(houses))
	for i, house := range houses {
		houseIDs[i] = house.ID
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHouseID,
				Operator: gDto.FilterOperatorIn,
				Value:    houseIDs,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	reservations, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get host reservations")

		return res, fmt.Errorf("failed to get host reservations: %w", err)
	}

	res.FromModels(reservations)

	return res, nil
}

// reservationUpdate carries the columns a lifecycle step may touch.
type reservationUpdate struct {
	Status  model.Status `db:"status"`
	Comment string       `db:"comment"`
}

// statusGuard narrows an update to a row still in the expected status; a
// concurrent transition leaves zero rows for the second writer. The guard
// binds its own arg name because the SET clause already binds :status.
func statusGuard(reservationID string, expected model.Status) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    reservationID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				ArgName:  "expected_status",
				Operator: gDto.FilterOperatorEq,
				Value:    expected,
				Table:    model.TableName,
			},
		},
	}
}
