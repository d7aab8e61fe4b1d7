package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"homestay/infras/otel"
	"homestay/internal/domains/reservation/model/dto"
	"homestay/internal/domains/reservation/service"
	"homestay/shared/constant"
	"homestay/shared/validator"
	"homestay/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Put("/{id}/decision", handler.DecideReservation)
		routerGroup.Put("/{id}/checkout", handler.CompleteStay)
		routerGroup.Put("/{id}/comment", handler.CommentReservation)
	})
}

// CreateReservation books a house for a date range.
// @Summary Create a reservation
// @Description Reserve a house for an inclusive date range at its current nightly price.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.CreateReservationResponse] "Reservation created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guestID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Create(ctx, guestID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created successfully by user " + guestID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetReservations lists reservations for either side of the marketplace.
// @Summary Get reservations
// @Description List reservations as a guest (default) or, with role=landlord, across all owned houses.
// @Tags Reservation
// @Produce json
// @Param role query string false "Perspective (guest or landlord)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Reservations"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	role := request.URL.Query().Get(constant.RequestParamRole)
	if role == constant.Empty {
		role = constant.RoleGuest
	}

	var (
		res dto.GetReservationsResponse
		err error
	)

	if role == constant.RoleLandlord {
		res, err = handler.service.ListForHost(ctx, userID)
	} else {
		res, err = handler.service.ListForGuest(ctx, userID)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DecideReservation accepts or rejects a pending reservation.
// @Summary Decide a reservation
// @Description Accept or reject a pending reservation on one of the owner's houses.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.DecideReservationRequest true "Decide Reservation Request"
// @Success 200 {object} response.Message "Reservation decided successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/decision [put]
// @Security BearerAuth
func (handler *Handler) DecideReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideReservation")
	defer scope.End()

	req := dto.DecideReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservationID := chi.URLParam(request, constant.RequestParamID)
	hostID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Decide(ctx, hostID, reservationID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decide reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation decided by user " + hostID)

	response.WithMessage(writer, http.StatusOK, "Reservation decided successfully")
}

// CompleteStay moves a paid reservation into its comment window.
// @Summary Complete a stay
// @Description Mark a paid reservation's stay as finished, opening the comment window.
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Stay completed successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/checkout [put]
// @Security BearerAuth
func (handler *Handler) CompleteStay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteStay")
	defer scope.End()

	reservationID := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.CompleteStay(ctx, reservationID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete stay")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Stay completed successfully")
}

// CommentReservation finishes a stay with the guest's comment.
// @Summary Comment on a completed stay
// @Description Leave the stay comment, completing the reservation and updating the house's booking count.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.CommentReservationRequest true "Comment Reservation Request"
// @Success 200 {object} response.Message "Comment saved successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/comment [put]
// @Security BearerAuth
func (handler *Handler) CommentReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CommentReservation")
	defer scope.End()

	req := dto.CommentReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservationID := chi.URLParam(request, constant.RequestParamID)
	guestID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Comment(ctx, guestID, reservationID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to comment on reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Stay comment saved by user " + guestID)

	response.WithMessage(writer, http.StatusOK, "Comment saved successfully")
}
