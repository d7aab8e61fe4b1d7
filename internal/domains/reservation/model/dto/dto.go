package dto

import (
	"time"

	"github.com/google/uuid"

	"homestay/internal/domains/reservation/model"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"
)

const (
	DecideActionAccept = "accept"
	DecideActionReject = "reject"
)

type CreateReservationRequest struct {
	HouseID   string `json:"house_id"   validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
}

func NewReservation(guestID, houseID string, begin, end time.Time, nightlyPrice int64) model.Reservation {
	nights := model.NightCount(begin, end)

	return model.Reservation{
		ID:           uuid.NewString(),
		HouseID:      houseID,
		GuestID:      guestID,
		BeginDate:    begin,
		EndDate:      end,
		Nights:       nights,
		NightlyPrice: nightlyPrice,
		Amount:       nightlyPrice * int64(nights),
		Status:       model.StatusWaitAccept,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}
}

type CreateReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	Amount        int64  `json:"amount"`
}

type DecideReservationRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
	Reason string `json:"reason" validate:"omitempty,max=512"`
}

type CommentReservationRequest struct {
	Comment string `json:"comment" validate:"required,max=512"`
}

type ReservationResponse struct {
	ID           string `json:"id"`
	HouseID      string `json:"house_id"`
	GuestID      string `json:"guest_id"`
	BeginDate    string `json:"begin_date"`
	EndDate      string `json:"end_date"`
	Nights       int    `json:"nights"`
	NightlyPrice int64  `json:"nightly_price"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"created_at"`
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.HouseID = mod.HouseID
	r.GuestID = mod.GuestID
	r.BeginDate = mod.BeginDate.Format("2006-01-02")
	r.EndDate = mod.EndDate.Format("2006-01-02")
	r.Nights = mod.Nights
	r.NightlyPrice = mod.NightlyPrice
	r.Amount = mod.Amount
	r.Status = string(mod.Status)
	r.CreatedAt = timezone.Format(mod.CreatedAt, "2006-01-02 15:04")

	if mod.Comment != nil {
		r.Comment = *mod.Comment
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
