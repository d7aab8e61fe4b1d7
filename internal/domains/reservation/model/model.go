package model

import (
	"time"

	"homestay/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldHouseID      = "house_id"
	FieldGuestID      = "guest_id"
	FieldBeginDate    = "begin_date"
	FieldEndDate      = "end_date"
	FieldNights       = "nights"
	FieldNightlyPrice = "nightly_price"
	FieldAmount       = "amount"
	FieldStatus       = "status"
	FieldComment      = "comment"
)

// Status is the reservation lifecycle state. Only the transitions listed in
// transitions are legal; everything else is rejected.
type Status string

const (
	StatusWaitAccept  Status = "WAIT_ACCEPT"
	StatusWaitPayment Status = "WAIT_PAYMENT"
	StatusWaitComment Status = "WAIT_COMMENT"
	StatusComplete    Status = "COMPLETE"
	StatusRejected    Status = "REJECTED"
)

var transitions = map[Status][]Status{
	StatusWaitAccept:  {StatusWaitPayment, StatusRejected},
	StatusWaitPayment: {StatusWaitComment},
	StatusWaitComment: {StatusComplete},
}

// CanTransition reports whether from -> to is a legal lifecycle step.
// COMPLETE and REJECTED are terminal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transitions exist for the status.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

type Reservation struct {
	ID           string    `db:"id"`
	HouseID      string    `db:"house_id"`
	GuestID      string    `db:"guest_id"`
	BeginDate    time.Time `db:"begin_date"`
	EndDate      time.Time `db:"end_date"`
	Nights       int       `db:"nights"`
	NightlyPrice int64     `db:"nightly_price"`
	Amount       int64     `db:"amount"`
	Status       Status    `db:"status"`
	Comment      *string   `db:"comment"`
	model.Metadata
}

// NightCount returns the billable nights for an inclusive date range.
func NightCount(begin, end time.Time) int {
	return int(end.Sub(begin).Hours()/24) + 1
}
