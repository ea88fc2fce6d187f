package domain

import "time"

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusAccepted  TransactionStatus = "ACCEPTED"
	TransactionStatusLate      TransactionStatus = "LATE"
	TransactionStatusDelay     TransactionStatus = "DELAY"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusAccepted, TransactionStatusLate,
		TransactionStatusDelay, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	}
	return false
}

// Transaction is a booking joining an optional user to a flight and a seat.
// User, Flight and Seat are read-side summaries filled in by the repository;
// writes only look at the id columns.
type Transaction struct {
	Record
	UserID   *int64            `json:"userId,omitempty" validate:"omitempty,gt=0"`
	FlightID int64             `json:"flightId" validate:"required,gt=0"`
	SeatID   int64             `json:"seatId" validate:"required,gt=0"`
	Status   TransactionStatus `json:"status" validate:"required,oneof=PENDING ACCEPTED LATE DELAY COMPLETED CANCELLED"`
	DueDate  time.Time         `json:"dueDate"`

	User   *User   `json:"user,omitempty" validate:"-"`
	Flight *Flight `json:"flight,omitempty" validate:"-"`
	Seat   *Seat   `json:"seat,omitempty" validate:"-"`
}

// HasRecipient reports whether an active user is attached to the booking.
func (t *Transaction) HasRecipient() bool {
	return t.User != nil && t.User.Email != ""
}

// TransactionFilter narrows a transaction search. Created bounds are inclusive;
// an empty Status matches any.
type TransactionFilter struct {
	FlightName  string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Status      TransactionStatus
}
