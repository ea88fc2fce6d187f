package notification

import (
	"time"

	"github.com/Domenick1991/airops/internal/domain"
)

type Kind string

const (
	KindFlightDelayed Kind = "flight_delayed"
	KindBookingLate   Kind = "booking_late"
	KindPasswordReset Kind = "password_reset"
)

// Event is the message published on the notifications topic and consumed by
// the mail worker.
type Event struct {
	ID                string                   `json:"id"`
	Kind              Kind                     `json:"kind"`
	OccurredAt        time.Time                `json:"occurred_at"`
	Recipient         Recipient                `json:"recipient"`
	TransactionID     int64                    `json:"transaction_id,omitempty"`
	TransactionStatus domain.TransactionStatus `json:"transaction_status,omitempty"`
	Flight            *FlightSummary           `json:"flight,omitempty"`
	Seat              string                   `json:"seat,omitempty"`
	TemporaryPassword string                   `json:"temporary_password,omitempty"`
}

type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type FlightSummary struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Departure     string    `json:"departure"`
	DepartureCode string    `json:"departure_code"`
	Arrival       string    `json:"arrival"`
	ArrivalCode   string    `json:"arrival_code"`
	Gate          string    `json:"gate"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// KindFor maps a transaction status to the notification sent for it.
func KindFor(status domain.TransactionStatus) (Kind, bool) {
	switch status {
	case domain.TransactionStatusDelay:
		return KindFlightDelayed, true
	case domain.TransactionStatusLate:
		return KindBookingLate, true
	}
	return "", false
}

func summarize(f *domain.Flight) *FlightSummary {
	if f == nil {
		return nil
	}
	return &FlightSummary{
		ID:            f.ID,
		Name:          f.Name,
		Departure:     f.Departure,
		DepartureCode: f.DepartureCode,
		Arrival:       f.Arrival,
		ArrivalCode:   f.ArrivalCode,
		Gate:          f.Gate,
		StartTime:     f.StartTime,
		EndTime:       f.EndTime,
	}
}
