package domain

import (
	"fmt"
	"time"
)

type FlightStatus string

const (
	FlightStatusOpen      FlightStatus = "OPEN"
	FlightStatusClosed    FlightStatus = "CLOSED"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusCompleted FlightStatus = "COMPLETED"
)

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightStatusOpen, FlightStatusClosed, FlightStatusDelayed, FlightStatusCancelled, FlightStatusCompleted:
		return true
	}
	return false
}

type Flight struct {
	Record
	Name          string       `json:"name" validate:"required,max=100"`
	PlaneID       int64        `json:"planeId" validate:"required,gt=0"`
	StartTime     time.Time    `json:"startTime" validate:"required"`
	EndTime       time.Time    `json:"endTime" validate:"required"`
	Status        FlightStatus `json:"status" validate:"required,oneof=OPEN CLOSED DELAYED CANCELLED COMPLETED"`
	Departure     string       `json:"departure" validate:"required"`
	DepartureCode string       `json:"departureCode" validate:"required,max=8"`
	Arrival       string       `json:"arrival" validate:"required"`
	ArrivalCode   string       `json:"arrivalCode" validate:"required,max=8"`
	Gate          string       `json:"gate" validate:"required,max=16"`
}

// CheckSchedule enforces StartTime < EndTime.
func (f *Flight) CheckSchedule() error {
	if !f.StartTime.Before(f.EndTime) {
		return fmt.Errorf("%w: flight start time must be before end time", ErrValidation)
	}
	return nil
}

// Shift moves both ends of the schedule by d.
func (f *Flight) Shift(d time.Duration) {
	f.StartTime = f.StartTime.Add(d)
	f.EndTime = f.EndTime.Add(d)
}

// FlightFilter narrows a flight search. Zero-valued fields do not constrain
// the result.
type FlightFilter struct {
	Name      string
	Departure string
	Arrival   string
	From      *time.Time
	To        *time.Time
}

// FlightDelay is one entry of a flight's delay history.
type FlightDelay struct {
	FlightID      int64     `json:"flightId" bson:"flightId"`
	Minutes       int       `json:"delayMinutes" bson:"delayMinutes"`
	Reason        string    `json:"reason" bson:"reason"`
	PreviousStart time.Time `json:"previousStart" bson:"previousStart"`
	NewStart      time.Time `json:"newStart" bson:"newStart"`
	DelayedBy     string    `json:"delayedBy,omitempty" bson:"delayedBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
