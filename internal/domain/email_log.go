package domain

import "time"

type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "SENT"
	DeliveryFailed  DeliveryStatus = "FAILED"
	DeliveryDropped DeliveryStatus = "DROPPED"
)

// EmailLog records what happened to one notification event on the mail side.
type EmailLog struct {
	EventID       string         `json:"eventId" bson:"eventId"`
	Kind          string         `json:"kind" bson:"kind"`
	Recipient     string         `json:"recipient" bson:"recipient"`
	Subject       string         `json:"subject" bson:"subject"`
	TransactionID int64          `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Status        DeliveryStatus `json:"status" bson:"status"`
	Error         string         `json:"error,omitempty" bson:"error,omitempty"`
	ProcessedAt   time.Time      `json:"processedAt" bson:"processedAt"`
}
