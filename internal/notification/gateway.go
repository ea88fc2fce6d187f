// Package notification publishes user notifications to the message broker.
// Delivery to the user happens in the mail worker.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/metrics"
	"github.com/google/uuid"
)

var (
	ErrNoRecipient = errors.New("transaction has no recipient")
	ErrUnsupported = errors.New("no notification for transaction status")
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// KafkaGateway is created once at startup and shared. Each call publishes one
// event synchronously and returns the broker's error.
type KafkaGateway struct {
	producer Producer
	topic    string
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

type Option func(*KafkaGateway)

func WithLogger(log logger.Logger) Option {
	return func(g *KafkaGateway) {
		g.log = log
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(g *KafkaGateway) {
		g.metrics = m
	}
}

func NewKafkaGateway(producer Producer, topic string, opts ...Option) *KafkaGateway {
	g := &KafkaGateway{producer: producer, topic: topic, log: logger.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Notify publishes the notification matching the transaction's status,
// keyed by transaction id.
func (g *KafkaGateway) Notify(ctx context.Context, tx *domain.Transaction) error {
	if !tx.HasRecipient() {
		return ErrNoRecipient
	}
	kind, ok := KindFor(tx.Status)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupported, tx.Status)
	}

	event := g.newEvent(kind, tx.User)
	event.TransactionID = tx.ID
	event.TransactionStatus = tx.Status
	event.Flight = summarize(tx.Flight)
	if tx.Seat != nil {
		event.Seat = tx.Seat.Name
	}
	return g.publish(ctx, strconv.FormatInt(tx.ID, 10), event)
}

// NotifyPasswordReset sends the temporary password to the user's address.
func (g *KafkaGateway) NotifyPasswordReset(ctx context.Context, user *domain.User, temporaryPassword string) error {
	if user == nil || user.Email == "" {
		return ErrNoRecipient
	}
	event := g.newEvent(KindPasswordReset, user)
	event.TemporaryPassword = temporaryPassword
	return g.publish(ctx, user.Email, event)
}

func (g *KafkaGateway) newEvent(kind Kind, user *domain.User) Event {
	return Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		OccurredAt: g.now().UTC(),
		Recipient:  Recipient{Email: user.Email, Name: user.Name},
	}
}

func (g *KafkaGateway) publish(ctx context.Context, key string, event Event) error {
	if err := g.producer.Publish(ctx, g.topic, key, event); err != nil {
		g.count(event.Kind, "failed")
		return fmt.Errorf("publish %s notification: %w", event.Kind, err)
	}
	g.count(event.Kind, "published")
	g.log.Debug("notification published", "event_id", event.ID, "kind", event.Kind, "key", key)
	return nil
}

func (g *KafkaGateway) count(kind Kind, result string) {
	if g.metrics == nil {
		return
	}
	g.metrics.NotificationsSent.WithLabelValues(string(kind), result).Inc()
}
