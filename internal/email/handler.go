package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/metrics"
	"github.com/Domenick1991/airops/internal/notification"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/segmentio/kafka-go"
)

// Handler turns notification events into emails and records each outcome.
type Handler struct {
	sender  Sender
	logs    repository.EmailLogRepository
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewHandler(sender Sender, logs repository.EmailLogRepository, log logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{sender: sender, logs: logs, log: log, metrics: m, now: time.Now}
}

// Handle processes one message from the notifications topic. Messages that
// cannot be decoded are dropped with an error. An event already logged as
// sent is skipped, so a redelivered message does not mail the recipient twice.
func (h *Handler) Handle(ctx context.Context, msg kafka.Message) error {
	var event notification.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.count("unknown", "malformed")
		return fmt.Errorf("decode notification at offset %d: %w", msg.Offset, err)
	}

	if h.alreadySent(ctx, event.ID) {
		h.count(string(event.Kind), "duplicate")
		h.log.Info("email already delivered, skipping", "event_id", event.ID, "kind", event.Kind)
		return nil
	}

	entry := &domain.EmailLog{
		EventID:       event.ID,
		Kind:          string(event.Kind),
		Recipient:     event.Recipient.Email,
		TransactionID: event.TransactionID,
	}

	sendErr := h.deliver(ctx, event, entry)
	entry.ProcessedAt = h.now().UTC()
	if sendErr != nil {
		entry.Error = sendErr.Error()
	}
	h.count(entry.Kind, string(entry.Status))

	if err := h.logs.Record(ctx, entry); err != nil {
		h.log.Error("failed to record email outcome", "event_id", event.ID, "error", err)
	}
	if sendErr != nil {
		return sendErr
	}
	h.log.Info("email delivered", "event_id", event.ID, "kind", event.Kind)
	return nil
}

func (h *Handler) alreadySent(ctx context.Context, eventID string) bool {
	if eventID == "" {
		return false
	}
	prev, err := h.logs.FindByEventID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("failed to look up email outcome", "event_id", eventID, "error", err)
		}
		return false
	}
	return prev.Status == domain.DeliverySent
}

func (h *Handler) deliver(ctx context.Context, event notification.Event, entry *domain.EmailLog) error {
	if event.Recipient.Email == "" {
		entry.Status = domain.DeliveryDropped
		return notification.ErrNoRecipient
	}
	msg, err := Render(event)
	if err != nil {
		entry.Status = domain.DeliveryDropped
		return err
	}
	entry.Subject = msg.Subject
	if err := h.sender.Send(ctx, msg); err != nil {
		entry.Status = domain.DeliveryFailed
		return err
	}
	entry.Status = domain.DeliverySent
	return nil
}

func (h *Handler) count(kind, result string) {
	if h.metrics == nil {
		return
	}
	h.metrics.EmailsDelivered.WithLabelValues(kind, result).Inc()
}
