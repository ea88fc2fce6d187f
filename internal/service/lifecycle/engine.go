// Package lifecycle owns the automated status transitions of transactions and
// the notifications that go with them.
package lifecycle

import (
	"context"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/metrics"
	"github.com/Domenick1991/airops/internal/repository"
)

// Notifier delivers a notification about a transaction. It is called once per
// qualifying transaction, after the status change has been stored.
type Notifier interface {
	Notify(ctx context.Context, tx *domain.Transaction) error
}

type LifecycleUseCase interface {
	SweepLate(ctx context.Context) (*Report, error)
	DelayFlight(ctx context.Context, flightID int64) (*Report, error)
	NotifyLate(ctx context.Context) (*Report, error)
}

type Engine struct {
	transactions repository.TransactionRepository
	notifier     Notifier
	log          logger.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

type Option func(*Engine)

func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(transactions repository.TransactionRepository, notifier Notifier, opts ...Option) *Engine {
	e := &Engine{
		transactions: transactions,
		notifier:     notifier,
		log:          logger.NewNop(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SweepLate moves every active ACCEPTED transaction whose due date has passed
// to LATE. It has no side effects besides the stored status, so running it
// again right away finds nothing.
func (e *Engine) SweepLate(ctx context.Context) (*Report, error) {
	report := newReport(OperationLateSweep)
	due, err := e.transactions.FindByStatusDueBefore(ctx, domain.TransactionStatusAccepted, e.now())
	if err != nil {
		return nil, err
	}

	for i := range due {
		tx := &due[i]
		report.Eligible = append(report.Eligible, tx.ID)
		if e.persist(ctx, report, tx, domain.TransactionStatusLate) {
			e.count(report.Operation, "updated")
		}
	}

	e.done(report)
	return report, nil
}

// DelayFlight marks the transactions of a flight as DELAY and notifies their
// users. Transactions without a user, or in a status that cannot become
// DELAY, are skipped. A notification failure leaves the stored DELAY in place.
func (e *Engine) DelayFlight(ctx context.Context, flightID int64) (*Report, error) {
	report := newReport(OperationDelayFlight)
	txs, err := e.transactions.FindByFlightActive(ctx, flightID)
	if err != nil {
		return nil, err
	}

	for i := range txs {
		tx := &txs[i]
		if !tx.HasRecipient() || !CanTransition(tx.Status, domain.TransactionStatusDelay) {
			report.Skipped = append(report.Skipped, tx.ID)
			e.count(report.Operation, "skipped")
			continue
		}
		report.Eligible = append(report.Eligible, tx.ID)
		if !e.persist(ctx, report, tx, domain.TransactionStatusDelay) {
			continue
		}
		e.count(report.Operation, "updated")
		e.notify(ctx, report, tx)
	}

	e.done(report, "flight_id", flightID)
	return report, nil
}

// NotifyLate sends a reminder for every active LATE transaction that has a
// user. Statuses are not changed.
func (e *Engine) NotifyLate(ctx context.Context) (*Report, error) {
	report := newReport(OperationNotifyLate)
	late, err := e.transactions.FindByStatusActive(ctx, domain.TransactionStatusLate)
	if err != nil {
		return nil, err
	}

	for i := range late {
		tx := &late[i]
		if !tx.HasRecipient() {
			report.Skipped = append(report.Skipped, tx.ID)
			e.count(report.Operation, "skipped")
			continue
		}
		report.Eligible = append(report.Eligible, tx.ID)
		e.notify(ctx, report, tx)
	}

	e.done(report)
	return report, nil
}

func (e *Engine) persist(ctx context.Context, report *Report, tx *domain.Transaction, status domain.TransactionStatus) bool {
	previous := tx.Status
	tx.Status = status
	if err := e.transactions.Save(ctx, tx); err != nil {
		tx.Status = previous
		report.fail(tx, StagePersist, err)
		e.count(report.Operation, "persist_failed")
		e.log.Error("failed to store transaction status",
			"operation", report.Operation, "transaction_id", tx.ID, "status", status, "error", err)
		return false
	}
	report.Updated = append(report.Updated, tx.ID)
	return true
}

func (e *Engine) notify(ctx context.Context, report *Report, tx *domain.Transaction) {
	if err := e.notifier.Notify(ctx, tx); err != nil {
		report.fail(tx, StageNotify, err)
		e.count(report.Operation, "notify_failed")
		e.log.Warn("failed to notify user",
			"operation", report.Operation, "transaction_id", tx.ID, "error", err)
		return
	}
	report.Notified = append(report.Notified, tx.ID)
	e.count(report.Operation, "notified")
}

func (e *Engine) count(op Operation, outcome string) {
	if e.metrics == nil {
		return
	}
	e.metrics.LifecycleItems.WithLabelValues(string(op), outcome).Inc()
}

func (e *Engine) done(report *Report, keysAndValues ...interface{}) {
	fields := append([]interface{}{
		"operation", report.Operation,
		"eligible", len(report.Eligible),
		"updated", len(report.Updated),
		"notified", len(report.Notified),
		"skipped", len(report.Skipped),
		"failed", len(report.Failures),
	}, keysAndValues...)
	e.log.Info("lifecycle operation finished", fields...)
}

var _ LifecycleUseCase = (*Engine)(nil)
