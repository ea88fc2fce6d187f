package lifecycle

import "github.com/Domenick1991/airops/internal/domain"

type Operation string

const (
	OperationLateSweep   Operation = "late_sweep"
	OperationDelayFlight Operation = "delay_flight"
	OperationNotifyLate  Operation = "notify_late"
)

type Stage string

const (
	StagePersist Stage = "persist"
	StageNotify  Stage = "notify"
)

// ItemFailure is one transaction that could not be fully processed. A notify
// failure means the status change was already stored.
type ItemFailure struct {
	TransactionID int64  `json:"transactionId"`
	Stage         Stage  `json:"stage"`
	Message       string `json:"error"`
	Err           error  `json:"-"`
}

// Report is the outcome of one lifecycle operation. Eligible holds the ids
// the operation attempted; Skipped holds ids it deliberately left alone.
type Report struct {
	Operation Operation     `json:"operation"`
	Eligible  []int64       `json:"eligible"`
	Updated   []int64       `json:"updated"`
	Notified  []int64       `json:"notified"`
	Skipped   []int64       `json:"skipped"`
	Failures  []ItemFailure `json:"failures"`
}

func newReport(op Operation) *Report {
	return &Report{
		Operation: op,
		Eligible:  []int64{},
		Updated:   []int64{},
		Notified:  []int64{},
		Skipped:   []int64{},
		Failures:  []ItemFailure{},
	}
}

func (r *Report) fail(tx *domain.Transaction, stage Stage, err error) {
	r.Failures = append(r.Failures, ItemFailure{TransactionID: tx.ID, Stage: stage, Message: err.Error(), Err: err})
}

func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}
