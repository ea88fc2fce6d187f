package lifecycle

import "github.com/Domenick1991/airops/internal/domain"

// transitions lists the statuses each status may move to. COMPLETED and
// CANCELLED are terminal. DELAY may be re-applied when a flight slips again.
var transitions = map[domain.TransactionStatus][]domain.TransactionStatus{
	domain.TransactionStatusPending: {
		domain.TransactionStatusAccepted,
		domain.TransactionStatusCancelled,
		domain.TransactionStatusDelay,
	},
	domain.TransactionStatusAccepted: {
		domain.TransactionStatusLate,
		domain.TransactionStatusDelay,
		domain.TransactionStatusCompleted,
		domain.TransactionStatusCancelled,
	},
	domain.TransactionStatusLate: {
		domain.TransactionStatusDelay,
		domain.TransactionStatusCompleted,
		domain.TransactionStatusCancelled,
	},
	domain.TransactionStatusDelay: {
		domain.TransactionStatusDelay,
		domain.TransactionStatusAccepted,
		domain.TransactionStatusCompleted,
		domain.TransactionStatusCancelled,
	},
}

// CanTransition reports whether a transaction in status from may move to to.
func CanTransition(from, to domain.TransactionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
