package lifecycle

import (
	"context"
	"sort"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
)

// memoryTransactions is an in-memory transaction store honouring the
// active-only contract of the repository.
type memoryTransactions struct {
	rows     map[int64]domain.Transaction
	failSave map[int64]error
	saves    int
}

func newMemoryTransactions(txs ...domain.Transaction) *memoryTransactions {
	m := &memoryTransactions{rows: map[int64]domain.Transaction{}, failSave: map[int64]error{}}
	for _, tx := range txs {
		m.rows[tx.ID] = tx
	}
	return m
}

func (m *memoryTransactions) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	out := []domain.Transaction{}
	for _, tx := range m.rows {
		if !tx.IsDeleted && keep(tx) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memoryTransactions) FindAllActive(_ context.Context, _ domain.PageRequest) ([]domain.Transaction, error) {
	return m.filter(func(domain.Transaction) bool { return true }), nil
}

func (m *memoryTransactions) FindByIDActive(_ context.Context, id int64) (*domain.Transaction, error) {
	tx, ok := m.rows[id]
	if !ok || tx.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return &tx, nil
}

func (m *memoryTransactions) ExistsByIDActive(ctx context.Context, id int64) (bool, error) {
	_, err := m.FindByIDActive(ctx, id)
	return err == nil, nil
}

func (m *memoryTransactions) FindByStatusActive(_ context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	return m.filter(func(tx domain.Transaction) bool { return tx.Status == status }), nil
}

func (m *memoryTransactions) FindByStatusDueBefore(_ context.Context, status domain.TransactionStatus, instant time.Time) ([]domain.Transaction, error) {
	return m.filter(func(tx domain.Transaction) bool {
		return tx.Status == status && tx.DueDate.Before(instant)
	}), nil
}

func (m *memoryTransactions) FindByFlightActive(_ context.Context, flightID int64) ([]domain.Transaction, error) {
	return m.filter(func(tx domain.Transaction) bool { return tx.FlightID == flightID }), nil
}

func (m *memoryTransactions) Search(_ context.Context, _ domain.TransactionFilter, _ domain.PageRequest) ([]domain.Transaction, error) {
	return m.filter(func(domain.Transaction) bool { return true }), nil
}

func (m *memoryTransactions) Save(_ context.Context, tx *domain.Transaction) error {
	m.saves++
	if err := m.failSave[tx.ID]; err != nil {
		return err
	}
	m.rows[tx.ID] = *tx
	return nil
}

func (m *memoryTransactions) status(id int64) domain.TransactionStatus {
	return m.rows[id].Status
}
