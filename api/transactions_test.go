package api

import (
	"net/http"
	"testing"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransactionHandler_byFlight(t *testing.T) {
	mockService := &MockTransactionUseCase{}
	handler := NewTransactionHandler(mockService, &MockLifecycleUseCase{})
	c, w := newTestContext("GET", "/api/v1/transaction/flight?flightId=3", "")

	mockService.On("FindByFlight", mock.Anything, int64(3)).
		Return([]domain.Transaction{{Record: domain.Record{ID: 1}, FlightID: 3, Status: domain.TransactionStatusAccepted}}, nil)

	handler.byFlight(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTransactionHandler_byStatus_Invalid(t *testing.T) {
	mockService := &MockTransactionUseCase{}
	handler := NewTransactionHandler(mockService, &MockLifecycleUseCase{})
	c, w := newTestContext("GET", "/api/v1/transaction/status?statusEnum=LOST", "")

	mockService.On("FindByStatus", mock.Anything, domain.TransactionStatus("LOST")).
		Return([]domain.Transaction(nil), domain.ErrValidation)

	handler.byStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionHandler_search(t *testing.T) {
	mockService := &MockTransactionUseCase{}
	handler := NewTransactionHandler(mockService, &MockLifecycleUseCase{})
	c, w := newTestContext("GET", "/api/v1/transaction/conditions?flightName=VN&status=LATE&pageSize=5", "")

	mockService.On("Search", mock.Anything, domain.TransactionFilter{FlightName: "VN", Status: domain.TransactionStatusLate},
		domain.PageRequest{Page: 0, Size: 5}).Return([]domain.Transaction{{Record: domain.Record{ID: 2}}}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTransactionHandler_create_Conflict(t *testing.T) {
	mockService := &MockTransactionUseCase{}
	handler := NewTransactionHandler(mockService, &MockLifecycleUseCase{})
	c, w := newTestContext("POST", "/api/v1/transaction", `{"flightId":1,"seatId":2}`)

	mockService.On("Save", mock.Anything, mock.AnythingOfType("*domain.Transaction")).Return(domain.ErrConflict)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decode(t, w).Status)
}

func TestTransactionHandler_sweepLate(t *testing.T) {
	engine := &MockLifecycleUseCase{}
	handler := NewTransactionHandler(&MockTransactionUseCase{}, engine)
	c, w := newTestContext("PUT", "/api/v1/transaction/lateTransaction", "")

	report := &lifecycle.Report{Operation: lifecycle.OperationLateSweep, Eligible: []int64{1, 2}, Updated: []int64{1, 2}}
	engine.On("SweepLate", mock.Anything).Return(report, nil)

	handler.sweepLate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"updated":[1,2]`)
	engine.AssertExpectations(t)
}

func TestTransactionHandler_notifyLate_PartialFailure(t *testing.T) {
	engine := &MockLifecycleUseCase{}
	handler := NewTransactionHandler(&MockTransactionUseCase{}, engine)
	c, w := newTestContext("GET", "/api/v1/transaction/sendLateNoti", "")

	report := &lifecycle.Report{
		Operation: lifecycle.OperationNotifyLate,
		Eligible:  []int64{1, 2},
		Notified:  []int64{1},
		Failures:  []lifecycle.ItemFailure{{TransactionID: 2, Stage: lifecycle.StageNotify, Message: "no recipient"}},
	}
	engine.On("NotifyLate", mock.Anything).Return(report, nil)

	handler.notifyLate(c)

	assert.Equal(t, http.StatusMultiStatus, w.Code)
}
