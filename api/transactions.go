package api

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/lifecycle"
	"github.com/Domenick1991/airops/internal/service/transactions"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	service   transactions.TransactionUseCase
	lifecycle lifecycle.LifecycleUseCase
}

func NewTransactionHandler(service transactions.TransactionUseCase, engine lifecycle.LifecycleUseCase) *TransactionHandler {
	return &TransactionHandler{service: service, lifecycle: engine}
}

func (h *TransactionHandler) Register(router *gin.RouterGroup) {
	router.GET("/all", h.list)
	router.GET("/id", h.get)
	router.GET("/status", h.byStatus)
	router.GET("/flight", h.byFlight)
	router.GET("/conditions", h.search)
	router.POST("", h.create)
	router.PUT("", h.update)
	router.PUT("/list", h.updateMany)
	router.DELETE("", h.delete)
	router.PUT("/lateTransaction", RequireAdmin(), h.sweepLate)
	router.GET("/sendLateNoti", RequireAdmin(), h.notifyLate)
}

func (h *TransactionHandler) list(c *gin.Context) {
	page, err := pageRequest(c)
	if err != nil {
		fail(c, err)
		return
	}
	items, err := h.service.FindAll(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *TransactionHandler) get(c *gin.Context) {
	id, err := requiredID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	tx, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, tx)
}

func (h *TransactionHandler) byStatus(c *gin.Context) {
	items, err := h.service.FindByStatus(c.Request.Context(), domain.TransactionStatus(c.Query("statusEnum")))
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *TransactionHandler) byFlight(c *gin.Context) {
	flightID, err := requiredID(c, "flightId")
	if err != nil {
		fail(c, err)
		return
	}
	items, err := h.service.FindByFlight(c.Request.Context(), flightID)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *TransactionHandler) search(c *gin.Context) {
	page, err := pageRequest(c)
	if err != nil {
		fail(c, err)
		return
	}
	from, err := timeBound(c, "dateFrom", false)
	if err != nil {
		fail(c, err)
		return
	}
	to, err := timeBound(c, "dateTo", true)
	if err != nil {
		fail(c, err)
		return
	}
	filter := domain.TransactionFilter{
		FlightName:  c.Query("flightName"),
		CreatedFrom: from,
		CreatedTo:   to,
		Status:      domain.TransactionStatus(c.Query("status")),
	}
	items, err := h.service.Search(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *TransactionHandler) create(c *gin.Context) {
	var tx domain.Transaction
	if err := bindJSON(c, &tx); err != nil {
		fail(c, err)
		return
	}
	tx.ResetForCreate()
	if err := h.service.Save(c.Request.Context(), &tx); err != nil {
		fail(c, err)
		return
	}
	created(c, tx)
}

func (h *TransactionHandler) update(c *gin.Context) {
	var tx domain.Transaction
	if err := bindJSON(c, &tx); err != nil {
		fail(c, err)
		return
	}
	if tx.IsNew() {
		fail(c, fmt.Errorf("%w: id is required to update a transaction", domain.ErrValidation))
		return
	}
	if err := h.service.Save(c.Request.Context(), &tx); err != nil {
		fail(c, err)
		return
	}
	ok(c, tx)
}

func (h *TransactionHandler) updateMany(c *gin.Context) {
	var items []domain.Transaction
	if err := bindJSON(c, &items); err != nil {
		fail(c, err)
		return
	}
	result := h.service.EditMany(c.Request.Context(), items)
	partial(c, result, result.HasFailures())
}

func (h *TransactionHandler) delete(c *gin.Context) {
	id, err := requiredID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}

func (h *TransactionHandler) sweepLate(c *gin.Context) {
	h.runLifecycle(c, h.lifecycle.SweepLate)
}

func (h *TransactionHandler) notifyLate(c *gin.Context) {
	h.runLifecycle(c, h.lifecycle.NotifyLate)
}

func (h *TransactionHandler) runLifecycle(c *gin.Context, run func(ctx context.Context) (*lifecycle.Report, error)) {
	report, err := run(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	partial(c, report, report.HasFailures())
}
