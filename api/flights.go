package api

import (
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

// Register mounts the flight routes. Mutating routes that fan out to
// bookings require the admin role.
func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/all", h.list)
	router.GET("/id", h.get)
	router.GET("/status", h.byStatus)
	router.GET("/conditions", h.search)
	router.POST("", h.create)
	router.PUT("", h.update)
	router.PUT("/list", h.updateMany)
	router.DELETE("", h.delete)
	router.PUT("/:id/delay", RequireAdmin(), h.delay)
	router.GET("/:id/delay-history", h.delayHistory)
}

func (h *FlightHandler) list(c *gin.Context) {
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

func (h *FlightHandler) get(c *gin.Context) {
	id, err := requiredID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	flight, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, flight)
}

func (h *FlightHandler) byStatus(c *gin.Context) {
	status := domain.FlightStatus(c.Query("statusEnum"))
	items, err := h.service.FindByStatus(c.Request.Context(), status)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *FlightHandler) search(c *gin.Context) {
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
	filter := domain.FlightFilter{
		Name:      c.Query("flightName"),
		Departure: c.Query("departure"),
		Arrival:   c.Query("arrival"),
		From:      from,
		To:        to,
	}
	items, err := h.service.Search(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *FlightHandler) create(c *gin.Context) {
	var flight domain.Flight
	if err := bindJSON(c, &flight); err != nil {
		fail(c, err)
		return
	}
	flight.ResetForCreate()
	if err := h.service.Save(c.Request.Context(), &flight); err != nil {
		fail(c, err)
		return
	}
	created(c, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	var flight domain.Flight
	if err := bindJSON(c, &flight); err != nil {
		fail(c, err)
		return
	}
	if flight.IsNew() {
		fail(c, fmt.Errorf("%w: id is required to update a flight", domain.ErrValidation))
		return
	}
	if err := h.service.Save(c.Request.Context(), &flight); err != nil {
		fail(c, err)
		return
	}
	ok(c, flight)
}

func (h *FlightHandler) updateMany(c *gin.Context) {
	var items []domain.Flight
	if err := bindJSON(c, &items); err != nil {
		fail(c, err)
		return
	}
	result := h.service.EditMany(c.Request.Context(), items)
	partial(c, result, result.HasFailures())
}

func (h *FlightHandler) delete(c *gin.Context) {
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

func (h *FlightHandler) delay(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}
	var input flights.DelayInput
	if err := bindJSON(c, &input); err != nil {
		fail(c, err)
		return
	}
	input.FlightID = id
	result, err := h.service.Delay(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	partial(c, result, result.Report != nil && result.Report.HasFailures())
}

func (h *FlightHandler) delayHistory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}
	history, err := h.service.DelayHistory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, history)
}
