package api

import (
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/seats"
	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	service seats.SeatUseCase
}

func NewSeatHandler(service seats.SeatUseCase) *SeatHandler {
	return &SeatHandler{service: service}
}

func (h *SeatHandler) Register(router *gin.RouterGroup) {
	router.GET("/all", h.list)
	router.GET("/id", h.get)
	router.GET("/conditions", h.search)
	router.GET("/plane", h.byPlane)
	router.POST("", h.create)
	router.PUT("", h.update)
	router.PUT("/list", h.updateMany)
	router.DELETE("", h.delete)
}

func (h *SeatHandler) list(c *gin.Context) {
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

func (h *SeatHandler) get(c *gin.Context) {
	id, err := requiredID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	seat, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, seat)
}

func (h *SeatHandler) search(c *gin.Context) {
	page, err := pageRequest(c)
	if err != nil {
		fail(c, err)
		return
	}
	window, err := optionalBool(c, "haveWindow")
	if err != nil {
		fail(c, err)
		return
	}
	filter := domain.SeatFilter{Name: c.Query("name"), HaveWindow: window}
	if raw := c.Query("planeId"); raw != "" {
		if filter.PlaneID, err = parseID("planeId", raw); err != nil {
			fail(c, err)
			return
		}
	}
	items, err := h.service.Search(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

// byPlane lists the seat map of one plane.
func (h *SeatHandler) byPlane(c *gin.Context) {
	planeID, err := requiredID(c, "planeId")
	if err != nil {
		fail(c, err)
		return
	}
	page, err := domain.NewPageRequest(0, domain.MaxPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	items, err := h.service.Search(c.Request.Context(), domain.SeatFilter{PlaneID: planeID}, page)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *SeatHandler) create(c *gin.Context) {
	var seat domain.Seat
	if err := bindJSON(c, &seat); err != nil {
		fail(c, err)
		return
	}
	seat.ResetForCreate()
	if err := h.service.Save(c.Request.Context(), &seat); err != nil {
		fail(c, err)
		return
	}
	created(c, seat)
}

func (h *SeatHandler) update(c *gin.Context) {
	var seat domain.Seat
	if err := bindJSON(c, &seat); err != nil {
		fail(c, err)
		return
	}
	if seat.IsNew() {
		fail(c, fmt.Errorf("%w: id is required to update a seat", domain.ErrValidation))
		return
	}
	if err := h.service.Save(c.Request.Context(), &seat); err != nil {
		fail(c, err)
		return
	}
	ok(c, seat)
}

func (h *SeatHandler) updateMany(c *gin.Context) {
	var items []domain.Seat
	if err := bindJSON(c, &items); err != nil {
		fail(c, err)
		return
	}
	result := h.service.EditMany(c.Request.Context(), items)
	partial(c, result, result.HasFailures())
}

func (h *SeatHandler) delete(c *gin.Context) {
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
