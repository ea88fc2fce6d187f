package api

import (
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/planes"
	"github.com/gin-gonic/gin"
)

type PlaneHandler struct {
	service planes.PlaneUseCase
}

func NewPlaneHandler(service planes.PlaneUseCase) *PlaneHandler {
	return &PlaneHandler{service: service}
}

func (h *PlaneHandler) Register(router *gin.RouterGroup) {
	router.GET("/all", h.list)
	router.GET("/id", h.get)
	router.GET("/name", h.search)
	router.POST("", h.create)
	router.PUT("", h.update)
	router.PUT("/list", h.updateMany)
	router.DELETE("", h.delete)
}

func (h *PlaneHandler) list(c *gin.Context) {
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

func (h *PlaneHandler) get(c *gin.Context) {
	id, err := requiredID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	plane, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, plane)
}

func (h *PlaneHandler) search(c *gin.Context) {
	page, err := pageRequest(c)
	if err != nil {
		fail(c, err)
		return
	}
	items, err := h.service.Search(c.Request.Context(), domain.PlaneFilter{Name: c.Query("name")}, page)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *PlaneHandler) create(c *gin.Context) {
	var plane domain.Plane
	if err := bindJSON(c, &plane); err != nil {
		fail(c, err)
		return
	}
	plane.ResetForCreate()
	if err := h.service.Save(c.Request.Context(), &plane); err != nil {
		fail(c, err)
		return
	}
	created(c, plane)
}

func (h *PlaneHandler) update(c *gin.Context) {
	var plane domain.Plane
	if err := bindJSON(c, &plane); err != nil {
		fail(c, err)
		return
	}
	if plane.IsNew() {
		fail(c, fmt.Errorf("%w: id is required to update a plane", domain.ErrValidation))
		return
	}
	if err := h.service.Save(c.Request.Context(), &plane); err != nil {
		fail(c, err)
		return
	}
	ok(c, plane)
}

func (h *PlaneHandler) updateMany(c *gin.Context) {
	var items []domain.Plane
	if err := bindJSON(c, &items); err != nil {
		fail(c, err)
		return
	}
	result := h.service.EditMany(c.Request.Context(), items)
	partial(c, result, result.HasFailures())
}

func (h *PlaneHandler) delete(c *gin.Context) {
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
