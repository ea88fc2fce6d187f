package api

import (
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/news"
	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	service news.NewsUseCase
}

func NewNewsHandler(service news.NewsUseCase) *NewsHandler {
	return &NewsHandler{service: service}
}

func (h *NewsHandler) Register(router *gin.RouterGroup) {
	router.GET("/all", h.list)
	router.GET("/id", h.get)
	router.GET("/title", h.byTitle)
	router.GET("/category", h.byCategory)
	router.POST("", h.create)
	router.PUT("", h.update)
	router.PUT("/list", h.updateMany)
	router.DELETE("", h.delete)
}

func (h *NewsHandler) list(c *gin.Context) {
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

func (h *NewsHandler) get(c *gin.Context) {
	id, err := requiredID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	item, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, item)
}

func (h *NewsHandler) byTitle(c *gin.Context) {
	h.search(c, domain.NewsFilter{Title: c.Query("title")})
}

func (h *NewsHandler) byCategory(c *gin.Context) {
	category := domain.NewsCategory(c.Query("category"))
	if category == "" {
		fail(c, fmt.Errorf("%w: category is required", domain.ErrValidation))
		return
	}
	h.search(c, domain.NewsFilter{Category: category})
}

func (h *NewsHandler) search(c *gin.Context, filter domain.NewsFilter) {
	page, err := pageRequest(c)
	if err != nil {
		fail(c, err)
		return
	}
	items, err := h.service.Search(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *NewsHandler) create(c *gin.Context) {
	var item domain.News
	if err := bindJSON(c, &item); err != nil {
		fail(c, err)
		return
	}
	item.ResetForCreate()
	if err := h.service.Save(c.Request.Context(), &item); err != nil {
		fail(c, err)
		return
	}
	created(c, item)
}

func (h *NewsHandler) update(c *gin.Context) {
	var item domain.News
	if err := bindJSON(c, &item); err != nil {
		fail(c, err)
		return
	}
	if item.IsNew() {
		fail(c, fmt.Errorf("%w: id is required to update news", domain.ErrValidation))
		return
	}
	if err := h.service.Save(c.Request.Context(), &item); err != nil {
		fail(c, err)
		return
	}
	ok(c, item)
}

func (h *NewsHandler) updateMany(c *gin.Context) {
	var items []domain.News
	if err := bindJSON(c, &items); err != nil {
		fail(c, err)
		return
	}
	result := h.service.EditMany(c.Request.Context(), items)
	partial(c, result, result.HasFailures())
}

func (h *NewsHandler) delete(c *gin.Context) {
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
