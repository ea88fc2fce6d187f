package api

import (
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/users"
	"github.com/gin-gonic/gin"
)

// createUserRequest lets the password in on create; domain.User never
// serializes it.
type createUserRequest struct {
	domain.User
	Password string `json:"password"`
}

type UserHandler struct {
	service users.UserUseCase
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.GET("/all", h.list)
	router.GET("/id", h.get)
	router.GET("/email", h.byEmail)
	router.POST("", h.create)
	router.PUT("", h.update)
	router.PUT("/list", h.updateMany)
	router.DELETE("", h.delete)
}

func (h *UserHandler) list(c *gin.Context) {
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

func (h *UserHandler) get(c *gin.Context) {
	id, err := requiredID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	user, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) byEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		fail(c, fmt.Errorf("%w: email is required", domain.ErrValidation))
		return
	}
	user, err := h.service.FindByEmail(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) create(c *gin.Context) {
	var req createUserRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	user := req.User
	user.ResetForCreate()
	user.Password = req.Password
	if err := h.service.Save(c.Request.Context(), &user); err != nil {
		fail(c, err)
		return
	}
	created(c, user)
}

func (h *UserHandler) update(c *gin.Context) {
	var user domain.User
	if err := bindJSON(c, &user); err != nil {
		fail(c, err)
		return
	}
	if user.IsNew() {
		fail(c, fmt.Errorf("%w: id is required to update a user", domain.ErrValidation))
		return
	}
	if err := h.service.Save(c.Request.Context(), &user); err != nil {
		fail(c, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) updateMany(c *gin.Context) {
	var items []domain.User
	if err := bindJSON(c, &items); err != nil {
		fail(c, err)
		return
	}
	result := h.service.EditMany(c.Request.Context(), items)
	partial(c, result, result.HasFailures())
}

func (h *UserHandler) delete(c *gin.Context) {
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
