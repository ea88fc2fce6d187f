package api

import (
	"fmt"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type AuthHandler struct {
	service auth.AuthUseCase
}

func NewAuthHandler(service auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/signup", h.signup)
	router.POST("/forgetP", h.forgotPassword)
	router.PUT("/changeP", h.changePassword)
}

func (h *AuthHandler) login(c *gin.Context) {
	var input auth.LoginInput
	if err := bindJSON(c, &input); err != nil {
		fail(c, err)
		return
	}
	token, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, token)
}

func (h *AuthHandler) signup(c *gin.Context) {
	var input auth.SignupInput
	if err := bindJSON(c, &input); err != nil {
		fail(c, err)
		return
	}
	user, err := h.service.Signup(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, user)
}

func (h *AuthHandler) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	if req.Email == "" {
		fail(c, fmt.Errorf("%w: email is required", domain.ErrValidation))
		return
	}
	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"email": req.Email})
}

func (h *AuthHandler) changePassword(c *gin.Context) {
	var input auth.ChangePasswordInput
	if err := bindJSON(c, &input); err != nil {
		fail(c, err)
		return
	}
	if err := h.service.ChangePassword(c.Request.Context(), input); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"email": input.Email})
}
