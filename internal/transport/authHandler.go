package transport

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/freshnest/bookingadmin/internal/service"
	"github.com/freshnest/bookingadmin/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest представляет запрос на вход администратора
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

const defaultAdminPath = "/admin/bookings"

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid request body: " + err.Error(),
		})
		return
	}

	sid := middleware.SessionID(c)
	if !h.authService.Login(c.Request.Context(), sid, req.Password) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Success: false,
			Error:   "Invalid password. Please try again.",
		})
		return
	}

	// Send the caller back where the guard intercepted it, when the
	// destination is a local path.
	redirect := c.Query("from")
	if !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		redirect = defaultAdminPath
	}

	sess := h.authService.Session(c.Request.Context(), sid)
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Login successful",
		Data: gin.H{
			"name":     sess.AdminName,
			"redirect": redirect,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(c.Request.Context(), middleware.SessionID(c))

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Logged out",
	})
}

func (h *AuthHandler) GetPasswords(c *gin.Context) {
	passwords := h.authService.Passwords(middleware.SessionID(c))

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    passwords,
		Meta: map[string]interface{}{
			"total": len(passwords),
		},
	})
}

// AddPasswordRequest представляет запрос на добавление пароля администратора
type AddPasswordRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) AddPassword(c *gin.Context) {
	var req AddPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid request body: " + err.Error(),
		})
		return
	}

	sid := middleware.SessionID(c)
	if !h.authService.AddPassword(c.Request.Context(), sid, req.Password) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Password cannot be empty.",
		})
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Admin password added successfully.",
	})
}

func (h *AuthHandler) DeletePassword(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid password ID",
		})
		return
	}

	sid := middleware.SessionID(c)
	if !h.authService.DeletePassword(c.Request.Context(), sid, id) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Cannot remove the last admin password.",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Admin password removed successfully.",
	})
}
