package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monolito/ecommerce-go/internal/models"
	"github.com/monolito/ecommerce-go/internal/store"
)

type UserHandler struct {
	users *store.UserDirectory
}

func NewUserHandler(users *store.UserDirectory) *UserHandler {
	return &UserHandler{users: users}
}

// Register creates a new user account.
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.users.Register(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login checks credentials and returns the matching user.
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers returns all registered users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.users.List())
}

// GetUser returns a single user.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
