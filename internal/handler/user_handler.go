package handler

import (
	"net/http"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/TauhidOSD/yoga-master-server/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles user registration and admin user management.
type UserHandler struct {
	userService *service.UserService
	log         zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log.With().Str("component", "user_handler").Logger(),
	}
}

// CreateUser godoc
// POST /new-user
// Registers a student account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	ack, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, ack)
}

// ListUsers godoc
// GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, users)
}

// ListInstructors godoc
// GET /instructor
// Lists every user with the instructor role.
func (h *UserHandler) ListInstructors(c *gin.Context) {
	users, err := h.userService.Instructors(c.Request.Context())
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, users)
}

// GetUser godoc
// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// GetUserByEmail godoc
// GET /user/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdateUser godoc
// PUT /update-user/:id
// Replaces a user's profile fields, inserting the user when absent.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req model.UpdateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	ack, err := h.userService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, ack)
}

// DeleteUser godoc
// DELETE /delete-user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	ack, err := h.userService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, ack)
}
