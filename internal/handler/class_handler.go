package handler

import (
	"net/http"

	"github.com/TauhidOSD/yoga-master-server/internal/middleware"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/TauhidOSD/yoga-master-server/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ClassHandler handles the class catalog and its moderation.
type ClassHandler struct {
	classService *service.ClassService
	log          zerolog.Logger
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService, log zerolog.Logger) *ClassHandler {
	return &ClassHandler{
		classService: classService,
		log:          log.With().Str("component", "class_handler").Logger(),
	}
}

// CreateClass godoc
// POST /new-class
// Submits a class for review. The calling instructor becomes its owner.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}
	if req.InstructorName == "" {
		req.InstructorName = claims.Name
	}

	ack, err := h.classService.Create(c.Request.Context(), claims.Email, &req)
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, ack)
}

// ListApproved godoc
// GET /classes, GET /approved-classes
// Lists approved classes.
func (h *ClassHandler) ListApproved(c *gin.Context) {
	classes, err := h.classService.Approved(c.Request.Context())
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, classes)
}

// ListAll godoc
// GET /classes-manage
// Lists every class regardless of status.
func (h *ClassHandler) ListAll(c *gin.Context) {
	classes, err := h.classService.All(c.Request.Context())
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, classes)
}

// ListByInstructor godoc
// GET /classes/:email
func (h *ClassHandler) ListByInstructor(c *gin.Context) {
	classes, err := h.classService.ByInstructor(c.Request.Context(), c.Param("email"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, classes)
}

// GetClass godoc
// GET /class/:id
func (h *ClassHandler) GetClass(c *gin.Context) {
	class, err := h.classService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, class)
}

// ChangeStatus godoc
// PATCH /change-status/:id
// Approves or rejects a class with an optional reason.
func (h *ClassHandler) ChangeStatus(c *gin.Context) {
	var req model.ChangeStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	ack, err := h.classService.ChangeStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, ack)
}

// UpdateClass godoc
// PUT /update-class/:id
// Replaces class details and sends the class back to review.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var req model.UpdateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	ack, err := h.classService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, ack)
}

// PopularClasses godoc
// GET /popular-classes
// Lists the six most enrolled classes.
func (h *ClassHandler) PopularClasses(c *gin.Context) {
	classes, err := h.classService.Popular(c.Request.Context())
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, classes)
}

// PopularInstructors godoc
// GET /popular-instructor
// Lists the six instructors with the most enrollments across their classes.
func (h *ClassHandler) PopularInstructors(c *gin.Context) {
	rows, err := h.classService.PopularInstructors(c.Request.Context())
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, rows)
}
