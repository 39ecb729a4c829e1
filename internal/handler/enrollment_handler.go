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

// EnrollmentHandler handles enrolled classes, instructor applications and
// the admin summary.
type EnrollmentHandler struct {
	enrollmentService  *service.EnrollmentService
	applicationService *service.ApplicationService
	statsService       *service.StatsService
	log                zerolog.Logger
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(
	enrollmentService *service.EnrollmentService,
	applicationService *service.ApplicationService,
	statsService *service.StatsService,
	log zerolog.Logger,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService:  enrollmentService,
		applicationService: applicationService,
		statsService:       statsService,
		log:                log.With().Str("component", "enrollment_handler").Logger(),
	}
}

// EnrolledClasses godoc
// GET /enrolled-class/:email
// Lists the user's enrolled classes joined with their instructors.
func (h *EnrollmentHandler) EnrolledClasses(c *gin.Context) {
	rows, err := h.enrollmentService.EnrolledClasses(c.Request.Context(), c.Param("email"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.List(c, rows)
}

// ApplyInstructor godoc
// POST /ass-instructor
// Stores an application to become an instructor.
func (h *EnrollmentHandler) ApplyInstructor(c *gin.Context) {
	var req model.ApplyInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	ack, err := h.applicationService.Apply(c.Request.Context(), &req)
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, ack)
}

// AppliedInstructor godoc
// GET /applied-instructor/:email
func (h *EnrollmentHandler) AppliedInstructor(c *gin.Context) {
	app, err := h.applicationService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// AdminStatus godoc
// GET /admin-status
// Summarizes classes, instructors and enrollments for the admin dashboard.
func (h *EnrollmentHandler) AdminStatus(c *gin.Context) {
	stats, err := h.statsService.AdminStats(c.Request.Context())
	if err != nil {
		failWith(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
