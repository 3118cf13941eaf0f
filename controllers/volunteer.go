package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"volunteer-portal-api/config"
	"volunteer-portal-api/models"
	"volunteer-portal-api/services"
	"volunteer-portal-api/utils"
)

var (
	volunteerOnce sync.Once
	volunteerSvc  *services.VolunteerService
)

// volunteerService lazily wires the engine to the live database. Tests
// exercise the services package directly against the in-memory store.
func volunteerService() *services.VolunteerService {
	volunteerOnce.Do(func() {
		volunteerSvc = services.NewVolunteerService(services.NewGormVolunteerStore(config.DB))
	})
	return volunteerSvc
}

func adminService() *services.AdminVolunteerService {
	return services.NewAdminVolunteerService(volunteerService())
}

func unitService(unit string) *services.UnitVolunteerService {
	return services.NewUnitVolunteerService(volunteerService(), unit)
}

// unitFromContext pulls the unit claim set by the auth middleware.
func unitFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get("unit")
	if !exists {
		return "", false
	}
	unit, ok := value.(string)
	if !ok || unit == "" {
		return "", false
	}
	return unit, true
}

func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid volunteer ID"})
		return 0, false
	}
	return id, true
}

// respondServiceError maps engine errors onto HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	var transition *services.InvalidTransitionError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
	case errors.Is(err, services.ErrNoRecords):
		c.JSON(http.StatusNotFound, gin.H{"error": "No records found"})
	case errors.Is(err, services.ErrScopeViolation):
		c.JSON(http.StatusForbidden, gin.H{"error": "Volunteer belongs to a different unit"})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{
			"error":          transition.Error(),
			"current_status": transition.Current,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func filterParamsFromQuery(c *gin.Context) services.FilterParams {
	return services.FilterParams{
		Status:     c.Query("status"),
		Unit:       c.Query("unit"),
		Course:     c.Query("course"),
		Semester:   c.Query("semester"),
		BloodGroup: c.Query("blood_group"),
		IsActive:   c.Query("is_active"),
		Search:     utils.SanitizeInput(c.Query("search")),
	}
}

type registerVolunteerRequest struct {
	StudentID      int    `json:"student_id" binding:"required"`
	Unit           string `json:"unit" binding:"required"`
	Name           string `json:"name" binding:"required"`
	RegistrationNo string `json:"registration_no" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Course         string `json:"course" binding:"required"`
	Semester       int    `json:"semester" binding:"required,min=1"`
	BloodGroup     string `json:"blood_group"`
	Address        string `json:"address"`
}

// RegisterVolunteer creates a new application in the pending state.
func RegisterVolunteer(c *gin.Context) {
	var req registerVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	record := models.VolunteerApplication{
		StudentID:      req.StudentID,
		Unit:           utils.SanitizeInput(req.Unit),
		Name:           utils.SanitizeInput(req.Name),
		RegistrationNo: utils.SanitizeInput(req.RegistrationNo),
		Phone:          utils.SanitizeInput(req.Phone),
		Email:          utils.SanitizeInput(req.Email),
		Course:         utils.SanitizeInput(req.Course),
		Semester:       req.Semester,
		BloodGroup:     utils.SanitizeInput(req.BloodGroup),
		Status:         models.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if address := utils.SanitizeInput(req.Address); address != "" {
		record.Address = &address
	}

	if err := config.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register volunteer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Volunteer application submitted",
		"volunteer": record,
	})
}
