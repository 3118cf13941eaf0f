package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-portal-api/models"
	"volunteer-portal-api/services"
)

// GetUnitVolunteers lists the caller's own-unit applications with optional
// filters. A unit filter naming another unit is rejected, not rescoped.
func GetUnitVolunteers(c *gin.Context) {
	unit, ok := unitFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No unit assigned to this account"})
		return
	}

	criteria, err := services.BuildCriteria(filterParamsFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	volunteers, err := unitService(unit).List(c.Request.Context(), criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"volunteers": volunteers,
		"total":      len(volunteers),
	})
}

// GetUnitVolunteer returns one own-unit application.
func GetUnitVolunteer(c *gin.Context) {
	unit, ok := unitFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No unit assigned to this account"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	volunteer, err := unitService(unit).Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"volunteer": volunteer,
	})
}

// UpdateUnitVolunteerStatus moves an own-unit application among
// pending/approved/rejected. Certified records are off limits here.
func UpdateUnitVolunteerStatus(c *gin.Context) {
	unit, ok := unitFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No unit assigned to this account"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	volunteer, err := unitService(unit).SetStatus(c.Request.Context(), id, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Status updated",
		"volunteer": volunteer,
	})
}

// GetUnitVolunteerStats returns own-unit dashboard statistics.
func GetUnitVolunteerStats(c *gin.Context) {
	unit, ok := unitFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No unit assigned to this account"})
		return
	}

	stats, err := unitService(unit).Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
