package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-portal-api/models"
	"volunteer-portal-api/services"
)

type bulkIDsRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

// GetAdminVolunteers lists applications system-wide with optional filters.
func GetAdminVolunteers(c *gin.Context) {
	criteria, err := services.BuildCriteria(filterParamsFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	volunteers, err := adminService().List(c.Request.Context(), criteria)
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

// GetAdminVolunteer returns one application.
func GetAdminVolunteer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	volunteer, err := adminService().Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"volunteer": volunteer,
	})
}

// UpdateAdminVolunteerStatus applies any admin-legal status transition.
func UpdateAdminVolunteerStatus(c *gin.Context) {
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

	volunteer, err := adminService().SetStatus(c.Request.Context(), id, status)
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

// CertifyVolunteer moves an approved application to certified.
func CertifyVolunteer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	volunteer, err := adminService().Certify(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Volunteer certified",
		"volunteer": volunteer,
	})
}

// UncertifyVolunteer reverts a certified application to approved.
func UncertifyVolunteer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	volunteer, err := adminService().Uncertify(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Certification reverted",
		"volunteer": volunteer,
	})
}

// BulkApproveVolunteers sets every requested application to approved.
func BulkApproveVolunteers(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := adminService().BulkApprove(c.Request.Context(), req.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Volunteers approved",
		"updated": count,
	})
}

// BulkRejectVolunteers sets every requested application to rejected.
func BulkRejectVolunteers(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := adminService().BulkReject(c.Request.Context(), req.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Volunteers rejected",
		"updated": count,
	})
}

// BulkCertifyVolunteers certifies the approved subset of the requested ids
// and reports the rest per record.
func BulkCertifyVolunteers(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := adminService().BulkCertify(c.Request.Context(), req.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"success_count": result.SuccessCount,
		"failed_count":  result.FailedCount,
		"errors":        result.Errors,
	})
}

// DeleteVolunteer permanently removes an application. This bypasses the
// review state machine and cannot be undone.
func DeleteVolunteer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := adminService().Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Volunteer deleted",
	})
}
