package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-portal-api/models"
	"volunteer-portal-api/services"
)

const recentListLimit = 5

// GetDashboardStats returns dashboard statistics scoped by the caller's
// role: admins see the whole system, unit coordinators their own unit.
func GetDashboardStats(c *gin.Context) {
	roleIDVal, exists := c.Get("roleID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "authentication context missing",
		})
		return
	}

	roleID, ok := roleIDVal.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "invalid role id",
		})
		return
	}

	var (
		stats *services.Stats
		err   error
	)
	if roleID == int(models.RoleAdmin) {
		stats, err = adminService().Stats(c.Request.Context())
	} else {
		unit, okUnit := unitFromContext(c)
		if !okUnit {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "No unit assigned to this account",
			})
			return
		}
		stats, err = unitService(unit).Stats(c.Request.Context())
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// GetRecentRegistrations returns the newest applications visible to the
// caller. Statistics and this list may be fetched concurrently; there is no
// ordering requirement between them.
func GetRecentRegistrations(c *gin.Context) {
	roleIDVal, exists := c.Get("roleID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "authentication context missing",
		})
		return
	}

	var (
		volunteers []models.VolunteerApplication
		err        error
	)
	if roleID, ok := roleIDVal.(int); ok && roleID == int(models.RoleAdmin) {
		volunteers, err = adminService().List(c.Request.Context(), services.Criteria{})
	} else {
		unit, okUnit := unitFromContext(c)
		if !okUnit {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "No unit assigned to this account",
			})
			return
		}
		volunteers, err = unitService(unit).List(c.Request.Context(), services.Criteria{})
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if len(volunteers) > recentListLimit {
		volunteers = volunteers[:recentListLimit]
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"volunteers": volunteers,
		"total":      len(volunteers),
	})
}
