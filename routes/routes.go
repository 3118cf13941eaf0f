package routes

import (
	"volunteer-portal-api/controllers"
	"volunteer-portal-api/middleware"
	"volunteer-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)
			public.POST("/forgot-password", controllers.ForgotPassword)
			public.POST("/reset-password", controllers.ResetPassword)

			// Volunteer self-registration
			public.POST("/volunteers/register", controllers.RegisterVolunteer)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Volunteer Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Dashboard (role decides the scope)
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
				dashboard.GET("/recent", controllers.GetRecentRegistrations)
			}

			// Unit coordinator dashboard: own-unit reads and reviews only
			unit := protected.Group("/unit/volunteers",
				middleware.RequireRole(int(models.RoleUnit)), middleware.RequireUnit())
			{
				unit.GET("", controllers.GetUnitVolunteers)
				unit.GET("/stats", controllers.GetUnitVolunteerStats)
				unit.GET("/:id", controllers.GetUnitVolunteer)
				unit.PUT("/:id/status", controllers.UpdateUnitVolunteerStatus)
			}

			// Admin dashboard: system-wide, bulk ops, certification, delete
			admin := protected.Group("/admin/volunteers",
				middleware.RequireRole(int(models.RoleAdmin)))
			{
				admin.GET("", controllers.GetAdminVolunteers)
				admin.GET("/stats", controllers.GetDashboardStats)
				admin.POST("/bulk-approve", controllers.BulkApproveVolunteers)
				admin.POST("/bulk-reject", controllers.BulkRejectVolunteers)
				admin.POST("/bulk-certify", controllers.BulkCertifyVolunteers)
				admin.GET("/:id", controllers.GetAdminVolunteer)
				admin.PUT("/:id/status", controllers.UpdateAdminVolunteerStatus)
				admin.POST("/:id/certify", controllers.CertifyVolunteer)
				admin.POST("/:id/uncertify", controllers.UncertifyVolunteer)
				admin.DELETE("/:id", controllers.DeleteVolunteer)
			}
		}
	}
}
