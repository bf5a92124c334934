package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/placetrack/placetrack/internal/app/controllers"
	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	placementController *controllers.PlacementController,
	departmentController *controllers.DepartmentController,
	mentorController *controllers.MentorController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.PUT("/auth/profile", authController.UpdateProfile)
		authenticated.PUT("/auth/password", authController.ChangePassword)

		// Student routes - list and detail are open to both roles; mentor
		// ownership checks happen in the services
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/export", studentController.ExportStudents)
			students.GET("/import/template", studentController.DownloadTemplate)
			students.POST("/import", studentController.ImportStudents)
			students.GET("/:id", studentController.GetStudent)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)

			// Placement record of a student
			students.POST("/:id/placement", placementController.CreatePlacement)
			students.PUT("/:id/placement", placementController.UpdatePlacement)
			students.DELETE("/:id/placement", placementController.DeletePlacement)
		}

		// Department routes - reads for everyone, writes admin-only
		departments := authenticated.Group("/departments")
		{
			departments.GET("", departmentController.ListDepartments)
			departments.GET("/:id", departmentController.GetDepartment)

			departmentsAdmin := departments.Group("")
			departmentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				departmentsAdmin.POST("", departmentController.CreateDepartment)
				departmentsAdmin.PUT("/:id", departmentController.UpdateDepartment)
				departmentsAdmin.PATCH("/:id/active", departmentController.SetDepartmentActive)
				departmentsAdmin.DELETE("/:id", departmentController.DeleteDepartment)
			}
		}

		// Mentor routes - reads for everyone, writes admin-only
		mentors := authenticated.Group("/mentors")
		{
			mentors.GET("", mentorController.ListMentors)
			mentors.GET("/:id", mentorController.GetMentor)

			mentorsAdmin := mentors.Group("")
			mentorsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				mentorsAdmin.POST("", mentorController.CreateMentor)
				mentorsAdmin.PUT("/:id", mentorController.UpdateMentor)
				mentorsAdmin.DELETE("/:id", mentorController.DeleteMentor)
			}
		}

		// Report routes
		reports := authenticated.Group("/reports")
		{
			reports.GET("/kpis", reportController.GetKPIs)
			reports.GET("/departments", reportController.GetDepartmentBreakdown)
			reports.GET("/monthly", reportController.GetMonthlyPlacements)
			reports.GET("/companies", reportController.GetTopCompanies)
			reports.GET("/package-distribution", reportController.GetPackageDistribution)
			reports.GET("/status-distribution", reportController.GetStatusDistribution)

			reportsAdmin := reports.Group("")
			reportsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				reportsAdmin.GET("/mentors", reportController.GetMentorBreakdown)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
