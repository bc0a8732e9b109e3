package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/controllers"
	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	eventController *controllers.EventController,
	participationController *controllers.ParticipationController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/students/login", authController.Login)
	api.POST("/admins/login", authController.Login)
	api.POST("/companies/login", authController.Login)
	api.POST("/students/register", authController.Register)
	api.POST("/students/forgot-password", authController.ForgotPassword)

	api.POST("/messages/send", messageController.SendMessage)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	// Student routes
	students := authenticated.Group("/students")
	{
		students.GET("", adminOnly, studentController.GetAllStudents)
		students.GET("/filter", adminOnly, studentController.FilterStudents)
		students.GET("/:admissionNumber", studentController.GetStudent)
		students.PUT("/:admissionNumber", studentController.UpdateStudent)
		students.DELETE("/:admissionNumber", adminOnly, studentController.DeleteStudent)

		students.POST("/:admissionNumber/resume", studentController.UploadResume)
		students.POST("/:admissionNumber/resume-drive-link", studentController.SetResumeLink)
		students.GET("/:admissionNumber/resume-drive-link", studentController.GetResumeLink)
	}

	// Admin routes
	admins := authenticated.Group("/admins")
	admins.Use(adminOnly)
	{
		admins.GET("", adminController.GetAllAdmins)
		admins.POST("/create", adminController.CreateAdmin)
		admins.GET("/:id", adminController.GetAdmin)
		admins.PUT("/:id", adminController.UpdateAdmin)
		admins.DELETE("/:id", adminController.DeleteAdmin)
		admins.PUT("/:id/change-password", adminController.ChangePassword)
		admins.POST("/:id/update-last-login", adminController.TouchLastLogin)
		admins.GET("/dashboard/stats", adminController.GetDashboardStats)
	}

	// Event routes
	events := authenticated.Group("/events")
	{
		events.GET("", eventController.GetAllEvents)
		events.GET("/upcoming", eventController.GetUpcomingEvents)
		events.GET("/ongoing", eventController.GetOngoingEvents)
		events.GET("/past", eventController.GetPastEvents)
		events.GET("/search", eventController.SearchEventsByCompany)
		events.GET("/status/:status", eventController.GetEventsByStatus)
		events.GET("/company/:companyName", eventController.GetEventsByCompany)
		events.GET("/:id", eventController.GetEvent)

		events.POST("/create", adminOnly, eventController.CreateEvent)
		events.PUT("/:id", adminOnly, eventController.UpdateEvent)
		events.DELETE("/:id", adminOnly, eventController.DeleteEvent)
	}

	// Participation routes
	participation := authenticated.Group("/participation")
	{
		participation.POST("/register", participationController.Register)
		participation.GET("", adminOnly, participationController.GetAll)
		participation.GET("/student/:id", participationController.GetByStudent)
		participation.GET("/event/:id", participationController.GetByEvent)
		participation.PUT("/:studentId/:eventId", adminOnly, participationController.UpdateStatus)
		participation.DELETE("/:studentId/:eventId", participationController.Withdraw)
	}

	// Message routes (sending is public, review is admin-only)
	messages := authenticated.Group("/messages")
	messages.Use(adminOnly)
	{
		messages.GET("", messageController.GetAllMessages)
		messages.PUT("/:id/status", messageController.UpdateStatus)
	}

	router.NoRoute(middleware.NoRouteHandler())
}
