package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Analytics *controllers.AnalyticsController
	Reference *controllers.ReferenceController
	Device    *controllers.DeviceController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/devices", ctrl.Device.Register)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/alerts", controllers.ListAlerts)
		user.POST("/alerts/:id/read", controllers.MarkAlertRead)
		user.GET("/alerts/ws", ctrl.Realtime.AlertsWS)
	}

	// Daily tracking
	track := r.Group("/track")
	track.Use(middlewares.AuthMiddleware())
	{
		track.GET("/today", controllers.GetToday)
		track.POST("/morning", controllers.SubmitMorningCheckIn)
		track.POST("/afternoon", controllers.SubmitAfternoonCheckIn)
		track.POST("/evening", controllers.SubmitEveningCheckIn)

		track.POST("/exercise", controllers.LogExercise)
		track.POST("/study", controllers.LogStudy)
		track.POST("/temptation", controllers.LogTemptation)
		track.POST("/reading", controllers.LogSpiritualPractice)

		track.GET("/goals", controllers.ListGoals)
		track.POST("/goals", controllers.CreateGoal)
		track.POST("/goals/:id/verdict", controllers.SetGoalVerdict)

		track.GET("/journal", controllers.ListJournalEntries)
		track.POST("/journal", controllers.CreateJournalEntry)
		track.PUT("/journal/:id", controllers.UpdateJournalEntry)
		track.DELETE("/journal/:id", controllers.DeleteJournalEntry)
	}

	// Analytics dashboard
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/dashboard", ctrl.Analytics.GetDashboard)
		analytics.GET("/dashboard/last", ctrl.Analytics.GetLastDashboard)
	}

	// Reference catalogs
	reference := r.Group("/reference")
	reference.Use(middlewares.AuthMiddleware())
	{
		reference.GET("/", ctrl.Reference.GetReferenceData)
	}

	return r
}
