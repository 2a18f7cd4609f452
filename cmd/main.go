package main

import (
	"log"
	"time"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	refCache := services.NewRefCache(30 * time.Minute)
	refSvc := services.NewReferenceService(config.DB, refCache)
	if err := refSvc.SeedReferenceData(); err != nil {
		log.Fatalf("reference data seed failed: %v", err)
	}

	analyticsSvc := services.NewAnalyticsService(config.DB)
	dashState := services.NewDashboardState()

	r := routes.SetupRouter(routes.Controllers{
		Analytics: controllers.NewAnalyticsController(analyticsSvc, dashState),
		Reference: controllers.NewReferenceController(refSvc),
		Device:    controllers.NewDeviceController(push),
		Realtime:  controllers.NewRealtimeController(hub),
	})
	r.Run(":8080")
}
