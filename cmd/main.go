package main

import (
	"log"
	"os"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/config"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/controllers"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/repository"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/routes"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	// Push delivery is optional; without AWS credentials notifications are
	// still stored and streamed over websocket.
	push, err := services.NewPushService(repository.NewDeviceRepo(config.DB))
	if err != nil {
		log.Printf("push service disabled: %v", err)
		push = nil
	}

	notifications := services.NewNotificationService(repository.NewNotificationRepo(config.DB), hub, push)
	groups := services.NewGroupService(repository.NewGroupRepo(config.DB), notifications)
	progress := services.NewProgressService(
		repository.NewProgressRepo(config.DB),
		repository.NewAchievementRepo(config.DB),
		repository.NewSleepRepo(config.DB),
	)
	achievements := services.NewAchievementService(repository.NewAchievementRepo(config.DB))
	profiles := services.NewProfileService(repository.NewProfileRepo(config.DB), utils.UploadBase64ImageToS3)
	steps := services.NewStepsService(repository.NewStepsRepo(config.DB))
	workouts := services.NewWorkoutService(repository.NewAssessmentRepo(config.DB))

	r := routes.SetupRouter(routes.Controllers{
		Groups:        controllers.NewGroupController(groups),
		Notifications: controllers.NewNotificationController(notifications),
		Progress:      controllers.NewProgressController(progress),
		Achievements:  controllers.NewAchievementController(achievements),
		Profiles:      controllers.NewProfileController(profiles),
		Steps:         controllers.NewStepsController(steps),
		Workouts:      controllers.NewWorkoutController(workouts),
		Devices:       controllers.NewDeviceController(push),
		Realtime:      controllers.NewRealtimeController(hub),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
