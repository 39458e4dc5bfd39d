package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/controllers"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/middlewares"
)

// Controllers bundles everything SetupRouter mounts.
type Controllers struct {
	Groups        *controllers.GroupController
	Notifications *controllers.NotificationController
	Progress      *controllers.ProgressController
	Achievements  *controllers.AchievementController
	Profiles      *controllers.ProfileController
	Steps         *controllers.StepsController
	Workouts      *controllers.WorkoutController
	Devices       *controllers.DeviceController
	Realtime      *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running!"})
	})

	// Group listing is public; everything else needs a verified identity.
	r.GET("/api/get-groups", ctrl.Groups.GetGroups)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/join-group", ctrl.Groups.JoinGroup)
		api.POST("/leave-group", ctrl.Groups.LeaveGroup)
		api.POST("/group-post", ctrl.Groups.CreatePost)
		api.POST("/like-post", ctrl.Groups.LikePost)
		api.POST("/dislike-post", ctrl.Groups.DislikePost)
		api.POST("/comment-post", ctrl.Groups.CommentOnPost)
		api.POST("/remove-comment", ctrl.Groups.RemoveComment)
		api.GET("/get-group-posts/:group_name", ctrl.Groups.GetGroupPosts)
		api.GET("/get-user-groups", ctrl.Groups.GetUserGroups)
		api.POST("/post-badge", ctrl.Groups.PostBadge)

		api.GET("/get-notifications", ctrl.Notifications.GetNotifications)
		api.GET("/notifications/ws", ctrl.Realtime.NotificationsWS)
		api.POST("/devices/register", ctrl.Devices.Register)

		api.POST("/track-progress", ctrl.Progress.TrackProgress)
		api.GET("/get-progress", ctrl.Progress.GetProgress)
		api.POST("/reset-progress", ctrl.Progress.ResetProgress)
		api.POST("/log-sleep", ctrl.Progress.LogSleep)

		api.GET("/get-achievements", ctrl.Achievements.GetAchievements)
		api.POST("/like-achievement", ctrl.Achievements.LikeAchievement)

		api.POST("/store-profile", ctrl.Profiles.StoreProfile)
		api.GET("/get-profile", ctrl.Profiles.GetProfile)
		api.POST("/get-bmi", ctrl.Profiles.GetBMI)

		api.POST("/update-steps", ctrl.Steps.UpdateSteps)
		api.GET("/get-steps", ctrl.Steps.GetSteps)
		api.GET("/get-step-history", ctrl.Steps.GetStepHistory)

		api.POST("/fitness-assessment", ctrl.Workouts.SubmitAssessment)
		api.GET("/get-fitness-level", ctrl.Workouts.GetFitnessLevel)
		api.GET("/workout-plan", ctrl.Workouts.GetWorkoutPlan)
	}

	return r
}
