package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type AchievementController struct {
	Achievements *services.AchievementService
}

func NewAchievementController(as *services.AchievementService) *AchievementController {
	return &AchievementController{Achievements: as}
}

// GET /api/get-achievements
func (ac *AchievementController) GetAchievements(c *gin.Context) {
	email := c.GetString("email")

	list, err := ac.Achievements.ListAchievements(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type likeAchievementReq struct {
	Title string `json:"title"`
}

// POST /api/like-achievement
func (ac *AchievementController) LikeAchievement(c *gin.Context) {
	email := c.GetString("email")

	var req likeAchievementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := ac.Achievements.LikeAchievement(c.Request.Context(), email, req.Title); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Achievement liked!"})
}
