package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(ps *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: ps}
}

// POST /api/track-progress
func (pc *ProgressController) TrackProgress(c *gin.Context) {
	email := c.GetString("email")

	res, err := pc.Progress.RecordWorkoutDay(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Workout day recorded!",
		"completed_days": res.CompletedDays,
		"badge":          res.Badge,
		"redirect":       res.Wrapped,
	})
}

// GET /api/get-progress
func (pc *ProgressController) GetProgress(c *gin.Context) {
	email := c.GetString("email")

	p, err := pc.Progress.GetProgress(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed_days": p.CompletedDays, "badge": p.Badge})
}

// POST /api/reset-progress
func (pc *ProgressController) ResetProgress(c *gin.Context) {
	email := c.GetString("email")

	if err := pc.Progress.ResetProgress(c.Request.Context(), email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress reset successfully!"})
}

type sleepReq struct {
	Date       string  `json:"date"`
	SleepHours float64 `json:"sleep_hours"`
}

// POST /api/log-sleep
func (pc *ProgressController) LogSleep(c *gin.Context) {
	email := c.GetString("email")

	var req sleepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	achievement, err := pc.Progress.RecordSleep(c.Request.Context(), email, req.Date, req.SleepHours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Sleep data logged successfully!",
		"achievement": achievement,
	})
}
