package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(ws *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: ws}
}

type assessmentReq struct {
	Pushups      int `json:"pushups"`
	Squats       int `json:"squats"`
	PlankSeconds int `json:"plank_seconds"`
}

// POST /api/fitness-assessment
func (wc *WorkoutController) SubmitAssessment(c *gin.Context) {
	email := c.GetString("email")

	var req assessmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input! Please enter numeric values."})
		return
	}

	level, err := wc.Workouts.SubmitAssessment(c.Request.Context(), email, req.Pushups, req.Squats, req.PlankSeconds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assessment Completed!", "fitness_level": level})
}

// GET /api/get-fitness-level
//
// Answering 400 (not 404) for a missing assessment matches the documented
// endpoint contract.
func (wc *WorkoutController) GetFitnessLevel(c *gin.Context) {
	email := c.GetString("email")

	level, err := wc.Workouts.GetFitnessLevel(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fitness level found. Please complete the assessment first."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fitness_level": level})
}

// GET /api/workout-plan
func (wc *WorkoutController) GetWorkoutPlan(c *gin.Context) {
	email := c.GetString("email")

	plan, err := wc.Workouts.GetWorkoutPlan(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fitness level found. Please complete the assessment first."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout_plan": plan})
}
