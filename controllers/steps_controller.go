package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type StepsController struct {
	Steps *services.StepsService
}

func NewStepsController(ss *services.StepsService) *StepsController {
	return &StepsController{Steps: ss}
}

type stepsReq struct {
	Steps *int `json:"steps"`
}

// POST /api/update-steps
func (sc *StepsController) UpdateSteps(c *gin.Context) {
	email := c.GetString("email")

	var req stepsReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Steps == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Steps value is required"})
		return
	}

	date, err := sc.Steps.UpdateSteps(c.Request.Context(), email, *req.Steps)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Steps updated successfully!", "date": date})
}

// GET /api/get-steps
func (sc *StepsController) GetSteps(c *gin.Context) {
	email := c.GetString("email")

	steps, date, err := sc.Steps.GetSteps(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": steps, "date": date})
}

// GET /api/get-step-history
func (sc *StepsController) GetStepHistory(c *gin.Context) {
	email := c.GetString("email")

	history, err := sc.Steps.GetStepHistory(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
