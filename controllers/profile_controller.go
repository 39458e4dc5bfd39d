package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(ps *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: ps}
}

// POST /api/store-profile
func (pc *ProfileController) StoreProfile(c *gin.Context) {
	email := c.GetString("email")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format"})
		return
	}

	profile, err := pc.Profiles.StoreProfile(c.Request.Context(), email, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Profile stored successfully", "bmi": profile.BMI})
}

// GET /api/get-profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	email := c.GetString("email")

	profile, err := pc.Profiles.GetProfile(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type bmiReq struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// POST /api/get-bmi
func (pc *ProfileController) GetBMI(c *gin.Context) {
	var req bmiReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Height and weight are required"})
		return
	}

	bmi, err := pc.Profiles.ComputeBMI(req.Height, req.Weight)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bmi": bmi})
}
