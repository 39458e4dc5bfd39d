package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(ns *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: ns}
}

// GET /api/get-notifications
//
// Listing marks everything unseen as seen; the returned payload reflects the
// state before the flip.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	email := c.GetString("email")

	list, err := nc.Notifications.ListNotifications(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}
