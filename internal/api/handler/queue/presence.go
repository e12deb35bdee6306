package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"akshara/clinic-queue/internal/api/request"
)

// SetPresence godoc
// @Summary      Set doctor presence
// @Description  Mark the doctor present or absent; waiting ETAs re-anchor accordingly
// @Tags         Queue
// @Accept       json
// @Produce      json
// @Param        request body request.PresenceRequest true "Presence flag"
// @Success      200 {object} map[string]bool "Updated presence"
// @Router       /api/doctor/presence [put]
// @Security     ApiKeyAuth
func (h *QueueHandler) SetPresence(c *gin.Context) {
	var req request.PresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	present := h.clinicService.SetDoctorPresence(c, *req.Present, actor(c))

	c.JSON(http.StatusOK, gin.H{"doctorPresent": present})
}
