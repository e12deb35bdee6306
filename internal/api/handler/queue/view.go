package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// View godoc
// @Summary      Get queue view
// @Description  Current projected queue: statuses, ETAs, average and presence
// @Tags         Queue
// @Produce      json
// @Success      200 {object} domain.QueueView "Current view"
// @Router       /api/queue/view [get]
func (h *QueueHandler) View(c *gin.Context) {
	c.JSON(http.StatusOK, h.clinicService.View())
}
