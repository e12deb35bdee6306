package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Reset godoc
// @Summary      Reset day
// @Description  Clear every entry, restore the average default and mark the doctor absent
// @Tags         Queue
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /api/appointments [delete]
// @Security     ApiKeyAuth
func (h *QueueHandler) Reset(c *gin.Context) {
	if err := h.clinicService.ResetDay(c, actor(c)); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
