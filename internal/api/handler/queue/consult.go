package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"akshara/clinic-queue/internal/api/request"
)

// StartConsult godoc
// @Summary      Start consult
// @Description  Open the consult for a waiting entry
// @Tags         Consult
// @Accept       json
// @Produce      json
// @Param        request body request.TokenRequest true "Entry token"
// @Success      200 {object} domain.QueueEntry "Updated entry"
// @Failure      404 {object} map[string]string "Unknown token"
// @Failure      409 {object} map[string]string "Entry not waiting or another consult active"
// @Router       /api/consult/start [post]
// @Security     ApiKeyAuth
func (h *QueueHandler) StartConsult(c *gin.Context) {
	var req request.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.clinicService.StartConsult(c, req.Token, actor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// EndConsult godoc
// @Summary      End consult
// @Description  Close an active consult and fold the duration into the running average
// @Tags         Consult
// @Accept       json
// @Produce      json
// @Param        request body request.TokenRequest true "Entry token"
// @Success      200 {object} map[string]interface{} "Updated entry and new average"
// @Failure      404 {object} map[string]string "Unknown token"
// @Failure      409 {object} map[string]string "Entry not in consult"
// @Router       /api/consult/end [post]
// @Security     ApiKeyAuth
func (h *QueueHandler) EndConsult(c *gin.Context) {
	var req request.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, average, err := h.clinicService.EndConsult(c, req.Token, actor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entry":                 entry,
		"averageConsultMinutes": average,
	})
}

func (h *QueueHandler) ReopenConsult(c *gin.Context) {
	var req request.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.clinicService.ReopenConsult(c, req.Token, actor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *QueueHandler) MarkNoShow(c *gin.Context) {
	var req request.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.clinicService.MarkNoShow(c, req.Token, actor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}
