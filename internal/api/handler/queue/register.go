package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"akshara/clinic-queue/internal/api/request"
	queuecore "akshara/clinic-queue/internal/queue"
)

// Register godoc
// @Summary      Register arrival
// @Description  Add a patient to today's queue and allocate the next token
// @Tags         Queue
// @Accept       json
// @Produce      json
// @Param        request body request.RegisterRequest true "Registration body"
// @Success      200 {object} domain.QueueEntry "Created entry"
// @Failure      400 {object} map[string]string "Missing name"
// @Router       /api/appointments [post]
// @Security     ApiKeyAuth
func (h *QueueHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.clinicService.Register(c, queuecore.AddInput{
		Name:          req.Name,
		Age:           req.Age,
		Sex:           req.Sex,
		Phone:         req.Phone,
		BookedTime:    req.BookedTime,
		EstConsultMin: req.EstConsultMin,
	}, actor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}
