package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"akshara/clinic-queue/pkg/paginator"
)

// History godoc
// @Summary      List consult history
// @Description  Completed consults with durations, newest first, paginated
// @Tags         Consult
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Number of items per page" default(10)
// @Success      200 {object} map[string]interface{} "Consult records with pagination metadata"
// @Router       /api/consults [get]
// @Security     ApiKeyAuth
func (h *QueueHandler) History(c *gin.Context) {
	pagination := paginator.New(c)

	records, total, err := h.clinicService.ConsultHistory(c, pagination.Size, pagination.From)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    records,
		"meta": gin.H{
			"page_size": pagination.Size,
			"page":      pagination.Page,
			"total":     total,
		},
	})
}
