package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PublicSearch godoc
// @Summary      Public queue search
// @Description  Search the queue by token, name or phone; names are masked unless matched directly
// @Tags         Queue
// @Produce      json
// @Param        query query string false "Search term"
// @Success      200 {array} domain.MaskedEntry "Masked matches, at most ten"
// @Router       /api/queue [get]
func (h *QueueHandler) PublicSearch(c *gin.Context) {
	c.JSON(http.StatusOK, h.clinicService.SearchPublic(c.Query("query")))
}
