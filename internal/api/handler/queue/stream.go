package queue

import (
	"io"

	"github.com/gin-gonic/gin"
)

// Stream godoc
// @Summary      Subscribe to queue updates
// @Description  Server-sent events: the current view immediately, then every published view
// @Tags         Queue
// @Produce      text/event-stream
// @Router       /api/queue/stream [get]
func (h *QueueHandler) Stream(c *gin.Context) {
	sub := h.clinicService.Subscribe()
	defer h.clinicService.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case view, ok := <-sub.Views():
			if !ok {
				return false
			}
			c.SSEvent("queue_state", view)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
