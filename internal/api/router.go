package api

import (
	authHandler "akshara/clinic-queue/internal/api/handler/auth"
	queueHandler "akshara/clinic-queue/internal/api/handler/queue"
	"akshara/clinic-queue/internal/api/middleware"
	"akshara/clinic-queue/internal/constant"
)

// SetupAPIRoutes
// @title						Clinic Queue Service
// @version         			1.0.0
// @description     			Live queue APIs for a single-doctor clinic
// @Host 						localhost:8080
// @BasePath  					/
func (s *Server) SetupAPIRoutes(
	queue *queueHandler.QueueHandler,
	auth *authHandler.AuthHandler,
	jwtSecret string,
	limiter *middleware.RateLimitMiddleware,
) {
	r := s.engine

	api := r.Group("api")
	{
		api.POST("/login", auth.Login)

		// public surface: search is rate limited, the view and the live
		// stream are open so waiting-room displays need no credentials
		api.GET("/queue", limiter.Handle, queue.PublicSearch)
		api.GET("/queue/view", queue.View)
		api.GET("/queue/stream", queue.Stream)

		authed := api.Group("")
		authed.Use(middleware.HandleAuth(jwtSecret))
		{
			reception := authed.Group("")
			reception.Use(middleware.RequireRoles(constant.RoleReception, constant.RoleAdmin))
			{
				reception.POST("/appointments", queue.Register)
				reception.DELETE("/appointments", queue.Reset)
				reception.POST("/consult/no-show", queue.MarkNoShow)
			}

			clinical := authed.Group("")
			clinical.Use(middleware.RequireRoles(constant.RoleReception, constant.RoleDoctor, constant.RoleAdmin))
			{
				clinical.POST("/consult/start", queue.StartConsult)
				clinical.POST("/consult/end", queue.EndConsult)
				clinical.POST("/consult/reopen", queue.ReopenConsult)
				clinical.PUT("/doctor/presence", queue.SetPresence)
				clinical.GET("/consults", queue.History)
			}
		}
	}
}
