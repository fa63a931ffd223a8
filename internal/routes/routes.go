package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lixetron/job-portal/internal/handlers"
)

// RegisterRoutes wires every handler into the router. API endpoints live
// under /api/v1; uploaded files are served back under /host.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.RatingHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
	}

	host := ginRouter.Group("/host")
	{
		appHandlers.FileHandler.RegisterRoutes(host)
	}
}
