// Package apigateway assembles the gin router for the numbers dictation
// backend: public auth routes, the learner session API, and the guarded
// admin dataset API.
package apigateway

import (
	"github.com/gin-gonic/gin"

	"numbers-dictation-platform/backend/internal/auth"
	"numbers-dictation-platform/backend/internal/datasetmanagement"
	"numbers-dictation-platform/backend/internal/sessionmanagement"
)

// RouterDeps are the wired handler groups the router mounts.
type RouterDeps struct {
	Auth     *auth.Service
	Sessions *sessionmanagement.SessionHandlers
	Datasets *datasetmanagement.DatasetHandlers
}

// SetupRouter initializes the main gin router. Learner routes live under
// /web/numbers; dataset administration sits behind the auth middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", deps.Auth.LoginHandler)
		authRoutes.POST("/logout", deps.Auth.LogoutHandler)
	}

	webRoutes := router.Group("/web/numbers")
	{
		sessionRoutes := webRoutes.Group("/sessions")
		{
			sessionRoutes.POST("", deps.Sessions.CreateSession)
			sessionRoutes.GET("/:id/next", deps.Sessions.NextExercise)
			sessionRoutes.POST("/:id/answers", deps.Sessions.SubmitAnswer)
			sessionRoutes.GET("/:id/summary", deps.Sessions.GetSummary)
		}

		webRoutes.GET("/audio/*ref", deps.Sessions.StreamAudio)
	}

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(deps.Auth.Middleware())
	{
		datasetRoutes := adminRoutes.Group("/numbers/datasets")
		{
			datasetRoutes.POST("", deps.Datasets.GenerateDataset)
			datasetRoutes.GET("", deps.Datasets.ListDatasets)
			datasetRoutes.GET("/:version", deps.Datasets.GetDataset)
		}
	}

	return router
}
