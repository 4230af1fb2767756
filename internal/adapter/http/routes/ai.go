package routes

import "github.com/gin-gonic/gin"

const PathAI = "/ai"

func addAIRoutes(rg *gin.RouterGroup, h Handlers) {
	ai := rg.Group(PathAI)
	{
		ai.GET("", h.AI.ListFlows)
		ai.POST("/:flow", h.AI.RunFlow)
		ai.POST("/:flow/stream", h.AI.StreamFlow)
	}
}
