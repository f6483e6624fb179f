package governance

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/governance")
	{
		group.GET("/summary", GetSummary)
		group.GET("/models", GetModels)
		group.GET("/models/:id", GetModel)
		group.GET("/compliance", GetComplianceMatrix)
		group.GET("/evaluations", GetEvaluations)
		group.GET("/findings", GetFindings)
	}
}
