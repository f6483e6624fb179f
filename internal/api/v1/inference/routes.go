package inference

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the demo model endpoints under <router>/models.
func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/models")
	{
		group.POST("/document-intelligence/extract", ExtractDocument)
		group.POST("/meeting-summarizer/summarize", SummarizeMeeting)
		group.POST("/portfolio-risk-narrator/generate", GenerateRiskNarrative)
		group.POST("/regulatory-change-detector/analyze", AnalyzeRegulation)
		group.POST("/compliance-checker/check", CheckCompliance)
	}
}
