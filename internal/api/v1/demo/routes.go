package demo

import (
	"wm-genai-governance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/demos", ListDemos)

	sessions := router.Group("/demo/sessions")
	sessions.POST("", CreateSession)

	session := sessions.Group("/:id")
	session.Use(middleware.LoadDemoSession())
	{
		session.GET("", GetSession)
		session.PUT("/demo", SelectDemo)
		session.PUT("/input", SetInput)
		session.POST("/run", RunDemo)
		session.DELETE("", DeleteSession)
	}
}
