package api

import (
	"net/http"

	"wm-genai-governance/internal/database"

	"github.com/gin-gonic/gin"
)

const serviceName = "wm-genai-models-governance"

// Health reports database reachability. The summary cache is optional and only reported.
func Health(c *gin.Context) {
	dbOK := database.Ping()

	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	cache := "disabled"
	if database.RedisClient != nil {
		cache = "ok"
		if err := database.RedisClient.Ping(c.Request.Context()).Err(); err != nil {
			cache = "unavailable"
		}
	}

	c.JSON(code, gin.H{
		"status":   status,
		"service":  serviceName,
		"database": dbOK,
		"cache":    cache,
	})
}
