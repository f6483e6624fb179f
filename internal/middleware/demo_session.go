package middleware

import (
	"net/http"

	"wm-genai-governance/internal/services"
	"wm-genai-governance/internal/utils"

	"github.com/gin-gonic/gin"
)

const demoSessionKey = "demo_session"

// LoadDemoSession resolves the :id path parameter to an open demo session
// and aborts with 404 when there is none.
func LoadDemoSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := services.DemoSessions.Get(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusNotFound, "Session not found")
			return
		}
		c.Set(demoSessionKey, s)
		c.Next()
	}
}

// DemoSessionFromContext returns the session stored by LoadDemoSession.
func DemoSessionFromContext(c *gin.Context) *services.DemoSession {
	return c.MustGet(demoSessionKey).(*services.DemoSession)
}
