package demo

import (
	"context"
	"errors"
	"net/http"

	"wm-genai-governance/internal/middleware"
	"wm-genai-governance/internal/services"
	"wm-genai-governance/internal/utils"
	"wm-genai-governance/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ListDemos(c *gin.Context) {
	demos, err := services.ListDemoDefinitions()
	if err != nil {
		logger.Named("demo").Error("failed to list demos", zap.Error(err))
		utils.Fail(c, http.StatusInternalServerError, "Failed to fetch demos")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", DemoListResponse{Demos: demos}))
}

// CreateSession opens a session on the default demo.
func CreateSession(c *gin.Context) {
	s, err := services.DemoSessions.Create()
	if err != nil {
		logger.Named("demo").Error("failed to create demo session", zap.Error(err))
		utils.Fail(c, http.StatusInternalServerError, "Failed to create session")
		return
	}
	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Session created", s.Snapshot()))
}

func GetSession(c *gin.Context) {
	s := middleware.DemoSessionFromContext(c)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", s.Snapshot()))
}

func SelectDemo(c *gin.Context) {
	s := middleware.DemoSessionFromContext(c)

	var req SelectDemoRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := s.SelectDemo(req.DemoID); err != nil {
		if errors.Is(err, services.ErrUnknownDemo) {
			utils.Fail(c, http.StatusBadRequest, "Unknown demo: "+req.DemoID)
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Demo selected", s.Snapshot()))
}

func SetInput(c *gin.Context) {
	s := middleware.DemoSessionFromContext(c)

	var req SetInputRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	s.SetInput(*req.Text)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Input updated", s.Snapshot()))
}

// RunDemo sends the current input to the selected endpoint. It answers 202
// right away, or blocks and answers 200 with wait=true.
func RunDemo(c *gin.Context) {
	s := middleware.DemoSessionFromContext(c)

	if c.Query("wait") == "true" {
		// A run always completes, even when the caller gives up waiting.
		if _, err := s.Run(context.WithoutCancel(c.Request.Context())); err != nil {
			runError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Run complete", s.Snapshot()))
		return
	}

	// Detached from the request so the run outlives this handler.
	if err := s.RunAsync(context.Background(), nil); err != nil {
		runError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, utils.NewResponse(http.StatusAccepted, "Run dispatched", s.Snapshot()))
}

func DeleteSession(c *gin.Context) {
	if err := services.DemoSessions.Delete(c.Param("id")); err != nil {
		utils.Fail(c, http.StatusNotFound, "Session not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func runError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrRunInFlight) {
		utils.Fail(c, http.StatusConflict, "A run is already in flight for this session")
		return
	}
	utils.Fail(c, http.StatusInternalServerError, err.Error())
}
