package governance

import (
	"errors"
	"net/http"
	"time"

	"wm-genai-governance/internal/models"
	"wm-genai-governance/internal/services"
	"wm-genai-governance/internal/utils"
	"wm-genai-governance/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetSummary returns the portfolio governance summary.
func GetSummary(c *gin.Context) {
	summary, err := services.GetGovernanceSummary(time.Now())
	if err != nil {
		internalError(c, "Failed to build summary", err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", summary))
}

// GetModels lists governed models, narrowed by the query filters.
func GetModels(c *gin.Context) {
	var q ModelListQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}

	list, err := services.ListModels(services.ModelFilter{
		RiskTier: q.RiskTier,
		Status:   q.Status,
		Category: q.Category,
		Name:     q.Name,
	})
	if err != nil {
		internalError(c, "Failed to fetch models", err)
		return
	}
	if list == nil {
		list = []models.GovernedModel{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ModelListResponse{
		Models: list,
		Total:  len(list),
	}))
}

// GetModel returns one model with its compliance mapping and evaluations.
func GetModel(c *gin.Context) {
	detail, err := services.GetModelDetail(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrModelNotFound) {
			utils.Fail(c, http.StatusNotFound, "Model not found")
			return
		}
		internalError(c, "Failed to fetch model", err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", detail))
}

func GetComplianceMatrix(c *gin.Context) {
	rows, err := services.ComplianceMatrix()
	if err != nil {
		internalError(c, "Failed to build compliance matrix", err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ComplianceMatrixResponse{
		Frameworks: models.Frameworks,
		Models:     rows,
	}))
}

func GetEvaluations(c *gin.Context) {
	var q EvaluationListQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}

	evals, err := services.ListEvaluations(q.Model)
	if err != nil {
		internalError(c, "Failed to fetch evaluations", err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", EvaluationListResponse{
		Evaluations: evals,
		Total:       len(evals),
	}))
}

func GetFindings(c *gin.Context) {
	rows, err := services.ListFindings()
	if err != nil {
		internalError(c, "Failed to fetch findings", err)
		return
	}

	resp := FindingsResponse{Findings: rows}
	for _, r := range rows {
		resp.TotalOpenFindings += r.OpenFindings
		resp.TotalFindings += r.TotalFindings
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", resp))
}

func internalError(c *gin.Context, message string, err error) {
	logger.Named("governance").Error(message, zap.Error(err), zap.String("path", c.FullPath()))
	utils.Fail(c, http.StatusInternalServerError, message)
}
