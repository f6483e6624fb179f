package services

import (
	"errors"
	"strings"

	"wm-genai-governance/internal/database"
	"wm-genai-governance/internal/models"

	"gorm.io/gorm"
)

var ErrModelNotFound = errors.New("model not found")

// ModelFilter narrows the inventory listing. Empty fields match everything.
type ModelFilter struct {
	RiskTier string
	Status   string
	Category string
	Name     string
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ListModels returns the inventory in fixture order.
func ListModels(filter ModelFilter) ([]models.GovernedModel, error) {
	var list []models.GovernedModel

	query := database.DB.Model(&models.GovernedModel{})
	if filter.RiskTier != "" {
		query = query.Where("risk_tier = ?", filter.RiskTier)
	}
	if filter.Status != "" {
		query = query.Where("lifecycle_status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Name != "" {
		query = query.Where(`name LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(filter.Name)+"%")
	}

	if err := query.Order("position asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetModel looks a model up by its registry identifier.
func GetModel(identifier string) (*models.GovernedModel, error) {
	var m models.GovernedModel
	if err := database.DB.Where("identifier = ?", identifier).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	return &m, nil
}

// EvaluationView is an evaluation run with its derived failure count.
type EvaluationView struct {
	models.EvaluationRun
	Failed int `json:"failed"`
}

func newEvaluationViews(runs []models.EvaluationRun) []EvaluationView {
	views := make([]EvaluationView, 0, len(runs))
	for _, r := range runs {
		views = append(views, EvaluationView{EvaluationRun: r, Failed: r.Failed()})
	}
	return views
}

// ListEvaluations returns all runs, or only those of modelName when it is set.
func ListEvaluations(modelName string) ([]EvaluationView, error) {
	var runs []models.EvaluationRun
	query := database.DB.Model(&models.EvaluationRun{})
	if modelName != "" {
		query = query.Where("model_name = ?", modelName)
	}
	if err := query.Order("id asc").Find(&runs).Error; err != nil {
		return nil, err
	}
	return newEvaluationViews(runs), nil
}

// ModelDetail is one model with everything the registry knows about it.
type ModelDetail struct {
	Model       models.GovernedModel         `json:"model"`
	Compliance  map[string]models.StringList `json:"compliance"`
	Evaluations []EvaluationView             `json:"evaluations"`
}

func GetModelDetail(identifier string) (*ModelDetail, error) {
	m, err := GetModel(identifier)
	if err != nil {
		return nil, err
	}

	mapping, err := findComplianceMapping(m.Name)
	if err != nil {
		return nil, err
	}

	evals, err := ListEvaluations(m.Name)
	if err != nil {
		return nil, err
	}

	return &ModelDetail{
		Model:       *m,
		Compliance:  mapping.ByFramework(),
		Evaluations: evals,
	}, nil
}

// findComplianceMapping returns an empty mapping for models without one.
func findComplianceMapping(modelName string) (models.ComplianceMapping, error) {
	var mapping models.ComplianceMapping
	err := database.DB.Where("model_name = ?", modelName).First(&mapping).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ComplianceMapping{ModelName: modelName}, nil
	}
	return mapping, err
}

// ComplianceRow is one line of the compliance matrix.
type ComplianceRow struct {
	ID         string                       `json:"id"`
	Name       string                       `json:"name"`
	RiskTier   models.RiskTier              `json:"risk_tier"`
	Compliance map[string]models.StringList `json:"compliance"`
	TagCount   int                          `json:"tag_count"`
}

// ComplianceMatrix returns one row per model in inventory order.
func ComplianceMatrix() ([]ComplianceRow, error) {
	list, err := ListModels(ModelFilter{})
	if err != nil {
		return nil, err
	}

	var mappings []models.ComplianceMapping
	if err := database.DB.Find(&mappings).Error; err != nil {
		return nil, err
	}
	byModel := make(map[string]models.ComplianceMapping, len(mappings))
	for _, c := range mappings {
		byModel[c.ModelName] = c
	}

	rows := make([]ComplianceRow, 0, len(list))
	for _, m := range list {
		mapping, ok := byModel[m.Name]
		if !ok {
			mapping = models.ComplianceMapping{ModelName: m.Name}
		}
		rows = append(rows, ComplianceRow{
			ID:         m.Identifier,
			Name:       m.Name,
			RiskTier:   m.RiskTier,
			Compliance: mapping.ByFramework(),
			TagCount:   mapping.TagCount(),
		})
	}
	return rows, nil
}

// FindingsRow summarises audit findings for one model.
type FindingsRow struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	RiskTier      models.RiskTier        `json:"risk_tier"`
	Status        models.LifecycleStatus `json:"status"`
	OpenFindings  int                    `json:"open_findings"`
	TotalFindings int                    `json:"total_findings"`
}

func ListFindings() ([]FindingsRow, error) {
	list, err := ListModels(ModelFilter{})
	if err != nil {
		return nil, err
	}
	rows := make([]FindingsRow, 0, len(list))
	for _, m := range list {
		rows = append(rows, FindingsRow{
			ID:            m.Identifier,
			Name:          m.Name,
			RiskTier:      m.RiskTier,
			Status:        m.LifecycleStatus,
			OpenFindings:  m.OpenFindings,
			TotalFindings: m.TotalFindings,
		})
	}
	return rows, nil
}

// ListDemoDefinitions returns the demo panels in display order.
func ListDemoDefinitions() ([]models.DemoDefinition, error) {
	var demos []models.DemoDefinition
	if err := database.DB.Order("position asc").Find(&demos).Error; err != nil {
		return nil, err
	}
	return demos, nil
}
