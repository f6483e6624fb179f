package models

type RiskTier string

const (
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

// RiskTiers lists the tiers in display order, most severe first.
var RiskTiers = []RiskTier{RiskTierCritical, RiskTierHigh, RiskTierMedium, RiskTierLow}

type LifecycleStatus string

const (
	LifecycleStatusDraft      LifecycleStatus = "draft"
	LifecycleStatusTesting    LifecycleStatus = "testing"
	LifecycleStatusMonitoring LifecycleStatus = "monitoring"
	LifecycleStatusCertified  LifecycleStatus = "certified"
)

var LifecycleStatuses = []LifecycleStatus{
	LifecycleStatusDraft,
	LifecycleStatusTesting,
	LifecycleStatusMonitoring,
	LifecycleStatusCertified,
}

// IsCertified is true for models that passed certification, including those now under monitoring.
func (s LifecycleStatus) IsCertified() bool {
	return s == LifecycleStatusCertified || s == LifecycleStatusMonitoring
}

type DataClassification string

const (
	DataClassificationInternal     DataClassification = "internal"
	DataClassificationConfidential DataClassification = "confidential"
	DataClassificationPII          DataClassification = "pii"
)

type ModelCategory string

const (
	ModelCategoryExtraction     ModelCategory = "extraction"
	ModelCategorySummarization  ModelCategory = "summarization"
	ModelCategoryGeneration     ModelCategory = "generation"
	ModelCategoryAnalysis       ModelCategory = "analysis"
	ModelCategoryClassification ModelCategory = "classification"
)

// CanaryPrompt is a fixed prompt replayed by monitoring with an expected fragment in the answer.
type CanaryPrompt struct {
	Prompt           string `json:"prompt" yaml:"prompt"`
	ExpectedContains string `json:"expected_contains" yaml:"expected_contains"`
}

type MonitoringConfig struct {
	Cadence       string             `json:"cadence" yaml:"cadence" validate:"omitempty,oneof=daily weekly monthly"`
	Thresholds    map[string]float64 `json:"thresholds" yaml:"thresholds"`
	CanaryPrompts []CanaryPrompt     `json:"canary_prompts" yaml:"canary_prompts"`
	LastExecution Date               `json:"last_execution" yaml:"last_execution"`
	DriftDetected bool               `json:"drift_detected" yaml:"drift_detected"`
}

// GovernedModel is one row of the model inventory.
type GovernedModel struct {
	ID         uint   `gorm:"primarykey" json:"-" yaml:"-"`
	Position   int    `gorm:"not null;default:0" json:"-" yaml:"-"`
	Identifier string `gorm:"uniqueIndex;not null" json:"id" yaml:"id" validate:"required"`
	Name       string `gorm:"uniqueIndex;not null" json:"name" yaml:"name" validate:"required"`
	Version    string `json:"version" yaml:"version" validate:"required"`
	Vendor     string `json:"vendor" yaml:"vendor" validate:"required"`

	Description string `json:"description" yaml:"description"`
	Methodology string `json:"methodology" yaml:"methodology"`
	BaseModel   string `json:"base_model" yaml:"base_model" validate:"required"`

	Category        ModelCategory   `gorm:"index" json:"category" yaml:"category" validate:"required,oneof=extraction summarization generation analysis classification"`
	RiskTier        RiskTier        `gorm:"index" json:"risk_tier" yaml:"risk_tier" validate:"required,oneof=low medium high critical"`
	LifecycleStatus LifecycleStatus `gorm:"index" json:"status" yaml:"status" validate:"required,oneof=draft testing monitoring certified"`

	UsesRAG              bool               `json:"uses_rag" yaml:"uses_rag"`
	UsesStructuredOutput bool               `json:"uses_structured_output" yaml:"uses_structured_output"`
	ClientFacing         bool               `json:"client_facing" yaml:"client_facing"`
	HandlesPII           bool               `json:"handles_pii" yaml:"handles_pii"`
	DataClassification   DataClassification `json:"data_classification" yaml:"data_classification" validate:"required,oneof=internal confidential pii"`

	Owner               string `json:"owner" yaml:"owner" validate:"required"`
	BusinessUnit        string `json:"business_unit" yaml:"business_unit"`
	CommitteePath       string `json:"committee_path" yaml:"committee_path"`
	CertificationDate   Date   `json:"certification_date" yaml:"certification_date"`
	NextRecertification Date   `json:"next_recertification" yaml:"next_recertification"`

	PassRate      float64 `json:"pass_rate" yaml:"pass_rate" validate:"gte=0,lte=1"`
	OpenFindings  int     `json:"open_findings" yaml:"open_findings" validate:"gte=0"`
	TotalFindings int     `json:"total_findings" yaml:"total_findings" validate:"gte=0"`

	Monitoring MonitoringConfig `gorm:"serializer:json" json:"monitoring" yaml:"monitoring"`
}

// TableName overrides the table name
func (GovernedModel) TableName() string {
	return "governed_models"
}
