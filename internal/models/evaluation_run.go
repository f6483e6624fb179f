package models

import (
	"math"

	"gorm.io/datatypes"
)

// Known evaluation categories. The set is open; fixtures may add others.
const (
	EvalQualityCorrectness = "quality_correctness"
	EvalSafetySecurity     = "safety_security"
	EvalRAGGroundedness    = "rag_groundedness"
	EvalPIIRedaction       = "pii_redaction"
	EvalFactVerification   = "fact_verification"
	EvalFalsePositiveRate  = "false_positive_rate"
)

// PassRateTolerance is the allowed gap between a recorded pass rate and passed/run.
const PassRateTolerance = 0.01

type EvaluationRun struct {
	ID          uint              `gorm:"primarykey" json:"-" yaml:"-"`
	ModelName   string            `gorm:"index;not null" json:"model_name" yaml:"model" validate:"required"`
	Category    string            `gorm:"index;not null" json:"category" yaml:"category" validate:"required"`
	TestsRun    int               `json:"tests_run" yaml:"tests_run" validate:"gt=0"`
	TestsPassed int               `json:"tests_passed" yaml:"tests_passed" validate:"gte=0,ltefield=TestsRun"`
	PassRate    float64           `json:"pass_rate" yaml:"pass_rate" validate:"gte=0,lte=1"`
	RunDate     Date              `json:"run_date" yaml:"run_date"`
	Details     datatypes.JSONMap `gorm:"type:text" json:"details,omitempty" yaml:"details"`
}

func (EvaluationRun) TableName() string {
	return "evaluation_runs"
}

func (e EvaluationRun) Failed() int {
	return e.TestsRun - e.TestsPassed
}

// ComputedPassRate is passed/run, or 0 for an empty run.
func (e EvaluationRun) ComputedPassRate() float64 {
	if e.TestsRun <= 0 {
		return 0
	}
	return float64(e.TestsPassed) / float64(e.TestsRun)
}

// PassRateConsistent reports whether the recorded pass rate matches passed/run.
func (e EvaluationRun) PassRateConsistent() bool {
	return math.Abs(e.PassRate-e.ComputedPassRate()) < PassRateTolerance
}
