package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRecord checks struct tags on a single fixture record.
func ValidateRecord(record interface{}) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Validate checks the tag rules and the cross-field invariants of a model row.
func (m GovernedModel) Validate() error {
	if err := ValidateRecord(m); err != nil {
		return err
	}
	if m.OpenFindings > m.TotalFindings {
		return fmt.Errorf("open_findings (%d) exceeds total_findings (%d)", m.OpenFindings, m.TotalFindings)
	}
	if !m.NextRecertification.IsZero() {
		if m.CertificationDate.IsZero() {
			return errors.New("next_recertification set without certification_date")
		}
		if !m.NextRecertification.After(m.CertificationDate.Time) {
			return fmt.Errorf("next_recertification %s is not after certification_date %s",
				m.NextRecertification, m.CertificationDate)
		}
	}
	return nil
}

// Validate checks the tag rules and that the recorded pass rate matches passed/run.
func (e EvaluationRun) Validate() error {
	if err := ValidateRecord(e); err != nil {
		return err
	}
	if !e.PassRateConsistent() {
		return fmt.Errorf("pass_rate %.3f does not match %d/%d", e.PassRate, e.TestsPassed, e.TestsRun)
	}
	return nil
}
