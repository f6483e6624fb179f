// Package fixtures loads the governance inventory that ships with the binary.
//
// The data is embedded YAML, validated once at start-up and then treated as
// read-only configuration. Seed copies it into the database so the API layer
// can query it like any other table.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"

	"wm-genai-governance/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed registry.yaml
var registryYAML []byte

//go:embed demos.yaml
var demosYAML []byte

// Set is the complete, validated fixture data in declaration order.
type Set struct {
	Models      []models.GovernedModel     `yaml:"models"`
	Compliance  []models.ComplianceMapping `yaml:"compliance"`
	Evaluations []models.EvaluationRun     `yaml:"evaluations"`
	Demos       []models.DemoDefinition    `yaml:"demos"`
}

// Load parses and validates the embedded fixtures.
func Load() (*Set, error) {
	return Parse(registryYAML, demosYAML)
}

// Parse decodes registry and demo documents and validates the result.
func Parse(registry, demos []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(registry, &set); err != nil {
		return nil, fmt.Errorf("failed to parse registry fixtures: %w", err)
	}

	var demoDoc struct {
		Demos []models.DemoDefinition `yaml:"demos"`
	}
	if err := yaml.Unmarshal(demos, &demoDoc); err != nil {
		return nil, fmt.Errorf("failed to parse demo fixtures: %w", err)
	}
	set.Demos = demoDoc.Demos

	for i := range set.Models {
		set.Models[i].Position = i
	}
	for i := range set.Demos {
		set.Demos[i].Position = i
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Validate checks every record and the references between tables.
func (s *Set) Validate() error {
	if len(s.Models) == 0 {
		return errors.New("fixtures: no models defined")
	}
	if len(s.Demos) == 0 {
		return errors.New("fixtures: no demo definitions")
	}

	ids := make(map[string]bool, len(s.Models))
	names := make(map[string]bool, len(s.Models))
	for _, m := range s.Models {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("model %q: %w", m.Identifier, err)
		}
		if ids[m.Identifier] {
			return fmt.Errorf("model %q: duplicate identifier", m.Identifier)
		}
		if names[m.Name] {
			return fmt.Errorf("model %q: duplicate name %q", m.Identifier, m.Name)
		}
		ids[m.Identifier] = true
		names[m.Name] = true
	}

	mapped := make(map[string]bool, len(s.Compliance))
	for _, c := range s.Compliance {
		if err := models.ValidateRecord(c); err != nil {
			return fmt.Errorf("compliance mapping %q: %w", c.ModelName, err)
		}
		if !names[c.ModelName] {
			return fmt.Errorf("compliance mapping references unknown model %q", c.ModelName)
		}
		if mapped[c.ModelName] {
			return fmt.Errorf("compliance mapping for %q defined twice", c.ModelName)
		}
		mapped[c.ModelName] = true
	}

	for i, e := range s.Evaluations {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("evaluation #%d (%s/%s): %w", i+1, e.ModelName, e.Category, err)
		}
		if !names[e.ModelName] {
			return fmt.Errorf("evaluation #%d references unknown model %q", i+1, e.ModelName)
		}
	}

	demoIDs := make(map[string]bool, len(s.Demos))
	for _, d := range s.Demos {
		if err := models.ValidateRecord(d); err != nil {
			return fmt.Errorf("demo %q: %w", d.ID, err)
		}
		if demoIDs[d.ID] {
			return fmt.Errorf("demo %q: duplicate id", d.ID)
		}
		demoIDs[d.ID] = true
	}
	return nil
}

// Seed writes the fixtures into empty tables inside one transaction.
func Seed(db *gorm.DB, s *Set) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&s.Models).Error; err != nil {
			return fmt.Errorf("seed models: %w", err)
		}
		if len(s.Compliance) > 0 {
			if err := tx.Create(&s.Compliance).Error; err != nil {
				return fmt.Errorf("seed compliance mappings: %w", err)
			}
		}
		if len(s.Evaluations) > 0 {
			if err := tx.Create(&s.Evaluations).Error; err != nil {
				return fmt.Errorf("seed evaluations: %w", err)
			}
		}
		if err := tx.Create(&s.Demos).Error; err != nil {
			return fmt.Errorf("seed demos: %w", err)
		}
		return nil
	})
}
