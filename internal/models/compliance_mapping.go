package models

// Compliance framework keys, in matrix column order.
const (
	FrameworkSR117    = "SR 11-7"
	FrameworkNIST6001 = "NIST AI 600-1"
	FrameworkOWASPLLM = "OWASP LLM Top 10"
	FrameworkFINRA    = "FINRA"
)

var Frameworks = []string{FrameworkSR117, FrameworkNIST6001, FrameworkOWASPLLM, FrameworkFINRA}

// ComplianceMapping ties a model (by name) to the controls it maps to in each framework.
type ComplianceMapping struct {
	ID        uint       `gorm:"primarykey" json:"-" yaml:"-"`
	ModelName string     `gorm:"uniqueIndex;not null" json:"model_name" yaml:"model" validate:"required"`
	SR117     StringList `gorm:"column:sr_11_7;type:text" json:"sr_11_7" yaml:"sr_11_7"`
	NIST6001  StringList `gorm:"column:nist_600_1;type:text" json:"nist_600_1" yaml:"nist_600_1"`
	OWASPLLM  StringList `gorm:"column:owasp_llm;type:text" json:"owasp_llm" yaml:"owasp_llm"`
	FINRA     StringList `gorm:"column:finra;type:text" json:"finra" yaml:"finra"`
}

func (ComplianceMapping) TableName() string {
	return "compliance_mappings"
}

// ByFramework returns the tags keyed by framework display name.
func (c ComplianceMapping) ByFramework() map[string]StringList {
	return map[string]StringList{
		FrameworkSR117:    c.SR117,
		FrameworkNIST6001: c.NIST6001,
		FrameworkOWASPLLM: c.OWASPLLM,
		FrameworkFINRA:    c.FINRA,
	}
}

// TagCount is the number of mapped controls across all frameworks.
func (c ComplianceMapping) TagCount() int {
	return len(c.SR117) + len(c.NIST6001) + len(c.OWASPLLM) + len(c.FINRA)
}
