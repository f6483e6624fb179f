package models

// DemoDefinition points the demo page at one scoring endpoint and its expected input shape.
type DemoDefinition struct {
	ID          string `gorm:"primarykey" json:"id" yaml:"id" validate:"required"`
	Position    int    `gorm:"not null;default:0" json:"-" yaml:"-"`
	Name        string `gorm:"not null" json:"name" yaml:"name" validate:"required"`
	Endpoint    string `gorm:"not null" json:"endpoint" yaml:"endpoint" validate:"required,startswith=/"`
	InputLabel  string `json:"input_label" yaml:"input_label" validate:"required"`
	InputKey    string `gorm:"not null" json:"input_key" yaml:"input_key" validate:"required"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

func (DemoDefinition) TableName() string {
	return "demo_definitions"
}
