package profile

import "strings"

// Answer formats recognized in the answer_format key.
const (
	AnswerFreeText   = "free_text"
	AnswerJSONSchema = "json_schema"
)

// DefaultRoleName is used when a config carries no role_name.
const DefaultRoleName = "AI Assistant"

// Values is an untyped configuration mapping as read from a profile or a
// user config file. Merging happens at this level so that unknown keys
// survive and replacement stays strictly per top-level key.
type Values map[string]any

// Spec is the typed view of a merged configuration consumed by the renderers.
// Every field is optional; the zero value renders the minimal prompt.
type Spec struct {
	RoleName        string    `mapstructure:"role_name" json:"role_name,omitempty" yaml:"role_name,omitempty"`
	Capabilities    []string  `mapstructure:"capabilities" json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	Constraints     []string  `mapstructure:"constraints" json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Style           Style     `mapstructure:"style" json:"style,omitempty" yaml:"style,omitempty"`
	Tooling         Tooling   `mapstructure:"tooling" json:"tooling,omitempty" yaml:"tooling,omitempty"`
	Goals           []string  `mapstructure:"goals" json:"goals,omitempty" yaml:"goals,omitempty"`
	UserConstraints []string  `mapstructure:"user_constraints" json:"user_constraints,omitempty" yaml:"user_constraints,omitempty"`
	FewShots        []FewShot `mapstructure:"few_shots" json:"few_shots,omitempty" yaml:"few_shots,omitempty"`
	SelfChecks      []string  `mapstructure:"self_checks" json:"self_checks,omitempty" yaml:"self_checks,omitempty"`
	AnswerFormat    string    `mapstructure:"answer_format" json:"answer_format,omitempty" yaml:"answer_format,omitempty"`
}

// Style holds response style preferences.
type Style struct {
	Verbosity            string   `mapstructure:"verbosity" json:"verbosity,omitempty" yaml:"verbosity,omitempty"`
	FormattingGuidelines []string `mapstructure:"formatting_guidelines" json:"formatting_guidelines,omitempty" yaml:"formatting_guidelines,omitempty"`
}

// Tooling describes the tools a model may call and how to use them.
type Tooling struct {
	Tools    []Tool   `mapstructure:"tools" json:"tools,omitempty" yaml:"tools,omitempty"`
	Guidance []string `mapstructure:"guidance" json:"guidance,omitempty" yaml:"guidance,omitempty"`
}

// Tool is a single tool description rendered into the system prompt.
type Tool struct {
	Name        string `mapstructure:"name" json:"name" yaml:"name"`
	Description string `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`
	WhenToUse   string `mapstructure:"when_to_use" json:"when_to_use,omitempty" yaml:"when_to_use,omitempty"`
}

// FewShot is a paired example used to prime the model.
type FewShot struct {
	User      string `mapstructure:"user" json:"user" yaml:"user"`
	Assistant string `mapstructure:"assistant" json:"assistant" yaml:"assistant"`
}

// EffectiveAnswerFormat returns the format the user message must request.
// A non-blank schema always selects JSON schema output, whatever the config says.
func (s Spec) EffectiveAnswerFormat(schema string) string {
	if strings.TrimSpace(schema) != "" {
		return AnswerJSONSchema
	}
	if s.AnswerFormat == "" {
		return AnswerFreeText
	}
	return s.AnswerFormat
}
