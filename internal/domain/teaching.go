package domain

import "gopkg.in/yaml.v3"

const (
	RoleTeachingAssistant = "Teaching Assistant"
	RoleResearchMentor    = "Research Mentor"
)

// TeachingEntry is one item of the résumé teaching section.
// Mentorship entries leave Course and Level empty.
type TeachingEntry struct {
	Role         string `yaml:"role"`
	Course       string `yaml:"course,omitempty"`
	Level        string `yaml:"level,omitempty"`
	Organization string `yaml:"organization"`
	Duration     string `yaml:"duration"`
	Description  string `yaml:"description"`
}

// IsCourse reports whether the entry describes a taught course.
func (e TeachingEntry) IsCourse() bool {
	return e.Course != ""
}

// MarshalYAML keeps keys in a fixed order and always emits level for
// course entries, even when it is empty.
func (e TeachingEntry) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k, v string) {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	}
	add("role", e.Role)
	if e.IsCourse() {
		add("course", e.Course)
		add("level", e.Level)
	}
	add("organization", e.Organization)
	add("duration", e.Duration)
	add("description", e.Description)
	return n, nil
}

// TeachingDoc is the top-level YAML document.
type TeachingDoc struct {
	Teaching []TeachingEntry `yaml:"teaching"`
}
