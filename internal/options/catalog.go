package options

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLanguage is the language selected when the form opens or resets.
	DefaultLanguage = "English"
	// DefaultVibe is the goal selected when the form opens or resets.
	DefaultVibe = "I want to lose weight"
	// Placeholder is shown by a widget with no selection.
	Placeholder = "Select an option..."
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// Entry decodes one catalog item, accepting either a YAML scalar or a
// mapping with value and label keys.
type Entry struct {
	Option
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return fmt.Errorf("line %d: empty option", node.Line)
		}
		e.Option = StringOption(node.Value)
		return nil
	case yaml.MappingNode:
		var pair struct {
			Value string `yaml:"value"`
			Label string `yaml:"label"`
		}
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if pair.Value == "" {
			return fmt.Errorf("line %d: option is missing a value", node.Line)
		}
		e.Option = LabeledOption{Value: pair.Value, Label: pair.Label}
		return nil
	default:
		return fmt.Errorf("line %d: option must be a string or a value/label mapping", node.Line)
	}
}

// Catalog holds the normalized choices for the language and vibe widgets.
type Catalog struct {
	Languages []Choice `json:"languages"`
	Vibes     []Choice `json:"vibes"`
}

// ParseList decodes a YAML sequence of options and normalizes it.
func ParseList(data []byte) ([]Choice, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}
	opts := make([]Option, len(entries))
	for i, e := range entries {
		opts[i] = e.Option
	}
	return Normalize(opts), nil
}

// LoadCatalog reads the embedded language and vibe catalogs.
func LoadCatalog() (*Catalog, error) {
	languages, err := loadList("catalogs/languages.yaml")
	if err != nil {
		return nil, err
	}
	vibes, err := loadList("catalogs/vibes.yaml")
	if err != nil {
		return nil, err
	}
	return &Catalog{Languages: languages, Vibes: vibes}, nil
}

func loadList(name string) ([]Choice, error) {
	data, err := catalogFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	choices, err := ParseList(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return choices, nil
}
