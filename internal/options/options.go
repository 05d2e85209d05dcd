// Package options models the choices offered by the plan form's selection
// widgets. A catalog entry is either a bare string or a value/label pair; both
// are normalized to a Choice before anything compares or deduplicates them.
package options

// Option is one entry of a selection list: a StringOption or a LabeledOption.
type Option interface {
	// Choice returns the canonical (value, label) pair for the option.
	Choice() Choice
}

// StringOption is an option whose value doubles as its label.
type StringOption string

// Choice implements Option.
func (o StringOption) Choice() Choice {
	return Choice{Value: string(o), Label: string(o)}
}

// LabeledOption is an option with a display label distinct from its value.
type LabeledOption struct {
	Value string
	Label string
}

// Choice implements Option.
func (o LabeledOption) Choice() Choice {
	return Choice{Value: o.Value, Label: o.Label}
}

// Choice is the canonical form of an option.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Normalize converts options to choices and drops duplicate values, keeping
// the first occurrence of each.
func Normalize(opts []Option) []Choice {
	choices := make([]Choice, 0, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		choices = append(choices, o.Choice())
	}
	return Dedupe(choices)
}

// Dedupe drops choices whose value already appeared earlier in the list.
func Dedupe(choices []Choice) []Choice {
	seen := make(map[string]struct{}, len(choices))
	out := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if _, ok := seen[c.Value]; ok {
			continue
		}
		seen[c.Value] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Find returns the choice with the given value.
func Find(choices []Choice, value string) (Choice, bool) {
	for _, c := range choices {
		if c.Value == value {
			return c, true
		}
	}
	return Choice{}, false
}

// DisplayLabel is what the closed widget shows: the selected choice's label,
// or the placeholder when nothing known is selected.
func DisplayLabel(choices []Choice, selected, placeholder string) string {
	if c, ok := Find(choices, selected); ok {
		return c.Label
	}
	return placeholder
}

// Toggle returns the new selection after picked is chosen. Picking the value
// that is already selected clears the selection.
func Toggle(current, picked string) string {
	if picked == current {
		return ""
	}
	return picked
}
