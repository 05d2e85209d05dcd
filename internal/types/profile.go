package types

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of plan dates, matching a native date input.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
type Date time.Time

// NewDate builds a Date from a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string. An empty string yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(t), nil
}

// IsZero reports whether the date was left blank.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// String renders the date in wire format, or "" when blank.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MacroRatios holds the share of daily calories per macronutrient.
type MacroRatios struct {
	Protein       *float64 `json:"protein" yaml:"protein"`
	Fat           *float64 `json:"fat" yaml:"fat"`
	Carbohydrates *float64 `json:"carbohydrates" yaml:"carbohydrates"`
}

// MicroNutrientRequirements holds daily micronutrient targets.
// Vitamins A and B are in mcg, vitamin C and iron in mg.
type MicroNutrientRequirements struct {
	VitaminA *float64 `json:"vitaminA" yaml:"vitaminA"`
	VitaminB *float64 `json:"vitaminB" yaml:"vitaminB"`
	VitaminC *float64 `json:"vitaminC" yaml:"vitaminC"`
	Iron     *float64 `json:"iron" yaml:"iron"`
}

// UserProfile is the demographic and dietary data collected by the plan form.
// Numbers are pointers because a form input may be left blank. No cross-field
// rules are enforced here; the generation service sees whatever the user typed.
type UserProfile struct {
	From                      Date                      `json:"from" yaml:"from"`
	To                        Date                      `json:"to" yaml:"to"`
	Age                       *int                      `json:"age" yaml:"age"`
	Gender                    string                    `json:"gender" yaml:"gender"`
	Country                   string                    `json:"country" yaml:"country"`
	Gastronomy                string                    `json:"gastronomy" yaml:"gastronomy"`
	Height                    *float64                  `json:"height" yaml:"height"`
	Weight                    *float64                  `json:"weight" yaml:"weight"`
	ActivityLevel             string                    `json:"activityLevel" yaml:"activityLevel"`
	DietaryRestrictions       []string                  `json:"dietaryRestrictions" yaml:"dietaryRestrictions"`
	Goals                     []string                  `json:"goals" yaml:"goals"`
	HealthConditions          []string                  `json:"healthConditions" yaml:"healthConditions"`
	FoodPreferences           []string                  `json:"foodPreferences" yaml:"foodPreferences"`
	DailyCalorieIntake        *int                      `json:"dailyCalorieIntake" yaml:"dailyCalorieIntake"`
	MacroRatios               MacroRatios               `json:"macroRatios" yaml:"macroRatios"`
	MicroNutrientRequirements MicroNutrientRequirements `json:"microNutrientRequirements" yaml:"microNutrientRequirements"`
}

// DefaultProfile returns the values the form starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		From:                NewDate(2023, time.January, 1),
		To:                  NewDate(2023, time.December, 1),
		Age:                 Int(35),
		Gender:              "male",
		Country:             "dominican republic",
		Gastronomy:          "dominican",
		Height:              Float(170),
		Weight:              Float(70),
		ActivityLevel:       "moderate",
		DietaryRestrictions: []string{"vegetarian"},
		Goals:               []string{"weight loss"},
		HealthConditions:    []string{"diabetes"},
		FoodPreferences:     []string{"vegetables", "grains"},
		DailyCalorieIntake:  Int(2000),
		MacroRatios: MacroRatios{
			Protein:       Float(0.3),
			Fat:           Float(0.3),
			Carbohydrates: Float(0.4),
		},
		MicroNutrientRequirements: MicroNutrientRequirements{
			VitaminA: Float(700),
			VitaminB: Float(200),
			VitaminC: Float(90),
			Iron:     Float(8),
		},
	}
}

// Clone returns a deep copy so callers can mutate lists without aliasing.
func (p UserProfile) Clone() UserProfile {
	c := p
	c.DietaryRestrictions = cloneStrings(p.DietaryRestrictions)
	c.Goals = cloneStrings(p.Goals)
	c.HealthConditions = cloneStrings(p.HealthConditions)
	c.FoodPreferences = cloneStrings(p.FoodPreferences)
	c.Age = cloneInt(p.Age)
	c.DailyCalorieIntake = cloneInt(p.DailyCalorieIntake)
	c.Height = cloneFloat(p.Height)
	c.Weight = cloneFloat(p.Weight)
	c.MacroRatios = MacroRatios{
		Protein:       cloneFloat(p.MacroRatios.Protein),
		Fat:           cloneFloat(p.MacroRatios.Fat),
		Carbohydrates: cloneFloat(p.MacroRatios.Carbohydrates),
	}
	c.MicroNutrientRequirements = MicroNutrientRequirements{
		VitaminA: cloneFloat(p.MicroNutrientRequirements.VitaminA),
		VitaminB: cloneFloat(p.MicroNutrientRequirements.VitaminB),
		VitaminC: cloneFloat(p.MicroNutrientRequirements.VitaminC),
		Iron:     cloneFloat(p.MicroNutrientRequirements.Iron),
	}
	return c
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}
