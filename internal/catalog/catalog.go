package catalog

// Option is one choice in a profile select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field groups the options for one select in the profile form.
type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}

var fields = []Field{
	{
		Name:  "gender",
		Label: "Gender",
		Options: []Option{
			{Value: "male", Label: "Male"},
			{Value: "female", Label: "Female"},
			{Value: "other", Label: "Other"},
		},
	},
	{
		Name:  "goal",
		Label: "Fitness Goal",
		Options: []Option{
			{Value: "weight-loss", Label: "Weight Loss"},
			{Value: "muscle-gain", Label: "Muscle Gain"},
			{Value: "general-fitness", Label: "General Fitness"},
		},
	},
	{
		Name:  "level",
		Label: "Level",
		Options: []Option{
			{Value: "beginner", Label: "Beginner"},
			{Value: "intermediate", Label: "Intermediate"},
			{Value: "advanced", Label: "Advanced"},
		},
	},
	{
		Name:  "location",
		Label: "Workout Location",
		Options: []Option{
			{Value: "home", Label: "Home"},
			{Value: "gym", Label: "Gym"},
			{Value: "outdoor", Label: "Outdoor"},
		},
	},
	{
		Name:  "diet",
		Label: "Diet Preference",
		Options: []Option{
			{Value: "veg", Label: "Vegetarian"},
			{Value: "non-veg", Label: "Non-Vegetarian"},
			{Value: "vegan", Label: "Vegan"},
			{Value: "keto", Label: "Keto"},
		},
	},
}

// Fields returns the select fields in form order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func field(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Label returns the display label for a field value, or the value itself when unknown.
func Label(name, value string) string {
	f, ok := field(name)
	if !ok {
		return value
	}
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
