package flow

// Details describes a plugin to the engine's UI and loader.
type Details struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Style           Style          `json:"style"`
	Tags            string         `json:"tags"`
	IsStartPlugin   bool           `json:"isStartPlugin"`
	PType           string         `json:"pType"`
	RequiresVersion string         `json:"requiresVersion"`
	SidebarPosition int            `json:"sidebarPosition"`
	Icon            string         `json:"icon"`
	Inputs          []InputDetail  `json:"inputs"`
	Outputs         []OutputDetail `json:"outputs"`
}

// Style controls how the plugin node is drawn.
type Style struct {
	BorderColor string `json:"borderColor"`
}

// InputDetail declares one configurable plugin input.
type InputDetail struct {
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	Type         string  `json:"type"`
	DefaultValue string  `json:"defaultValue"`
	InputUI      InputUI `json:"inputUI"`
	Tooltip      string  `json:"tooltip"`
}

// InputUI selects the widget used to edit an input.
type InputUI struct {
	Type              string             `json:"type"`
	SliderOptions     *SliderOptions     `json:"sliderOptions,omitempty"`
	DisplayConditions *DisplayConditions `json:"displayConditions,omitempty"`
}

// SliderOptions bounds a slider widget.
type SliderOptions struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DisplayConditions hide an input unless the condition sets hold.
type DisplayConditions struct {
	Logic string         `json:"logic"`
	Sets  []ConditionSet `json:"sets"`
}

// ConditionSet groups input comparisons under one logic operator.
type ConditionSet struct {
	Logic  string           `json:"logic"`
	Inputs []InputCondition `json:"inputs"`
}

// InputCondition compares another input's value.
type InputCondition struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Condition string `json:"condition"`
}

// OutputDetail declares one output route.
type OutputDetail struct {
	Number  int    `json:"number"`
	Tooltip string `json:"tooltip"`
}

// Input returns the declared input called name.
func (d Details) Input(name string) (InputDetail, bool) {
	for _, input := range d.Inputs {
		if input.Name == name {
			return input, true
		}
	}
	return InputDetail{}, false
}
