package alert

// Pair is the valueName/value shape shared by geocode, parameter and
// eventCode elements.
type Pair struct {
	ValueName string `json:"valueName" yaml:"valueName"`
	Value     string `json:"value" yaml:"value"`
}

// Geocode identifies an Area with a value from a named coding scheme
type Geocode Pair

// Parameter is a system-specific additional parameter of an Info
type Parameter Pair

// EventCode is a system-specific code identifying the event type
type EventCode Pair
