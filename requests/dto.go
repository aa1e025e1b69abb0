package requests

// RequestDTO is the JSON/YAML representation of a [Request]
type RequestDTO struct {
	Op          string  `json:"op" yaml:"op"`
	Path        string  `json:"path" yaml:"path"`
	Destination *string `json:"destination,omitempty" yaml:"destination,omitempty"` // move only
	ID          *string `json:"id,omitempty" yaml:"id,omitempty"`                   // Optional ID for log correlation (Default random UUID)
}
