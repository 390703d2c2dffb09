package catalog

// Radius is a corner radius CSS length applied as --radius.
type Radius string

// DefaultRadius is used when nothing has been selected.
const DefaultRadius Radius = "0.5rem"

// RadiusOption pairs a radius with its short label.
type RadiusOption struct {
	Name  string `json:"name"`
	Value Radius `json:"value"`
}

var radiusOptions = []RadiusOption{
	{Name: "0", Value: "0rem"},
	{Name: "0.3", Value: "0.3rem"},
	{Name: "0.5", Value: "0.5rem"},
	{Name: "0.75", Value: "0.75rem"},
	{Name: "1.0", Value: "1rem"},
}

// RadiusOptions returns the selectable radii in ascending order.
func RadiusOptions() []RadiusOption {
	out := make([]RadiusOption, len(radiusOptions))
	copy(out, radiusOptions)
	return out
}

// ValidRadius reports whether r is one of the enumerated options.
func ValidRadius(r Radius) bool {
	for _, o := range radiusOptions {
		if o.Value == r {
			return true
		}
	}
	return false
}
