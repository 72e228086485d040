package construct

import "fmt"

// Documented defaults substituted for absent Options fields.
const (
	DefaultDoors = 4
	DefaultColor = "silver"
	DefaultState = "brand new"
)

// Options is the input record for the initializers.
//
// Zero-valued fields are treated as absent and receive the documented
// defaults; Model, Year and Miles pass through as given.
type Options struct {
	Model string
	Year  int
	Miles int
	Doors int
	Color string
	State string
}

// withDefaults returns opts with defaults substituted for absent fields.
func withDefaults(opts Options) Options {
	if opts.Doors == 0 {
		opts.Doors = DefaultDoors
	}
	if opts.Color == "" {
		opts.Color = DefaultColor
	}
	if opts.State == "" {
		opts.State = DefaultState
	}
	return opts
}

// Car is an instance produced by NewCar.
//
// Fields are fixed at construction; Describe is a method on the type, so all
// cars share the single program-wide copy of the behavior.
type Car struct {
	Model string
	Year  int
	Miles int
	Doors int
	Color string
	State string
}

// NewCar constructs a new independent Car from opts, substituting the
// documented defaults for absent fields.
func NewCar(opts Options) *Car {
	opts = withDefaults(opts)
	return &Car{
		Model: opts.Model,
		Year:  opts.Year,
		Miles: opts.Miles,
		Doors: opts.Doors,
		Color: opts.Color,
		State: opts.State,
	}
}

// NewCarStrict is NewCar for callers who consider an absent Model a wiring
// mistake rather than something to default: it returns MissingFieldError
// instead of constructing. Doors, Color and State still get their documented
// defaults.
func NewCarStrict(opts Options) (*Car, error) {
	if opts.Model == "" {
		return nil, MissingFieldError{Field: "Model"}
	}
	return NewCar(opts), nil
}

// Describe is the computed presentation operation.
func (c *Car) Describe() string {
	return fmt.Sprintf("%s (%d) has done %d miles", c.Model, c.Year, c.Miles)
}

// SelfContained is the closure form of Car: the presentation behavior is a
// function value bound to the instance at construction, so every instance
// carries its own copy.
type SelfContained struct {
	Model string
	Year  int
	Miles int
	Doors int
	Color string
	State string

	// Describe is bound by NewSelfContained and closes over the instance.
	Describe func() string
}

// NewSelfContained constructs a new independent instance whose Describe is a
// per-instance closure. Output matches (*Car).Describe for the same inputs.
func NewSelfContained(opts Options) *SelfContained {
	opts = withDefaults(opts)
	v := &SelfContained{
		Model: opts.Model,
		Year:  opts.Year,
		Miles: opts.Miles,
		Doors: opts.Doors,
		Color: opts.Color,
		State: opts.State,
	}
	v.Describe = func() string {
		return fmt.Sprintf("%s (%d) has done %d miles", v.Model, v.Year, v.Miles)
	}
	return v
}
