package factory

// Kind discriminates which builder produces a vehicle.
//
// Kinds are typically defined as package-level constants to avoid typos.
type Kind string

// Built-in kinds. KindCar is the designated default of NewRegistry.
const (
	KindCar   Kind = "car"
	KindTruck Kind = "truck"
)

// Request carries the discriminator plus the auxiliary construction fields.
//
// Zero-valued auxiliary fields receive per-builder defaults.
type Request struct {
	Kind      Kind
	Doors     int
	Color     string
	State     string
	WheelSize string
}

// Vehicle is produced by a registered builder and reports its own tag.
type Vehicle interface {
	VehicleKind() Kind
}

// Builder constructs a vehicle from the auxiliary request fields.
//
// Builders are total: they substitute defaults instead of failing.
type Builder func(Request) Vehicle

// Car defaults substituted by NewCar.
const (
	DefaultCarDoors = 4
	DefaultCarColor = "silver"
	DefaultCarState = "brand new"
)

// Car is the product of the car builder.
type Car struct {
	Doors int
	Color string
	State string
}

// VehicleKind implements Vehicle.
func (Car) VehicleKind() Kind { return KindCar }

// NewCar builds a car, substituting the documented defaults for absent
// fields.
func NewCar(req Request) Vehicle {
	c := Car{Doors: req.Doors, Color: req.Color, State: req.State}
	if c.Doors == 0 {
		c.Doors = DefaultCarDoors
	}
	if c.Color == "" {
		c.Color = DefaultCarColor
	}
	if c.State == "" {
		c.State = DefaultCarState
	}
	return c
}

// Truck defaults substituted by NewTruck.
const (
	DefaultTruckWheelSize = "large"
	DefaultTruckColor     = "blue"
	DefaultTruckState     = "used"
)

// Truck is the product of the truck builder.
type Truck struct {
	WheelSize string
	Color     string
	State     string
}

// VehicleKind implements Vehicle.
func (Truck) VehicleKind() Kind { return KindTruck }

// NewTruck builds a truck, substituting the documented defaults for absent
// fields.
func NewTruck(req Request) Vehicle {
	t := Truck{WheelSize: req.WheelSize, Color: req.Color, State: req.State}
	if t.WheelSize == "" {
		t.WheelSize = DefaultTruckWheelSize
	}
	if t.Color == "" {
		t.Color = DefaultTruckColor
	}
	if t.State == "" {
		t.State = DefaultTruckState
	}
	return t
}
