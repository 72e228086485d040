package factory

import "sort"

// Registry maps discriminators to builders, with one designated default
// builder for unrecognized discriminators.
//
// A Registry is not safe for concurrent mutation; register everything up
// front, then share it freely for Build calls.
type Registry struct {
	builders map[Kind]Builder
	fallback Kind
}

// NewRegistry returns a registry preloaded with the car and truck builders.
//
// KindCar is the designated default: requests with unknown discriminators
// build a car.
func NewRegistry() *Registry {
	r := &Registry{
		builders: map[Kind]Builder{},
		fallback: KindCar,
	}
	r.MustRegister(KindCar, NewCar)
	r.MustRegister(KindTruck, NewTruck)
	return r
}

// Register binds a builder to a discriminator.
//
// It returns:
//   - ErrBlankKind for an empty discriminator
//   - ErrNilBuilder for a nil builder
//   - DuplicateKindError if the discriminator already has a builder
func (r *Registry) Register(kind Kind, b Builder) error {
	if kind == "" {
		return ErrBlankKind
	}
	if b == nil {
		return ErrNilBuilder
	}
	if _, exists := r.builders[kind]; exists {
		return DuplicateKindError{Kind: kind}
	}
	r.builders[kind] = b
	return nil
}

// MustRegister is Register, panicking on misuse, and returns the registry for
// chaining. Useful when wiring registries in package-level variables.
func (r *Registry) MustRegister(kind Kind, b Builder) *Registry {
	if err := r.Register(kind, b); err != nil {
		panic(err)
	}
	return r
}

// SetDefault designates the fallback builder for unknown discriminators.
//
// The kind must already be registered; otherwise UnknownKindError is
// returned.
func (r *Registry) SetDefault(kind Kind) error {
	if _, exists := r.builders[kind]; !exists {
		return UnknownKindError{Kind: kind}
	}
	r.fallback = kind
	return nil
}

// Build selects a builder by exact match on req.Kind and invokes it with the
// auxiliary fields.
//
// An unrecognized discriminator is not an error: Build silently falls back to
// the designated default builder.
func (r *Registry) Build(req Request) Vehicle {
	b, ok := r.builders[req.Kind]
	if !ok {
		b = r.builders[r.fallback]
	}
	return b(req)
}

// BuildStrict is Build without the fallback: an unrecognized discriminator
// returns UnknownKindError instead of defaulting.
func (r *Registry) BuildStrict(req Request) (Vehicle, error) {
	b, ok := r.builders[req.Kind]
	if !ok {
		return nil, UnknownKindError{Kind: req.Kind}
	}
	return b(req), nil
}

// Kinds returns the registered discriminators in sorted order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.builders))
	for k := range r.builders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// defaultRegistry backs the package-level Build convenience.
var defaultRegistry = NewRegistry()

// Build invokes the package-level registry preloaded by NewRegistry.
func Build(req Request) Vehicle {
	return defaultRegistry.Build(req)
}
