package capsule

// RevealedBasket is the flattened export surface of a basket.
//
// Instead of methods on an exported type, the public names are function
// values bound directly to the internal routines when Reveal constructs the
// surface. The hidden basket behind the bindings is a package-local value no
// caller can name; the bound functions are the only way in.
//
// The behavioral contract is identical to Basket.
type RevealedBasket struct {
	AddItem func(name string, price float64)
	Count   func() int
	Total   func() float64
}

// Reveal constructs a fresh hidden basket and returns its flattened export
// surface.
//
// Each call reveals an independent basket; two revealed surfaces never share
// state.
func Reveal() RevealedBasket {
	b := &Basket{}
	return RevealedBasket{
		AddItem: b.AddItem,
		Count:   b.Count,
		Total:   b.Total,
	}
}

// RevealedCounter is the flattened export surface of a counter.
type RevealedCounter struct {
	Increment func() int
	Value     func() int
	Reset     func()
}

// RevealCounter constructs a fresh hidden counter and returns its flattened
// export surface.
func RevealCounter() RevealedCounter {
	c := &Counter{}
	return RevealedCounter{
		Increment: c.Increment,
		Value:     c.Value,
		Reset:     c.Reset,
	}
}
