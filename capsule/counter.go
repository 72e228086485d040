package capsule

// Counter is the minimal encapsulated-state container: one hidden integer
// reachable only through Increment, Value and Reset.
type Counter struct {
	n int
}

// NewCounter constructs a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Increment bumps the hidden count and returns the new value.
func (c *Counter) Increment() int {
	c.n++
	return c.n
}

// Value returns the current count without mutating it.
func (c *Counter) Value() int {
	return c.n
}

// Reset sets the hidden count back to zero.
func (c *Counter) Reset() {
	c.n = 0
}
