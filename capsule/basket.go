package capsule

// lineItem is one priced entry in a basket.
//
// It is unexported on purpose: the only way to get one into a basket is
// AddItem, and the only way to observe it is through Count/Total.
type lineItem struct {
	name  string
	price float64
}

// Basket is an encapsulated-state container over an ordered sequence of
// priced line items.
//
// The sequence itself is unreachable from outside the package; callers see
// only the operation set (AddItem, Count, Total). All operations are total
// over well-formed inputs and have no error paths.
type Basket struct {
	items []lineItem
}

// NewBasket constructs an empty basket.
func NewBasket() *Basket {
	return &Basket{}
}

// AddItem appends a named, priced item to the hidden sequence.
func (b *Basket) AddItem(name string, price float64) {
	b.items = append(b.items, lineItem{name: name, price: price})
}

// Count returns the number of items added so far.
//
// Count is a pure read: calling it repeatedly without an intervening AddItem
// yields the same result.
func (b *Basket) Count() int {
	return len(b.items)
}

// Total returns the sum of item prices over the full hidden sequence.
//
// The reduction is order-independent and, like Count, idempotent between
// mutations.
func (b *Basket) Total() float64 {
	var total float64
	for _, it := range b.items {
		total += it.price
	}
	return total
}
