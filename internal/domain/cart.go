package domain

// Cart is an ordered product list owned by exactly one user. Duplicates are
// allowed and insertion order is preserved.
type Cart struct {
	items []*Product
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Items() []*Product {
	return c.items
}

func (c *Cart) Add(p *Product) error {
	if p == nil {
		return ErrNilProduct
	}
	c.items = append(c.items, p)
	return nil
}

// Remove drops the first occurrence with the same id. Absence is not an error.
func (c *Cart) Remove(p *Product) {
	if p == nil {
		return
	}
	for i, item := range c.items {
		if item.id == p.id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// FindByID returns the first item with the given id, or nil when the cart
// holds no such item.
func (c *Cart) FindByID(id int) *Product {
	for _, item := range c.items {
		if item.id == id {
			return item
		}
	}
	return nil
}

// Total sums the current price of every item, so a price change after Add
// shows up in the next call. An empty cart totals 0.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.price
	}
	return total
}
