package domain

// IDCounter issues strictly increasing identifiers, starting at 1. Identifiers
// are only unique within the entity type whose factory owns the counter; the
// product and user sequences overlap on purpose.
type IDCounter struct {
	last int
}

func (c *IDCounter) Next() int {
	c.last++
	return c.last
}
