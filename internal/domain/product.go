package domain

import "fmt"

// Product is a catalog entry. Identity (id, name) is fixed at construction;
// price and rating stay mutable, but every update is validated first, so a
// rejected update leaves the previous value in place.
type Product struct {
	id     int
	name   string
	price  float64
	rating float64
}

// ProductFactory owns the product id sequence. All products of one store must
// come from the same factory so ids never repeat.
type ProductFactory struct {
	ids IDCounter
}

func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

func (f *ProductFactory) New(name string, price, rating float64) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if rating < 0 {
		return nil, ErrInvalidRating
	}
	return &Product{
		id:     f.ids.Next(),
		name:   name,
		price:  price,
		rating: rating,
	}, nil
}

func (p *Product) ID() int         { return p.id }
func (p *Product) Name() string    { return p.name }
func (p *Product) Price() float64  { return p.price }
func (p *Product) Rating() float64 { return p.rating }

func (p *Product) SetPrice(value float64) error {
	if value <= 0 {
		return ErrInvalidPrice
	}
	p.price = value
	return nil
}

func (p *Product) SetRating(value float64) error {
	if value < 0 {
		return ErrInvalidRating
	}
	p.rating = value
	return nil
}

// String is the short display form.
func (p *Product) String() string {
	return fmt.Sprintf("%d_%s", p.id, p.name)
}

// Details is the long display form used by listings.
func (p *Product) Details() string {
	return fmt.Sprintf("Product(id=%d, name=%s, price=%.2f, rating=%.2f)",
		p.id, p.name, p.price, p.rating)
}
