package repository

import "storefront/internal/domain"

// Memory holds the store's collections for the lifetime of one process. Users
// and products are append-only and kept in insertion order; lookups are linear
// scans returning nil when nothing matches. Not safe for concurrent use; the
// store serves a single interactive session.
type Memory struct {
	users    []*domain.User
	products []*domain.Product
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) AddUser(u *domain.User) {
	m.users = append(m.users, u)
}

func (m *Memory) Users() []*domain.User {
	return m.users
}

func (m *Memory) AddProduct(p *domain.Product) {
	m.products = append(m.products, p)
}

func (m *Memory) Products() []*domain.Product {
	return m.products
}

func (m *Memory) FindProductByID(id int) *domain.Product {
	for _, p := range m.products {
		if p.ID() == id {
			return p
		}
	}
	return nil
}
