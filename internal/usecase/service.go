package usecase

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"storefront/internal/domain"
)

var ErrCatalogGenerated = errors.New("catalog already generated")

// Repository is the storage surface the store needs. The in-memory
// implementation lives in internal/repository.
type Repository interface {
	AddUser(u *domain.User)
	Users() []*domain.User
	AddProduct(p *domain.Product)
	Products() []*domain.Product
	FindProductByID(id int) *domain.Product
}

// WordSource supplies product names during catalog bootstrap.
type WordSource interface {
	Word() string
}

// Service is the store itself: it owns the entity factories and drives every
// operation the menu layer exposes. Authentication misses and failed lookups
// are nil results, not errors; callers branch on absence explicitly.
type Service struct {
	repo      Repository
	words     WordSource
	rng       *rand.Rand
	hasher    domain.PasswordHasher
	products  *domain.ProductFactory
	users     *domain.UserFactory
	generated bool
}

func NewService(repo Repository, words WordSource, hasher domain.PasswordHasher, rng *rand.Rand) *Service {
	return &Service{
		repo:     repo,
		words:    words,
		rng:      rng,
		hasher:   hasher,
		products: domain.NewProductFactory(),
		users:    domain.NewUserFactory(hasher),
	}
}

// GenerateCatalog bootstraps n products with names from the word source,
// prices uniform over (1, 100] and ratings uniform over [1, 5], both rounded
// to two decimals. It runs once per store; regeneration is not supported.
func (s *Service) GenerateCatalog(n int) error {
	if s.generated {
		return ErrCatalogGenerated
	}
	for i := 0; i < n; i++ {
		price := round2(1 + s.rng.Float64()*99)
		rating := round2(1 + s.rng.Float64()*4)
		p, err := s.products.New(s.words.Word(), price, rating)
		if err != nil {
			return errors.Wrap(err, "store: GenerateCatalog")
		}
		s.repo.AddProduct(p)
	}
	s.generated = true
	return nil
}

// RegisterUser validates and appends a new account. Registration is
// append-only; accounts are never updated or removed.
func (s *Service) RegisterUser(username, password string) (*domain.User, error) {
	u, err := s.users.New(username, password)
	if err != nil {
		return nil, errors.Wrap(err, "store: RegisterUser")
	}
	s.repo.AddUser(u)
	return u, nil
}

// Authenticate returns the first registered user whose username matches and
// whose stored digest verifies against password, or nil when there is no
// match. A miss is a normal outcome, not an error.
func (s *Service) Authenticate(username, password string) *domain.User {
	for _, u := range s.repo.Users() {
		if u.Username() == username && s.hasher.Check(password, u.PasswordHash()) {
			return u
		}
	}
	return nil
}

// FindProductByID returns nil for an id the catalog never issued.
func (s *Service) FindProductByID(id int) *domain.Product {
	return s.repo.FindProductByID(id)
}

// Products lists the catalog in generation order.
func (s *Service) Products() []*domain.Product {
	return s.repo.Products()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
