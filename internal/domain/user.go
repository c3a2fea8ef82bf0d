package domain

import "regexp"

// PasswordHasher derives and checks credential digests. The domain owns the
// interface so user construction stays independent of the hash algorithm.
type PasswordHasher interface {
	// Hash validates the plaintext against the complexity policy and returns
	// its digest.
	Hash(password string) (string, error)
	// Check reports whether the plaintext hashes to digest. It applies no
	// complexity policy: digests stored under an older policy must stay
	// verifiable.
	Check(password, digest string) bool
}

var usernameRe = regexp.MustCompile(`^\w+$`)

// User is a registered account. Identity and digest are fixed at construction;
// the cart is created empty and stays owned by the user for the whole session.
type User struct {
	id           int
	username     string
	passwordHash string
	cart         *Cart
}

// UserFactory owns the user id sequence and the hasher.
type UserFactory struct {
	ids    IDCounter
	hasher PasswordHasher
}

func NewUserFactory(hasher PasswordHasher) *UserFactory {
	return &UserFactory{hasher: hasher}
}

func (f *UserFactory) New(username, password string) (*User, error) {
	if !usernameRe.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	digest, err := f.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return &User{
		id:           f.ids.Next(),
		username:     username,
		passwordHash: digest,
		cart:         NewCart(),
	}, nil
}

func (u *User) ID() int              { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Cart() *Cart          { return u.cart }
