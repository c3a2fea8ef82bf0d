package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/auth"
	"storefront/internal/fakedata"
	"storefront/internal/repository"
	"storefront/internal/usecase"
)

func newTestMenu(t *testing.T, script string) (*Menu, *bytes.Buffer, *usecase.Service) {
	t.Helper()
	svc := usecase.NewService(
		repository.NewMemory(),
		fakedata.NewWords(1),
		auth.NewHasher(),
		rand.New(rand.NewSource(1)),
	)
	require.NoError(t, svc.GenerateCatalog(3))
	_, err := svc.RegisterUser("user1", "password123")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMenu(svc, strings.NewReader(script), out, log), out, svc
}

func TestMenu_ExitAndEOF(t *testing.T) {
	menu, out, _ := newTestMenu(t, "4\n")
	menu.Run()
	assert.Contains(t, out.String(), "Menu:")

	// An exhausted reader also ends the loop.
	menu, _, _ = newTestMenu(t, "")
	menu.Run()
}

func TestMenu_InvalidChoice(t *testing.T) {
	menu, out, _ := newTestMenu(t, "9\n4\n")
	menu.Run()
	assert.Contains(t, out.String(), "Invalid choice. Try again.")
}

func TestMenu_AuthenticationFailed(t *testing.T) {
	menu, out, _ := newTestMenu(t, "3\nuser1\nwrongpass1\n4\n")
	menu.Run()
	assert.Contains(t, out.String(), "Authentication failed")
	assert.NotContains(t, out.String(), "Total price:")
}

func TestMenu_AddAndViewCart(t *testing.T) {
	script := strings.Join([]string{
		"3", "user1", "password123", // view empty cart
		"1", "user1", "password123", "1", // add product 1
		"3", "user1", "password123", // view again
		"4",
	}, "\n") + "\n"
	menu, out, svc := newTestMenu(t, script)
	menu.Run()

	p := svc.FindProductByID(1)
	require.NotNil(t, p)

	assert.Contains(t, out.String(), "Total price: 0.00")
	assert.Contains(t, out.String(), "Available products:")
	assert.Contains(t, out.String(), fmt.Sprintf("Product %s added to cart", p.Name()))
	assert.Contains(t, out.String(), fmt.Sprintf("Total price: %.2f", p.Price()))
}

func TestMenu_AddUnknownProduct(t *testing.T) {
	menu, out, _ := newTestMenu(t, "1\nuser1\npassword123\n42\n4\n")
	menu.Run()
	assert.Contains(t, out.String(), "Product with ID 42 not found")
}

func TestMenu_AddRejectsNonNumericID(t *testing.T) {
	menu, out, _ := newTestMenu(t, "1\nuser1\npassword123\nabc\n4\n")
	menu.Run()
	assert.Contains(t, out.String(), "Invalid product ID")
}

func TestMenu_RemoveFromCart(t *testing.T) {
	script := strings.Join([]string{
		"1", "user1", "password123", "2", // add product 2
		"2", "user1", "password123", "2", // remove it again
		"2", "user1", "password123", "2", // now absent
		"4",
	}, "\n") + "\n"
	menu, out, svc := newTestMenu(t, script)
	menu.Run()

	p := svc.FindProductByID(2)
	require.NotNil(t, p)

	assert.Contains(t, out.String(), fmt.Sprintf("Product %s removed from cart", p.Name()))
	assert.Contains(t, out.String(), "Product with ID 2 not found in cart")
}
