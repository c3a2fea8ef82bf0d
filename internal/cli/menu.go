// Package cli implements the interactive text menu. It is the only layer that
// reads input or prints; the store core stays silent.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/usecase"
)

type Menu struct {
	service *usecase.Service
	in      *bufio.Scanner
	out     io.Writer
	log     *slog.Logger
}

func NewMenu(service *usecase.Service, in io.Reader, out io.Writer, log *slog.Logger) *Menu {
	return &Menu{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log,
	}
}

// Run drives the menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Menu:")
		fmt.Fprintln(m.out, "1. Add product to cart")
		fmt.Fprintln(m.out, "2. Remove product from cart")
		fmt.Fprintln(m.out, "3. View cart")
		fmt.Fprintln(m.out, "4. Exit")

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.addToCart()
		case "2":
			m.removeFromCart()
		case "3":
			m.viewCart()
		case "4":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptID(label string) (int, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid product ID")
		return 0, false
	}
	return id, true
}

// authenticate prompts for credentials. Every cart action starts here; there
// is no persistent session.
func (m *Menu) authenticate() *domain.User {
	username, ok := m.prompt("Enter your username: ")
	if !ok {
		return nil
	}
	password, ok := m.prompt("Enter your password: ")
	if !ok {
		return nil
	}
	return m.service.Authenticate(username, password)
}

func (m *Menu) addToCart() {
	user := m.authenticate()
	if user == nil {
		fmt.Fprintln(m.out, "Authentication failed")
		return
	}
	fmt.Fprintln(m.out, "Available products:")
	m.printProducts(m.service.Products())

	id, ok := m.promptID("Enter product ID to add to cart: ")
	if !ok {
		return
	}
	product := m.service.FindProductByID(id)
	if product == nil {
		fmt.Fprintf(m.out, "Product with ID %d not found\n", id)
		return
	}
	if err := user.Cart().Add(product); err != nil {
		m.log.Error("add to cart failed", "product_id", id, "err", err)
		return
	}
	fmt.Fprintf(m.out, "Product %s added to cart\n", product.Name())
}

func (m *Menu) removeFromCart() {
	user := m.authenticate()
	if user == nil {
		fmt.Fprintln(m.out, "Authentication failed")
		return
	}
	fmt.Fprintln(m.out, "Cart:")
	m.printProducts(user.Cart().Items())

	id, ok := m.promptID("Enter product ID to remove from cart: ")
	if !ok {
		return
	}
	product := user.Cart().FindByID(id)
	if product == nil {
		fmt.Fprintf(m.out, "Product with ID %d not found in cart\n", id)
		return
	}
	user.Cart().Remove(product)
	fmt.Fprintf(m.out, "Product %s removed from cart\n", product.Name())
}

func (m *Menu) viewCart() {
	user := m.authenticate()
	if user == nil {
		fmt.Fprintln(m.out, "Authentication failed")
		return
	}
	fmt.Fprintln(m.out, "Cart:")
	m.printProducts(user.Cart().Items())
	fmt.Fprintf(m.out, "Total price: %.2f\n", user.Cart().Total())
}

func (m *Menu) printProducts(products []*domain.Product) {
	for _, p := range products {
		fmt.Fprintf(m.out, "Product ID: %d\n", p.ID())
		fmt.Fprintf(m.out, "Product Name: %s\n", p.Name())
		fmt.Fprintf(m.out, "Product Price: $%.2f\n", p.Price())
		fmt.Fprintf(m.out, "Product Rating: %.2f\n", p.Rating())
		fmt.Fprintln(m.out)
	}
}
