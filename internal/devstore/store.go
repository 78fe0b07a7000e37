// Package devstore is a development stand-in for the remote REST data
// store: in-memory users and products collections with json-server
// semantics. Tests mount its handler behind httptest; cmd/devstore serves
// it on a port. Its surface is pinned to what the client consumes.
package devstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/shelfwise/shelfwise/pkg/models"
)

// Store holds the collections. Listings preserve insertion order.
type Store struct {
	mu       sync.RWMutex
	users    []models.User
	products []models.Product
}

func New() *Store {
	return &Store{}
}

// Seed replaces both collections, assigning ids to records without one.
func (s *Store) Seed(users []models.User, products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		s.users = append(s.users, u)
	}
	s.products = make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		s.products = append(s.products, p)
	}
}

type seedFile struct {
	Users    []models.User    `json:"users"`
	Products []models.Product `json:"products"`
}

// LoadSeedFile seeds the store from a JSON file with "users" and "products"
// collections.
func (s *Store) LoadSeedFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	s.Seed(seed.Users, seed.Products)
	return nil
}

// ListUsers returns users, optionally filtered by exact email and password.
func (s *Store) ListUsers(email, password string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if email != "" && u.Email != email {
			continue
		}
		if password != "" && u.Password != password {
			continue
		}
		out = append(out, u)
	}
	return out
}

// CreateUser assigns an id and stores the record.
func (s *Store) CreateUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = uuid.NewString()
	s.users = append(s.users, user)
	return user
}

// GetUser returns the user by id.
func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// ReplaceUser overwrites the stored user with the given id.
func (s *Store) ReplaceUser(id string, user models.User) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			user.ID = id
			s.users[i] = user
			return user, true
		}
	}
	return models.User{}, false
}

// ListProducts returns every product in insertion order.
func (s *Store) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// CreateProduct assigns an id and stores the record.
func (s *Store) CreateProduct(product models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = uuid.NewString()
	s.products = append(s.products, product)
	return product
}

// GetProduct returns the product by id.
func (s *Store) GetProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ReplaceProduct overwrites the stored product with the given id.
func (s *Store) ReplaceProduct(id string, product models.Product) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			product.ID = id
			s.products[i] = product
			return product, true
		}
	}
	return models.Product{}, false
}

// DeleteProduct removes the product by id.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}
