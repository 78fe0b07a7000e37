// Package catalog exposes the remote product and user collections. It is a
// transport pass-through: no business rules live here.
package catalog

import (
	"context"
	"fmt"
	"net/url"

	pkgerrors "github.com/shelfwise/shelfwise/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/shelfwise/shelfwise/pkg/rest"
)

const (
	usersPath    = "/users"
	productsPath = "/products"
)

// Client provides CRUD accessors over the remote REST store.
type Client struct {
	store *rest.Client
}

// NewClient wraps the given transport.
func NewClient(store *rest.Client) (*Client, error) {
	if store == nil {
		return nil, fmt.Errorf("rest client is required")
	}
	return &Client{store: store}, nil
}

// ListProducts fetches every product.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.store.Get(ctx, productsPath, nil, &products); err != nil {
		return nil, wrap(err, "fetch products")
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.store.Get(ctx, productsPath+"/"+id, nil, &product); err != nil {
		return nil, wrap(err, "fetch product")
	}
	return &product, nil
}

// CreateProduct stores a new product; the store assigns the id.
func (c *Client) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.store.Post(ctx, productsPath, product, &created); err != nil {
		return nil, wrap(err, "create product")
	}
	return &created, nil
}

// UpdateProduct replaces the stored product identified by product.ID.
func (c *Client) UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	if product.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required for update")
	}
	var updated models.Product
	if err := c.store.Put(ctx, productsPath+"/"+product.ID, product, &updated); err != nil {
		return nil, wrap(err, "update product")
	}
	return &updated, nil
}

// DeleteProduct removes the product by id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, productsPath+"/"+id); err != nil {
		return wrap(err, "delete product")
	}
	return nil
}

// ListUsers fetches every registered user.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.store.Get(ctx, usersPath, nil, &users); err != nil {
		return nil, wrap(err, "fetch users")
	}
	return users, nil
}

// FindUsersByCredentials queries the store for exact email+password matches.
func (c *Client) FindUsersByCredentials(ctx context.Context, email, password string) ([]models.User, error) {
	query := url.Values{
		"email":    []string{email},
		"password": []string{password},
	}
	var users []models.User
	if err := c.store.Get(ctx, usersPath, query, &users); err != nil {
		return nil, wrap(err, "query users by credentials")
	}
	return users, nil
}

// CreateUser stores a new user; the store assigns the id.
func (c *Client) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.store.Post(ctx, usersPath, user, &created); err != nil {
		return nil, wrap(err, "create user")
	}
	return &created, nil
}

// UpdateUser replaces the stored user identified by user.ID.
func (c *Client) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required for update")
	}
	var updated models.User
	if err := c.store.Put(ctx, usersPath+"/"+user.ID, user, &updated); err != nil {
		return nil, wrap(err, "update user")
	}
	return &updated, nil
}

// wrap adds operation context while preserving the transport's error code.
func wrap(err error, op string) error {
	return pkgerrors.Wrap(pkgerrors.CodeOf(err, pkgerrors.CodeServer), err, op+" failed")
}
