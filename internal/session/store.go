// Package session owns the persisted slot holding the signed-in user.
// Absence of the slot means logged out. Only the auth service writes it.
package session

import (
	"context"
	"errors"

	"github.com/shelfwise/shelfwise/pkg/models"
)

// SlotName is the key under which the current user is persisted.
const SlotName = "user"

// ErrNoSession is returned by Current when no user is signed in.
var ErrNoSession = errors.New("no active session")

// Store is the single-slot persistence behind the session.
type Store interface {
	// Current returns the signed-in user, or ErrNoSession when the slot is
	// absent.
	Current(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}
