// Package gate guards navigation and privileged actions. Routes require a
// signed-in user; destructive catalog actions additionally require the admin
// pin, challenged on every attempt.
package gate

import (
	"context"
	"fmt"

	"github.com/shelfwise/shelfwise/pkg/enums"
)

const (
	pinPrompt         = "Enter admin pin (4 digits):"
	pinDeniedNotice   = "Invalid admin pin."
	adminOnlyNotice   = "Only admin have the access"
	signInRedirectMsg = "Please sign in to continue."
)

// Route identifies a navigable screen.
type Route string

const (
	RouteSignIn     Route = "/sign-in"
	RouteRegister   Route = "/register"
	RouteInventory  Route = "/inventory"
	RouteAddProduct Route = "/inventory/add"
)

// RouteProductDetail addresses a single product's detail screen.
func RouteProductDetail(id string) Route {
	return Route(fmt.Sprintf("/inventory/%s", id))
}

// RouteUpdateProduct addresses a single product's edit screen.
func RouteUpdateProduct(id string) Route {
	return Route(fmt.Sprintf("/inventory/%s/edit", id))
}

// Authorizer answers the identity questions the gate asks.
type Authorizer interface {
	IsLoggedIn(ctx context.Context) bool
	UserRole(ctx context.Context) enums.Role
	VerifyAdminPin(ctx context.Context, pin string) bool
}

// UI carries the pin challenge and notices to whoever is driving the client.
type UI interface {
	PromptPin(ctx context.Context, prompt string) (string, error)
	Notify(ctx context.Context, message string)
}

// Navigator redirects the client to another route.
type Navigator interface {
	NavigateTo(route Route)
}

// Gate ties the identity checks to the UI challenge flow.
type Gate struct {
	auth Authorizer
	ui   UI
	nav  Navigator
}

func New(auth Authorizer, ui UI, nav Navigator) (*Gate, error) {
	if auth == nil {
		return nil, fmt.Errorf("authorizer is required")
	}
	if ui == nil {
		return nil, fmt.Errorf("ui is required")
	}
	if nav == nil {
		return nil, fmt.Errorf("navigator is required")
	}
	return &Gate{auth: auth, ui: ui, nav: nav}, nil
}

// AllowRoute admits signed-in users and redirects everyone else to sign-in.
// The sign-in and registration screens are always reachable.
func (g *Gate) AllowRoute(ctx context.Context, route Route) bool {
	if route == RouteSignIn || route == RouteRegister {
		return true
	}
	if g.auth.IsLoggedIn(ctx) {
		return true
	}
	g.ui.Notify(ctx, signInRedirectMsg)
	g.nav.NavigateTo(RouteSignIn)
	return false
}

// Authorize runs the pin challenge for a privileged action. Non-admins are
// told off without seeing the prompt; admins are challenged every time, with
// no attempt carrying over to the next action.
func (g *Gate) Authorize(ctx context.Context) bool {
	if g.auth.UserRole(ctx) != enums.RoleAdmin {
		g.ui.Notify(ctx, adminOnlyNotice)
		return false
	}

	pin, err := g.ui.PromptPin(ctx, pinPrompt)
	if err != nil {
		g.ui.Notify(ctx, pinDeniedNotice)
		return false
	}
	if !g.auth.VerifyAdminPin(ctx, pin) {
		g.ui.Notify(ctx, pinDeniedNotice)
		return false
	}
	return true
}
