package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfwise/shelfwise/pkg/enums"
)

type stubAuth struct {
	loggedIn bool
	role     enums.Role
	pin      string
}

func (s *stubAuth) IsLoggedIn(context.Context) bool     { return s.loggedIn }
func (s *stubAuth) UserRole(context.Context) enums.Role { return s.role }
func (s *stubAuth) VerifyAdminPin(_ context.Context, pin string) bool {
	return s.loggedIn && s.role == enums.RoleAdmin && pin == s.pin
}

type stubUI struct {
	pinAnswer string
	pinErr    error
	prompts   []string
	notices   []string
}

func (s *stubUI) PromptPin(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.pinAnswer, s.pinErr
}

func (s *stubUI) Notify(_ context.Context, message string) {
	s.notices = append(s.notices, message)
}

type stubNav struct {
	routes []Route
}

func (s *stubNav) NavigateTo(route Route) { s.routes = append(s.routes, route) }

func newTestGate(t *testing.T, auth *stubAuth, ui *stubUI, nav *stubNav) *Gate {
	t.Helper()
	g, err := New(auth, ui, nav)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	return g
}

func TestAllowRouteRedirectsAnonymous(t *testing.T) {
	ui := &stubUI{}
	nav := &stubNav{}
	g := newTestGate(t, &stubAuth{loggedIn: false}, ui, nav)

	if g.AllowRoute(context.Background(), RouteInventory) {
		t.Fatalf("anonymous user admitted to inventory")
	}
	if len(nav.routes) != 1 || nav.routes[0] != RouteSignIn {
		t.Fatalf("expected redirect to sign-in, got %v", nav.routes)
	}
}

func TestAllowRouteAdmitsSignedIn(t *testing.T) {
	nav := &stubNav{}
	g := newTestGate(t, &stubAuth{loggedIn: true, role: enums.RoleUser}, &stubUI{}, nav)

	for _, route := range []Route{RouteInventory, RouteAddProduct, RouteProductDetail("p1"), RouteUpdateProduct("p1")} {
		if !g.AllowRoute(context.Background(), route) {
			t.Fatalf("signed-in user refused route %s", route)
		}
	}
	if len(nav.routes) != 0 {
		t.Fatalf("no redirect expected, got %v", nav.routes)
	}
}

func TestAllowRouteSignInAlwaysReachable(t *testing.T) {
	g := newTestGate(t, &stubAuth{loggedIn: false}, &stubUI{}, &stubNav{})
	if !g.AllowRoute(context.Background(), RouteSignIn) {
		t.Fatalf("sign-in must be reachable while logged out")
	}
	if !g.AllowRoute(context.Background(), RouteRegister) {
		t.Fatalf("registration must be reachable while logged out")
	}
}

func TestAuthorizeNonAdmin(t *testing.T) {
	ui := &stubUI{}
	g := newTestGate(t, &stubAuth{loggedIn: true, role: enums.RoleUser}, ui, &stubNav{})

	if g.Authorize(context.Background()) {
		t.Fatalf("non-admin authorized")
	}
	if len(ui.prompts) != 0 {
		t.Fatalf("non-admin must not see the pin prompt")
	}
	if len(ui.notices) != 1 || ui.notices[0] != "Only admin have the access" {
		t.Fatalf("unexpected notices %v", ui.notices)
	}
}

func TestAuthorizeCorrectPin(t *testing.T) {
	ui := &stubUI{pinAnswer: "4321"}
	g := newTestGate(t, &stubAuth{loggedIn: true, role: enums.RoleAdmin, pin: "4321"}, ui, &stubNav{})

	if !g.Authorize(context.Background()) {
		t.Fatalf("correct pin refused")
	}
	if len(ui.prompts) != 1 || ui.prompts[0] != "Enter admin pin (4 digits):" {
		t.Fatalf("unexpected prompts %v", ui.prompts)
	}
}

func TestAuthorizeWrongPin(t *testing.T) {
	ui := &stubUI{pinAnswer: "0000"}
	g := newTestGate(t, &stubAuth{loggedIn: true, role: enums.RoleAdmin, pin: "4321"}, ui, &stubNav{})

	if g.Authorize(context.Background()) {
		t.Fatalf("wrong pin authorized")
	}
	if len(ui.notices) != 1 || ui.notices[0] != "Invalid admin pin." {
		t.Fatalf("unexpected notices %v", ui.notices)
	}
}

func TestAuthorizeChallengesEveryAction(t *testing.T) {
	ui := &stubUI{pinAnswer: "4321"}
	g := newTestGate(t, &stubAuth{loggedIn: true, role: enums.RoleAdmin, pin: "4321"}, ui, &stubNav{})

	ctx := context.Background()
	if !g.Authorize(ctx) || !g.Authorize(ctx) {
		t.Fatalf("authorization failed")
	}
	if len(ui.prompts) != 2 {
		t.Fatalf("each action must re-prompt, got %d prompts", len(ui.prompts))
	}
}

func TestAuthorizePromptFailure(t *testing.T) {
	ui := &stubUI{pinErr: errors.New("input closed")}
	g := newTestGate(t, &stubAuth{loggedIn: true, role: enums.RoleAdmin, pin: "4321"}, ui, &stubNav{})

	if g.Authorize(context.Background()) {
		t.Fatalf("prompt failure must deny")
	}
}
