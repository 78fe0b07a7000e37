// Package auth implements account registration, sign-in and sign-out, and
// the admin pin check used to unlock privileged actions. State is the single
// session slot plus the moment the current session started.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shelfwise/shelfwise/internal/session"
	"github.com/shelfwise/shelfwise/pkg/enums"
	pkgerrors "github.com/shelfwise/shelfwise/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/logger"
	"github.com/shelfwise/shelfwise/pkg/models"
)

const invalidCredentialsMessage = "invalid email or password"

// maxAdmins caps how many admin accounts the store may hold.
const maxAdmins = 5

// Service defines the account operations the client depends on.
type Service interface {
	CheckDuplicateEmail(ctx context.Context, email string) (*DuplicateCheck, error)
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	IsLoggedIn(ctx context.Context) bool
	UserRole(ctx context.Context) enums.Role
	VerifyAdminPin(ctx context.Context, pin string) bool
}

type usersClient interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUsersByCredentials(ctx context.Context, email, password string) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
}

type service struct {
	users   usersClient
	session session.Store
	logg    *logger.Logger
	now     func() time.Time

	mu        sync.Mutex
	startedAt *time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Users   usersClient
	Session session.Store
	Logger  *logger.Logger
	// Now overrides the clock, nil means time.Now.
	Now func() time.Time
}

// NewService constructs the auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, fmt.Errorf("users client is required")
	}
	if params.Session == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		users:   params.Users,
		session: params.Session,
		logg:    params.Logger,
		now:     now,
	}, nil
}

// CheckDuplicateEmail reports whether the email is already registered.
func (s *service) CheckDuplicateEmail(ctx context.Context, email string) (*DuplicateCheck, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeServer, err, "server error while checking email")
	}

	check := &DuplicateCheck{}
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			check.Duplicate = true
			check.Matches = append(check.Matches, u)
		}
	}
	return check, nil
}

// Register validates the form, enforces the duplicate-email and admin-cap
// rules, and stores the new account. Failures carry the registration code so
// the caller can present them as one category.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, registrationError(err)
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, registrationError(
			pkgerrors.Wrap(pkgerrors.CodeServer, err, "server error while checking email"))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	adminCount := 0
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return nil, registrationError(
				pkgerrors.New(pkgerrors.CodeValidation, "email already registered"))
		}
		if u.IsAdmin() {
			adminCount++
		}
	}

	if enums.Role(req.Role) == enums.RoleAdmin && adminCount >= maxAdmins {
		return nil, registrationError(
			pkgerrors.New(pkgerrors.CodeValidation, "admin limit reached, no more admin accounts can be registered"))
	}

	created, err := s.users.CreateUser(ctx, req.user())
	if err != nil {
		return nil, registrationError(err)
	}

	s.logg.Info(s.logg.WithUserID(ctx, created.ID), "user registered")
	return created, nil
}

// registrationError folds any failure into the registration category while
// keeping the triggering message visible to the caller.
func registrationError(err error) error {
	return pkgerrors.Wrap(pkgerrors.CodeRegistration, err, pkgerrors.UserMessage(err))
}

// Login authenticates against the store and opens a session. The first match
// wins when the store returns several records.
func (s *service) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	matches, err := s.users.FindUsersByCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeAuth, invalidCredentialsMessage)
	}

	user := matches[0]
	user.ActiveTime = 0
	if err := s.session.Save(ctx, &user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save session")
	}

	start := s.now()
	s.mu.Lock()
	s.startedAt = &start
	s.mu.Unlock()

	s.logg.Info(s.logg.WithUserID(ctx, user.ID), "user logged in")
	return &user, nil
}

// Logout accounts the elapsed whole minutes onto the user's active time and
// clears the session slot. The active-time write is best effort: a store
// failure is logged and the session is cleared regardless.
func (s *service) Logout(ctx context.Context) error {
	user, err := s.session.Current(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read session")
	}

	s.mu.Lock()
	startedAt := s.startedAt
	s.startedAt = nil
	s.mu.Unlock()

	if startedAt != nil {
		elapsed := int(s.now().Sub(*startedAt).Minutes())
		user.ActiveTime += elapsed
		if _, err := s.users.UpdateUser(ctx, *user); err != nil {
			s.logg.Error(s.logg.WithUserID(ctx, user.ID), "persist active time", err)
		}
	}

	if err := s.session.Clear(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear session")
	}

	s.logg.Info(s.logg.WithUserID(ctx, user.ID), "user logged out")
	return nil
}

// CurrentUser returns the signed-in user.
func (s *service) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := s.session.Current(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, pkgerrors.New(pkgerrors.CodeAuth, "not signed in")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read session")
	}
	return user, nil
}

// IsLoggedIn reports whether a session slot is present.
func (s *service) IsLoggedIn(ctx context.Context) bool {
	_, err := s.session.Current(ctx)
	return err == nil
}

// UserRole returns the signed-in user's role, defaulting to the plain user
// role when nobody is signed in.
func (s *service) UserRole(ctx context.Context) enums.Role {
	user, err := s.session.Current(ctx)
	if err != nil {
		return enums.RoleUser
	}
	return user.Role
}

// VerifyAdminPin checks the supplied pin against the signed-in admin's pin.
// Non-admins and anonymous callers always fail.
func (s *service) VerifyAdminPin(ctx context.Context, pin string) bool {
	user, err := s.session.Current(ctx)
	if err != nil {
		return false
	}
	if !user.IsAdmin() || user.AdminPin == "" {
		return false
	}
	return user.AdminPin == pin
}
