package auth

import (
	"github.com/shelfwise/shelfwise/pkg/enums"
	pkgerrors "github.com/shelfwise/shelfwise/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/shelfwise/shelfwise/pkg/validators"
)

// RegisterRequest is the sign-up form payload.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Location     string `json:"location" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required,len=10,numeric"`
	Role         string `json:"role" validate:"required"`
	AdminPin     string `json:"adminPin"`
}

// Validate applies the field rules plus the cross-field pin requirement.
func (req RegisterRequest) Validate() error {
	if err := validators.Struct(req); err != nil {
		return err
	}
	role, err := enums.ParseRole(req.Role)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "role must be user or admin")
	}
	if role == enums.RoleAdmin && req.AdminPin == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "admin pin is required for admin accounts")
	}
	return nil
}

func (req RegisterRequest) user() models.User {
	return models.User{
		Email:        req.Email,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Location:     req.Location,
		MobileNumber: req.MobileNumber,
		Role:         enums.Role(req.Role),
		AdminPin:     req.AdminPin,
		ActiveTime:   0,
	}
}

// DuplicateCheck reports whether an email is already taken and carries the
// matching records for callers that need them.
type DuplicateCheck struct {
	Duplicate bool
	Matches   []models.User
}
