package validators

import (
	"testing"

	pkgerrors "github.com/shelfwise/shelfwise/pkg/errors"
)

type sample struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Mobile   string  `json:"mobileNumber" validate:"required,len=10,numeric"`
	Price    float64 `json:"price" validate:"min=1,max=10000"`
}

func TestStructValid(t *testing.T) {
	err := Struct(sample{
		Email:    "a@b.com",
		Password: "secret1",
		Mobile:   "5551234567",
		Price:    49.99,
	})
	if err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
}

func TestStructCollectsFieldMessages(t *testing.T) {
	err := Struct(sample{
		Email:    "not-an-email",
		Password: "shh",
		Mobile:   "12ab",
		Price:    20000,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
	if details["password"] != "must be at least 6" {
		t.Fatalf("unexpected password message %q", details["password"])
	}
	if details["price"] != "must be at most 10000" {
		t.Fatalf("unexpected price message %q", details["price"])
	}
	if _, ok := details["mobileNumber"]; !ok {
		t.Fatalf("expected mobileNumber message, got %v", details)
	}
}
