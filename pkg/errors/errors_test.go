package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeAuth, status: http.StatusUnauthorized, publicMsg: "authentication required"},
		{code: CodeForbidden, status: http.StatusForbidden, publicMsg: "access denied"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected"},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeRegistration, status: http.StatusUnprocessableEntity, publicMsg: "registration failed", detailsOK: true},
		{code: CodeServer, status: http.StatusBadGateway, publicMsg: "remote store unavailable", detailsOK: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing name")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing name" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	cause := stdErrors.New("connection refused")
	wrapped := Wrap(CodeServer, cause, "fetch products")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("wrapped error should unwrap to cause")
	}
	if As(wrapped) == nil {
		t.Fatalf("As should find typed error")
	}
	if Wrap(CodeServer, nil, "no cause").Unwrap() != nil {
		t.Fatalf("wrap without cause should not carry one")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(CodeAuth, "invalid email or password"), CodeInternal); got != CodeAuth {
		t.Fatalf("expected typed code, got %s", got)
	}
	if got := CodeOf(stdErrors.New("plain"), CodeServer); got != CodeServer {
		t.Fatalf("expected fallback code, got %s", got)
	}
}

func TestUserMessagePrefersSpecificMessageForSafeCodes(t *testing.T) {
	err := New(CodeConflict, "you have already rated this product")
	if got := UserMessage(err); got != "you have already rated this product" {
		t.Fatalf("unexpected user message %q", got)
	}
	if got := UserMessage(New(CodeInternal, "pool exhausted")); got != "internal error" {
		t.Fatalf("internal details should not surface, got %q", got)
	}
	if got := UserMessage(stdErrors.New("boom")); got != "internal error" {
		t.Fatalf("untyped errors should fall back, got %q", got)
	}
}
