package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:     http.StatusNotFound,
		KindValidation:   http.StatusBadRequest,
		KindBadRequest:   http.StatusBadRequest,
		KindConflict:     http.StatusConflict,
		KindUnauthorized: http.StatusUnauthorized,
		KindInternal:     http.StatusInternalServerError,
		KindUnknown:      http.StatusBadRequest,
	}
	for kind, want := range cases {
		if got := New(kind, "x").HTTPStatus(); got != want {
			t.Fatalf("kind %d: expected status %d, got %d", kind, want, got)
		}
	}
}

func TestGetKindFollowsWrappedChain(t *testing.T) {
	base := NotFound("product not found")
	wrapped := fmt.Errorf("lookup: %w", base)

	if !Is(wrapped, KindNotFound) {
		t.Fatalf("expected wrapped error to report KindNotFound, got %d", GetKind(wrapped))
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("expected plain error to report KindUnknown")
	}
}

func TestErrorMessageIncludesOp(t *testing.T) {
	err := Validation("quantity required").WithOp("cart.update")
	if err.Error() != "cart.update: quantity required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
