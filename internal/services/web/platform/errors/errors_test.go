package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{kind: KindInvalidInput, want: http.StatusBadRequest},
		{kind: KindUnauthorized, want: http.StatusUnauthorized},
		{kind: KindConflict, want: http.StatusConflict},
		{kind: KindUnavailable, want: http.StatusServiceUnavailable},
		{kind: KindNotFound, want: http.StatusNotFound},
		{kind: KindUnknown, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(E(tc.kind, "x")); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusNilAndUntyped(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestErrorStringFallbacks(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindConflict}).Error(); got != string(KindConflict) {
		t.Fatalf("Error() = %q, want %q", got, string(KindConflict))
	}
	cause := errors.New("dial tcp: refused")
	if got := (Error{Kind: KindUnavailable, Message: "sign up", Err: cause}).Error(); got != "sign up: dial tcp: refused" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestWrapPreservesCauseAndKey(t *testing.T) {
	t.Parallel()

	cause := errors.New("timeout")
	err := fmt.Errorf("submit: %w", Wrap(KindUnavailable, " alert.generic ", cause))
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if got := KindOf(err); got != KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", got, KindUnavailable)
	}
	if got := LocalizationKey(err); got != "alert.generic" {
		t.Fatalf("LocalizationKey() = %q, want %q", got, "alert.generic")
	}
	if Wrap(KindUnknown, "k", nil) != nil {
		t.Fatalf("expected Wrap(nil) to be nil")
	}
}

func TestLocalizationKeyUntyped(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(errors.New("x")); got != "" {
		t.Fatalf("LocalizationKey() = %q, want empty", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q, want empty", got)
	}
}
