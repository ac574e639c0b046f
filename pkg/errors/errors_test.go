package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("resource", "cars")

	t.Run("message", func(t *testing.T) {
		want := `resource "cars" not found in the catalog`
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		if !errors.Is(err, ErrNotFound) {
			t.Error("NotFoundError should match ErrNotFound")
		}
		if errors.Is(err, ErrInvalidInterceptor) {
			t.Error("NotFoundError should not match ErrInvalidInterceptor")
		}
	})

	t.Run("helper", func(t *testing.T) {
		if !IsNotFound(err) {
			t.Error("IsNotFound should return true")
		}
		if IsNotFound(errors.New("other")) {
			t.Error("IsNotFound should return false for unrelated errors")
		}
	})

	t.Run("errors.As", func(t *testing.T) {
		var nfe *NotFoundError
		if !errors.As(fmt.Errorf("wrapped: %w", err), &nfe) {
			t.Fatal("errors.As should unwrap to NotFoundError")
		}
		if nfe.Name != "cars" {
			t.Errorf("Name = %q, want %q", nfe.Name, "cars")
		}
	})
}

func TestInterceptorError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := NewInterceptorError(42, "missing OnLoad")
		if !strings.Contains(err.Error(), "int") {
			t.Errorf("Error() should include the value type, got %q", err.Error())
		}
		if !strings.Contains(err.Error(), "missing OnLoad") {
			t.Errorf("Error() should include the message, got %q", err.Error())
		}
	})

	t.Run("without message", func(t *testing.T) {
		err := NewInterceptorError("nope", "")
		if !strings.Contains(err.Error(), "not an interceptor") {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		err := NewInterceptorError(nil, "")
		if !IsInvalidInterceptor(err) {
			t.Error("IsInvalidInterceptor should return true")
		}
		if IsNotFound(err) {
			t.Error("InterceptorError should not match ErrNotFound")
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewValidationError("count", -1, "must be non-negative")
		want := "validation failed for count: must be non-negative"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("without field", func(t *testing.T) {
		err := NewValidationError("", nil, "bad input")
		if err.Error() != "validation failed: bad input" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		if !IsValidationError(NewValidationError("f", nil, "m")) {
			t.Error("IsValidationError should return true")
		}
	})
}

func TestHandleError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewHandleError("save", "weather", cause)

	t.Run("message", func(t *testing.T) {
		want := "failed to save weather: disk full"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		if !errors.Is(err, cause) {
			t.Error("HandleError should unwrap to its cause")
		}
	})

	t.Run("no resource", func(t *testing.T) {
		err := NewHandleError("load", "", cause)
		if err.Error() != "failed to load: disk full" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		if WrapHandle("load", "x", nil) != nil {
			t.Error("WrapHandle(nil) should be nil")
		}
		if WrapValidation("f", nil) != nil {
			t.Error("WrapValidation(nil) should be nil")
		}
	})

	t.Run("wrap handle", func(t *testing.T) {
		cause := errors.New("boom")
		err := WrapHandle("load", "cars", cause)
		if !errors.Is(err, cause) {
			t.Error("wrapped error should match cause")
		}
		var he *HandleError
		if !errors.As(err, &he) {
			t.Fatal("expected HandleError")
		}
		if he.Operation != "load" {
			t.Errorf("Operation = %q, want %q", he.Operation, "load")
		}
	})

	t.Run("wrap validation", func(t *testing.T) {
		err := WrapValidation("data", errors.New("empty"))
		if !IsValidationError(err) {
			t.Error("expected validation error")
		}
	})
}
