package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrItemNotFound, "item not found"},
		{ErrCategoryNotFound, "no items found in category"},
		{ErrInvalidItem, "invalid item"},
		{ErrEmptyUpdate, "no fields provided for update"},
		{ErrStorage, "storage unavailable"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected message: got %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get item: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrStorage, errors.New("connection refused"))
	if !errors.Is(wrapped2, ErrStorage) {
		t.Fatal("errors.Is must match double-wrapped ErrStorage")
	}
}

func TestValidationError(t *testing.T) {
	t.Run("unwraps to ErrInvalidItem", func(t *testing.T) {
		v := &ValidationError{}
		v.Add("quantity", "gte=0", -1, "must be greater than or equal to 0")
		err := fmt.Errorf("create item: %w", v.OrNil())

		if !errors.Is(err, ErrInvalidItem) {
			t.Fatal("expected errors.Is to match ErrInvalidItem")
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatal("expected errors.As to find *ValidationError")
		}
		if len(ve.Violations) != 1 || ve.Violations[0].Field != "quantity" {
			t.Fatalf("unexpected violations: %+v", ve.Violations)
		}
	})

	t.Run("message lists every field", func(t *testing.T) {
		v := &ValidationError{}
		v.Add("name", "required", "", "must not be blank")
		v.Add("unitPrice", "gt=0", "0", "must be greater than 0")
		msg := v.Error()
		if !strings.Contains(msg, "name: must not be blank") || !strings.Contains(msg, "unitPrice: must be greater than 0") {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("OrNil without violations is untyped nil", func(t *testing.T) {
		v := &ValidationError{}
		if err := v.OrNil(); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
}
