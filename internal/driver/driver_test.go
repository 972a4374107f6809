package driver

import (
	"errors"
	"testing"
	"time"
)

func TestIsXPath(t *testing.T) {
	tests := []struct {
		selector string
		want     bool
	}{
		{"//div[@id='x']", true},
		{"(//button)[2]", true},
		{".btn", false},
		{"#login", false},
		{"button.primary", false},
		{"/html/body", false}, // single slash is not the path scheme prefix
		{"", false},
	}
	for _, tt := range tests {
		if got := IsXPath(tt.selector); got != tt.want {
			t.Errorf("IsXPath(%q) = %v, want %v", tt.selector, got, tt.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero", float64(0), false},
		{"number", float64(3), true},
		{"empty string", "", false},
		{"string", "ok", true},
		{"object", map[string]any{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truthy(tt.val); got != tt.want {
				t.Errorf("truthy(%v) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestWaitUntil(t *testing.T) {
	t.Run("succeeds once check passes", func(t *testing.T) {
		calls := 0
		err := waitUntil(time.Second, func() (bool, error) {
			calls++
			return calls >= 2, nil
		})
		if err != nil {
			t.Fatalf("waitUntil: %v", err)
		}
	})

	t.Run("times out", func(t *testing.T) {
		err := waitUntil(0, func() (bool, error) { return false, nil })
		if !errors.Is(err, ErrTimeout) {
			t.Fatalf("expected ErrTimeout, got %v", err)
		}
	})

	t.Run("propagates check errors", func(t *testing.T) {
		boom := errors.New("boom")
		err := waitUntil(time.Second, func() (bool, error) { return false, boom })
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}
