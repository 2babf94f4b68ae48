package service

import (
	"errors"
	"testing"

	"github.com/newsroom-next/internal/config"
)

func TestValidatePassword(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}

	cases := []struct {
		name     string
		password string
		wantWeak bool
	}{
		{"meets policy", "Secret-123", false},
		{"too short", "Ab1", true},
		{"no uppercase", "secret-123", true},
		{"no digit", "Secret-abc", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(policy, tc.password)
			if tc.wantWeak {
				if !errors.Is(err, ErrWeakPassword) {
					t.Fatalf("want ErrWeakPassword got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("want nil got %v", err)
			}
		})
	}
}

func TestValidatePasswordEmptyPolicyAcceptsAnything(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy should accept anything, got %v", err)
	}
}
