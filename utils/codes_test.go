package utils

import (
	"regexp"
	"testing"
)

func TestGenerateConfirmationCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{4}-[0-9A-F]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateConfirmationCode()
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match XXXX-XXXX", code)
		}
		seen[code] = true
	}
	// 100 draws from a 16^8 space should not all collide.
	if len(seen) < 2 {
		t.Fatal("expected varied codes across draws")
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("ORION_TEST_KEY", "  value  ")
	if got := EnvOrDefault("ORION_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}

	t.Setenv("ORION_TEST_KEY", "   ")
	if got := EnvOrDefault("ORION_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
}
