package utils

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// EnvOrDefault returns the trimmed env value or a fallback.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// GenerateConfirmationCode returns a human-readable booking reference in the
// form XXXX-XXXX, derived from a fresh UUID. Uniqueness is enforced by the
// database; callers retry on collision.
func GenerateConfirmationCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:4] + "-" + raw[4:8]
}
