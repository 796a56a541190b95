// Package slug generates URL-safe identifiers from display names, for
// aggregates that expose a human-readable key alongside their UUID.
package slug

import (
	"fmt"

	"github.com/google/uuid"
	goslug "github.com/gosimple/slug"
)

// Make normalizes s into a lowercase, hyphen-separated slug.
func Make(s string) string {
	return goslug.Make(s)
}

// MakeUnique appends a short random suffix so two aggregates with the same
// display name never collide on their slug.
func MakeUnique(s string) string {
	suffix := uuid.NewString()[:8]
	base := goslug.Make(s)
	if base == "" {
		return suffix
	}
	return fmt.Sprintf("%s-%s", base, suffix)
}

// IsValid reports whether s is already in canonical slug form.
func IsValid(s string) bool {
	return goslug.IsSlug(s)
}
