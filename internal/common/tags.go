// File: internal/common/tags.go
package common

import (
	"strings"

	"github.com/gosimple/slug"
)

// NormalizeTag turns free text like "Ramadan Tips" into the stored tag form "ramadan_tips".
func NormalizeTag(raw string) string {
	return strings.ReplaceAll(slug.Make(strings.TrimSpace(raw)), "-", "_")
}

// NormalizeTags normalizes every tag, dropping empties and duplicates while keeping first-seen order.
func NormalizeTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		tag := NormalizeTag(r)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
