// File: internal/platform/sanitize/sanitize.go
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// RichText keeps user-generated formatting (paragraphs, emphasis, links) and strips
// anything executable. Used for post content.
func RichText(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

// PlainText removes all markup. Used for bios and request messages.
func PlainText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
