package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRichText(t *testing.T) {
	assert.Equal(t, "", RichText(""))
	assert.Equal(t, "<p><strong>Alhamdulillah</strong></p>", RichText("<p><strong>Alhamdulillah</strong></p>"))
	assert.Equal(t, "<p>Hello</p>", RichText("<p>Hello</p><script>alert('xss')</script>"))
	assert.NotContains(t, RichText(`<a href="javascript:alert(1)">x</a>`), "javascript")
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Looking for help with salah", PlainText("  <b>Looking</b> for help with salah "))
	assert.Equal(t, "", PlainText("<script>alert(1)</script>"))
}
