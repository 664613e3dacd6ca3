package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBasicMarkdown(t *testing.T) {
	tp := New()

	html := tp.Render("some *emphasized* text")
	assert.Contains(t, html, "<em>emphasized</em>")
}

func TestRenderStripsScriptTags(t *testing.T) {
	tp := New()

	html := tp.Render(`hello <script>alert("x")</script> world`)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "hello")
}

func TestRenderStrikethrough(t *testing.T) {
	tp := New()

	html := tp.Render("~~wrong~~ right")
	assert.Contains(t, html, "<del>wrong</del>")
}

func TestRenderEscapesRawHTMLAttributes(t *testing.T) {
	tp := New()

	html := tp.Render(`<img src=x onerror=alert(1)>`)
	assert.False(t, strings.Contains(html, "<img"), "raw html must not survive: %s", html)
}
