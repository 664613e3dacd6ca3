// Package markdown renders user-authored thread/reply content to
// sanitized HTML for detail responses. Raw content is stored untouched.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/campushub-dev/campushub/internal/logger"
)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)
	return &TextProcessor{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts markdown to HTML and sanitizes the result.
// On render failure the raw text is returned HTML-escaped by the policy.
func (tp *TextProcessor) Render(text string) string {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		logger.Log.Error("markdown render failed", "err", err)
		return tp.policy.Sanitize(text)
	}
	return tp.policy.Sanitize(buf.String())
}
