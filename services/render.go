package services

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer strips anything dangerous from rendered post content before
// it reaches the browser. UGCPolicy allows the usual formatting tags.
var htmlSanitizer = bluemonday.UGCPolicy()

// RenderPostHTML converts blog post content to sanitized HTML. Content is
// markdown-ish free text where a blank line separates paragraphs, which
// goldmark handles natively.
func RenderPostHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("rendering post content: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}
