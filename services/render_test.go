package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPostHTML(t *testing.T) {
	html, err := RenderPostHTML("First paragraph.\n\nSecond paragraph.")
	require.NoError(t, err)
	assert.Contains(t, html, "<p>First paragraph.</p>")
	assert.Contains(t, html, "<p>Second paragraph.</p>")
}

func TestRenderPostHTML_Formatting(t *testing.T) {
	html, err := RenderPostHTML("Some *emphasis* and a [link](https://example.com).")
	require.NoError(t, err)
	assert.Contains(t, html, "<em>emphasis</em>")
	assert.Contains(t, html, `href="https://example.com"`)
}

func TestRenderPostHTML_StripsScripts(t *testing.T) {
	html, err := RenderPostHTML(`Hello <script>alert("xss")</script> world`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "alert")
	assert.Contains(t, html, "Hello")
}

func TestRenderPostHTML_Empty(t *testing.T) {
	html, err := RenderPostHTML("")
	require.NoError(t, err)
	assert.Empty(t, html)
}
