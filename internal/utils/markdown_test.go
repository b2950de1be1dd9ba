package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	t.Run("renders basic markdown", func(t *testing.T) {
		out := RenderMarkdown("**bold** and _italic_")
		if !strings.Contains(out, "<strong>bold</strong>") {
			t.Errorf("missing bold in %q", out)
		}
		if !strings.Contains(out, "<em>italic</em>") {
			t.Errorf("missing italic in %q", out)
		}
	})

	t.Run("strips script tags", func(t *testing.T) {
		out := RenderMarkdown(`hello <script>alert("x")</script> world`)
		if strings.Contains(out, "<script") {
			t.Errorf("script tag survived sanitization: %q", out)
		}
	})

	t.Run("keeps safe links with hardened attributes", func(t *testing.T) {
		out := RenderMarkdown("[site](https://example.com)")
		if !strings.Contains(out, `href="https://example.com"`) {
			t.Errorf("link lost: %q", out)
		}
		if !strings.Contains(out, "noreferrer") {
			t.Errorf("rel hardening missing: %q", out)
		}
	})

	t.Run("drops javascript urls", func(t *testing.T) {
		out := RenderMarkdown("[x](javascript:alert(1))")
		if strings.Contains(out, "javascript:") {
			t.Errorf("javascript url survived: %q", out)
		}
	})
}
