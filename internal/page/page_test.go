package page

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/disclosure"
	"github.com/chille/showcase/internal/presenter"
)

func renderPage(t *testing.T, sel disclosure.Selection, items ...catalog.Item) string {
	t.Helper()
	cat := catalog.MustNew(items...)
	var buf bytes.Buffer
	require.NoError(t, Render(context.Background(), &buf, catalog.DefaultSite(), presenter.Static(cat, sel), DefaultOptions(2026)))
	return buf.String()
}

func TestDocumentCollapsed(t *testing.T) {
	out := renderPage(t, disclosure.None, catalog.Defaults()...)
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "<title>Chille Skripts</title>")
	require.Equal(t, 3, strings.Count(out, `<article class="card"`))
	require.Equal(t, 3, strings.Count(out, "View Plugin"))
	require.NotContains(t, out, `<div class="content">`)
	require.Contains(t, out, `animation-delay:0.12s`)
	require.Contains(t, out, "© 2026 Chille Skripts")
}

func TestDocumentExpandedCard(t *testing.T) {
	out := renderPage(t, disclosure.Of(2), catalog.Defaults()...)
	require.Equal(t, 1, strings.Count(out, `<div class="content">`))
	require.Contains(t, out, `<img src="/save-restore.gif" alt="Save &amp; Restore Inventory preview">`)
	require.Contains(t, out, `id="item-2" data-state="expanded"`)
	require.Equal(t, 1, strings.Count(out, "Hide Preview"))
}

func TestDocumentEscapesContent(t *testing.T) {
	out := renderPage(t, disclosure.Of(9), catalog.Item{ID: 9, Title: `<script>x</script>`, Features: []string{"a & b"}})
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
	require.Contains(t, out, "a &amp; b")
	require.Contains(t, out, "No preview available")
}
