package render

import (
	"bytes"
	"context"
	"testing"

	"ausverity-backend/content"
	"ausverity-backend/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtures(t *testing.T) (*Renderer, *service.PageService) {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r, service.NewPageService(
		service.WithContentResolver(content.Default()),
		service.WithBaseURL("https://www.ausverity.com.au"),
	)
}

func TestPracticeArea_WithContent(t *testing.T) {
	r, pages := newFixtures(t)
	result, err := pages.BuildPage(context.Background(), service.BuildPageRequest{State: "qld", PracticeArea: "family-law"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.PracticeArea(&buf, result.Page))
	html := buf.String()

	assert.Contains(t, html, "<title>Family Law Lawyers in Queensland | AusVerity</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://www.ausverity.com.au/qld/family-law">`)
	assert.Contains(t, html, "<h1>Family Law Lawyers in Queensland</h1>")
	assert.Contains(t, html, "<h2>Family Law in Queensland</h2>")
	assert.Contains(t, html, `<section class="content">`)
	assert.Contains(t, html, `<a href="/qld">Queensland</a>`)
	assert.Contains(t, html, `<span aria-current="page">Family Law</span>`)
	assert.Contains(t, html, `data-category="family"`)
}

func TestPracticeArea_WithoutContent(t *testing.T) {
	r, pages := newFixtures(t)
	result, err := pages.BuildPage(context.Background(), service.BuildPageRequest{State: "tas", PracticeArea: "wills-and-estates"})
	require.NoError(t, err)
	require.Nil(t, result.Page.Content)

	var buf bytes.Buffer
	require.NoError(t, r.PracticeArea(&buf, result.Page))
	html := buf.String()

	assert.Contains(t, html, "<title>Wills &amp; Estates Lawyers in Tasmania | AusVerity</title>")
	assert.NotContains(t, html, `<section class="content">`)
	assert.Contains(t, html, `class="lawyer-search"`)
}

func TestNotFound(t *testing.T) {
	r, pages := newFixtures(t)

	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf, pages.NotFound()))
	assert.Contains(t, buf.String(), "<title>Page Not Found</title>")
	assert.NotContains(t, buf.String(), `rel="canonical"`)
}

func TestStateAndHome(t *testing.T) {
	r, pages := newFixtures(t)

	overview, err := pages.StateOverview(context.Background(), service.StateOverviewRequest{State: "act"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.State(&buf, overview.Page))
	assert.Contains(t, buf.String(), "<h1>Lawyers in Australian Capital Territory</h1>")
	assert.Contains(t, buf.String(), `<a href="/act/litigation">Litigation &amp; Disputes</a>`)

	buf.Reset()
	require.NoError(t, r.Home(&buf, pages.Home()))
	assert.Contains(t, buf.String(), `<a href="/wa">Western Australia</a>`)
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, _ := newFixtures(t)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing.html", nil))
	assert.Zero(t, buf.Len())
}
