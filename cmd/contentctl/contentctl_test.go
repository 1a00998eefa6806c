package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"ausverity-backend/content"
	"ausverity-backend/models"
	"ausverity-backend/render"
	"ausverity-backend/service"
	"ausverity-backend/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newLocalStore(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func readKey(t *testing.T, store storage.Storage, key string) string {
	t.Helper()
	rc, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(raw)
}

func TestReportCoverage(t *testing.T) {
	var out bytes.Buffer
	cov := content.Check(content.Table{
		"qld": {"family-law": {Title: "Family Law in Queensland"}, "space-law": {Title: "Space"}},
		"xx":  {"family-law": {Title: "Nowhere"}},
	})

	require.NoError(t, reportCoverage(&out, cov, false))
	assert.Contains(t, out.String(), "Coverage: 1/112")
	assert.Contains(t, out.String(), "  act/family-law\n")
	assert.Contains(t, out.String(), "Unknown states:\n  xx\n")
	assert.Contains(t, out.String(), "  qld/space-law\n")

	assert.ErrorIs(t, reportCoverage(io.Discard, cov, true), errIncompleteCoverage)
}

func TestReportCoverage_Complete(t *testing.T) {
	table := content.Table{}
	for _, p := range service.NewPageService().StaticParams() {
		if table[p.State] == nil {
			table[p.State] = map[string]models.ContentBlock{}
		}
		table[p.State][p.PracticeArea] = models.ContentBlock{Title: p.PracticeArea}
	}

	var out bytes.Buffer
	require.NoError(t, reportCoverage(&out, content.Check(table), true))
	assert.Contains(t, out.String(), "Coverage: 112/112")
	assert.NotContains(t, out.String(), "Missing")
}

func TestExportSite(t *testing.T) {
	store := newLocalStore(t)
	renderer, err := render.New()
	require.NoError(t, err)
	pages := service.NewPageService(service.WithContentResolver(content.Default()))

	n, err := exportSite(context.Background(), pages, renderer, store, "site")
	require.NoError(t, err)
	assert.Equal(t, 1+1+8+112, n)

	assert.Contains(t, readKey(t, store, "site/qld/family-law/index.html"), "<title>Family Law Lawyers in Queensland | AusVerity</title>")
	assert.Contains(t, readKey(t, store, "site/404.html"), "<title>Page Not Found</title>")
	assert.Contains(t, readKey(t, store, "site/act/index.html"), "Australian Capital Territory")
	assert.Contains(t, readKey(t, store, "site/index.html"), `<a href="/nsw">New South Wales</a>`)
}

func TestSeedStorage_RoundTrips(t *testing.T) {
	store := newLocalStore(t)
	table, err := content.Embedded()
	require.NoError(t, err)

	dst := content.StorageSource{Store: store, Prefix: "content"}
	n, err := seedStorage(context.Background(), table, dst)
	require.NoError(t, err)
	assert.Equal(t, len(table), n)

	loaded, err := dst.Load(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(table, loaded); diff != "" {
		t.Errorf("seeded content differs (-embedded +loaded):\n%s", diff)
	}
}

type recordingUpserter struct {
	rows map[string]models.ContentBlock
	err  error
}

func (r *recordingUpserter) Upsert(ctx context.Context, stateCode, slug string, block models.ContentBlock) error {
	if r.err != nil {
		return r.err
	}
	r.rows[stateCode+"/"+slug] = block
	return nil
}

func TestSeedPostgres(t *testing.T) {
	table, err := content.Embedded()
	require.NoError(t, err)

	repo := &recordingUpserter{rows: map[string]models.ContentBlock{}}
	n, err := seedPostgres(context.Background(), table, repo)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), n)
	assert.Equal(t, "Family Law in Queensland", repo.rows["qld/family-law"].Title)

	_, err = seedPostgres(context.Background(), table, &recordingUpserter{err: errors.New("down")})
	assert.ErrorContains(t, err, "down")
}

func TestDraftTargets(t *testing.T) {
	table := content.Table{"qld": {"family-law": {Title: "Family Law in Queensland"}}}

	targets, err := draftTargets(table, "", "", true)
	require.NoError(t, err)
	assert.Len(t, targets, 111)
	assert.NotContains(t, targets, models.RouteParams{State: "qld", PracticeArea: "family-law"})

	targets, err = draftTargets(table, "nt", "tax-law", false)
	require.NoError(t, err)
	assert.Equal(t, []models.RouteParams{{State: "nt", PracticeArea: "tax-law"}}, targets)

	for _, tc := range []struct {
		state, slug string
		missing     bool
	}{
		{"", "", false},
		{"nt", "", false},
		{"xx", "tax-law", false},
		{"nt", "nope", false},
		{"nt", "tax-law", true},
	} {
		_, err := draftTargets(table, tc.state, tc.slug, tc.missing)
		assert.Error(t, err, "%+v", tc)
	}
}

func TestExampleFor(t *testing.T) {
	table := content.Table{
		"vic": {"family-law": {Title: "Family Law in Victoria"}},
		"nsw": {"family-law": {Title: "Family Law in New South Wales"}},
	}

	example := exampleFor(table, models.RouteParams{State: "qld", PracticeArea: "family-law"})
	require.NotNil(t, example)
	assert.Equal(t, "Family Law in New South Wales", example.Title)

	example = exampleFor(table, models.RouteParams{State: "nsw", PracticeArea: "family-law"})
	require.NotNil(t, example)
	assert.Equal(t, "Family Law in Victoria", example.Title)

	assert.Nil(t, exampleFor(table, models.RouteParams{State: "qld", PracticeArea: "tax-law"}))
}

func TestHashToken(t *testing.T) {
	token, hash, err := hashToken("operator-token", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, "operator-token", token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)))

	generated, hash, err := hashToken("", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Len(t, generated, 72)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(generated)))

	_, _, err = hashToken(string(make([]byte, 73)), bcrypt.MinCost)
	assert.Error(t, err)
}

const listingsYAML = `
- name: Jane Citizen
  firm_name: Citizen Family Lawyers
  state: qld
  categories: [family]
  suburb: Brisbane
  verified: true
- name: Sam Taylor
  state: vic
  categories: [criminal, injury]
`

type recordingCreator struct {
	created []*models.Lawyer
	failAt  int
}

func (r *recordingCreator) Create(ctx context.Context, lawyer *models.Lawyer) error {
	if r.failAt > 0 && len(r.created)+1 == r.failAt {
		return errors.New("insert failed")
	}
	r.created = append(r.created, lawyer)
	return nil
}

func TestParseLawyers(t *testing.T) {
	lawyers, err := parseLawyers(strings.NewReader(listingsYAML))
	require.NoError(t, err)
	require.Len(t, lawyers, 2)

	assert.Equal(t, "Jane Citizen", lawyers[0].Name)
	require.NotNil(t, lawyers[0].FirmName)
	assert.Equal(t, "Citizen Family Lawyers", *lawyers[0].FirmName)
	assert.True(t, lawyers[0].Verified)

	assert.Equal(t, "vic", lawyers[1].StateCode)
	assert.Equal(t, []string{"criminal", "injury"}, lawyers[1].Categories)
	assert.Nil(t, lawyers[1].FirmName)
	assert.Nil(t, lawyers[1].Phone)
}

func TestParseLawyers_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing name", "- state: qld\n  categories: [family]\n", "name is required"},
		{"unknown state", "- name: A\n  state: xx\n  categories: [family]\n", `unknown state "xx"`},
		{"no categories", "- name: A\n  state: qld\n", "at least one category"},
		{"unknown category", "- name: A\n  state: qld\n  categories: [maritime]\n", `unknown category "maritime"`},
		{"unknown field", "- name: A\n  state: qld\n  categories: [family]\n  fax: 123\n", "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLawyers(strings.NewReader(tt.doc))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestImportLawyers(t *testing.T) {
	lawyers, err := parseLawyers(strings.NewReader(listingsYAML))
	require.NoError(t, err)

	repo := &recordingCreator{}
	n, err := importLawyers(context.Background(), lawyers, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Same(t, lawyers[0], repo.created[0])

	n, err = importLawyers(context.Background(), lawyers, &recordingCreator{failAt: 2})
	assert.ErrorContains(t, err, "failed to create Sam Taylor")
	assert.Equal(t, 1, n)
}

type recordingDeleter struct {
	deleted []string
	err     error
}

func (r *recordingDeleter) Delete(ctx context.Context, stateCode, slug string) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, stateCode+"/"+slug)
	return nil
}

func TestStaleRows(t *testing.T) {
	table := content.Table{
		"qld": {"family-law": {Title: "Family Law in Queensland"}, "space-law": {Title: "Space"}},
		"xx":  {"wills-estates": {Title: "B"}, "family-law": {Title: "A"}},
	}

	want := []models.RouteParams{
		{State: "qld", PracticeArea: "space-law"},
		{State: "xx", PracticeArea: "family-law"},
		{State: "xx", PracticeArea: "wills-estates"},
	}
	assert.Empty(t, cmp.Diff(want, staleRows(table)))

	assert.Empty(t, staleRows(content.Table{"qld": {"family-law": {Title: "Family Law in Queensland"}}}))
}

func TestPruneRows(t *testing.T) {
	rows := []models.RouteParams{
		{State: "qld", PracticeArea: "space-law"},
		{State: "xx", PracticeArea: "family-law"},
	}

	repo := &recordingDeleter{}
	require.NoError(t, pruneRows(context.Background(), rows, repo))
	assert.Equal(t, []string{"qld/space-law", "xx/family-law"}, repo.deleted)

	err := pruneRows(context.Background(), rows, &recordingDeleter{err: errors.New("down")})
	assert.ErrorContains(t, err, "failed to delete qld/space-law")
}
