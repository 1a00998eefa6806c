package content

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"ausverity-backend/directory"
	"ausverity-backend/models"
	"ausverity-backend/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const qldYAML = `state: qld
practice_areas:
  family-law:
    title: Family Law in Queensland
    summary: Summary
    sections:
      - heading: Divorce
        paragraphs:
          - Twelve months separation.
        items:
          - One
    legislation:
      - Family Law Act 1975 (Cth)
`

const qldJSON = `{
  "state": "qld",
  "practice_areas": {
    "family-law": {
      "title": "Family Law in Queensland",
      "summary": "Summary",
      "sections": [{"heading": "Divorce", "paragraphs": ["Twelve months separation."], "items": ["One"]}],
      "legislation": ["Family Law Act 1975 (Cth)"]
    }
  }
}`

func TestDecode_YAMLAndJSONAgree(t *testing.T) {
	stateY, areasY, err := Decode("qld.yaml", strings.NewReader(qldYAML))
	require.NoError(t, err)
	stateJ, areasJ, err := Decode("qld.json", strings.NewReader(qldJSON))
	require.NoError(t, err)

	assert.Equal(t, "qld", stateY)
	assert.Equal(t, stateY, stateJ)
	if diff := cmp.Diff(areasY, areasJ); diff != "" {
		t.Errorf("yaml and json documents differ (-yaml +json):\n%s", diff)
	}
	assert.Equal(t, "Divorce", areasY["family-law"].Sections[0].Heading)
}

func TestDecode_Errors(t *testing.T) {
	_, _, err := Decode("qld.txt", strings.NewReader(qldYAML))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = Decode("none.yaml", strings.NewReader("practice_areas: {}\n"))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, _, err = Decode("empty.yaml", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, _, err = Decode("untitled.yaml", strings.NewReader("state: qld\npractice_areas:\n  family-law:\n    summary: x\n"))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, _, err = Decode("typo.yaml", strings.NewReader("state: qld\npractice_area: {}\n"))
	assert.Error(t, err)

	_, _, err = Decode("typo.json", strings.NewReader(`{"state":"qld","extra":1}`))
	assert.Error(t, err)
}

func TestDecode_RejectsTrailingDocuments(t *testing.T) {
	_, _, err := Decode("multi.yaml", strings.NewReader(qldYAML+"---\nstate: nsw\n"))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, _, err = Decode("multi.json", strings.NewReader(`{"state":"qld"} {"state":"nsw"}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	// a leading separator or trailing newlines are still one document
	state, _, err := Decode("lead.yaml", strings.NewReader("---\nstate: wa\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "wa", state)
}

func TestDecode_StateWithoutAreas(t *testing.T) {
	state, areas, err := Decode("nt.yml", strings.NewReader("state: nt\n"))
	require.NoError(t, err)
	assert.Equal(t, "nt", state)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestEncode_DecodesBack(t *testing.T) {
	_, areas, err := Decode("qld.yaml", strings.NewReader(qldYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "qld", areas))

	state, again, err := Decode("qld.yaml", &buf)
	require.NoError(t, err)
	assert.Equal(t, "qld", state)
	assert.Equal(t, areas, again)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"content/qld.yaml":  {Data: []byte(qldYAML)},
		"content/act.json":  {Data: []byte(`{"state":"act","practice_areas":{"litigation":{"title":"Litigation","sections":[]}}}`)},
		"content/README.md": {Data: []byte("ignored")},
		"content/sub/x.yaml": {Data: []byte("not: loaded")},
	}

	table, err := LoadFS(fsys, "content")
	require.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "Litigation", table["act"]["litigation"].Title)
}

func TestLoadFS_DuplicateState(t *testing.T) {
	fsys := fstest.MapFS{
		"qld.yaml":  {Data: []byte(qldYAML)},
		"qld2.json": {Data: []byte(qldJSON)},
	}
	_, err := LoadFS(fsys, ".")
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoadFS_MissingDir(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "nope")
	assert.Error(t, err)
}

func TestEmbedded(t *testing.T) {
	table, err := Embedded()
	require.NoError(t, err)

	for state := range table {
		assert.True(t, directory.IsValidStateCode(state), state)
	}
	require.Contains(t, table, "qld")
	require.Contains(t, table["qld"], "family-law")
	require.Contains(t, table["act"], "litigation")

	cov := Check(table)
	assert.Empty(t, cov.UnknownStates)
	assert.Empty(t, cov.UnknownSlugs)
	assert.NotEmpty(t, cov.Missing, "embedded content intentionally leaves gaps")
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(Table{
		"qld": {"family-law": {Title: "Family Law in Queensland"}},
		"act": {},
	})

	block := r.Resolve("qld", "family-law")
	require.NotNil(t, block)
	assert.Equal(t, "Family Law in Queensland", block.Title)

	assert.Nil(t, r.Resolve("qld", "tax-law"))
	assert.Nil(t, r.Resolve("act", "litigation"))
	assert.Nil(t, r.Resolve("wa", "family-law"))
	assert.Nil(t, r.Resolve("zz", "family-law"))
	assert.Nil(t, r.Resolve("", ""))

	var nilResolver *Resolver
	assert.Nil(t, nilResolver.Resolve("qld", "family-law"))
	assert.Equal(t, 0, nilResolver.Len())
}

func TestResolver_Deterministic(t *testing.T) {
	r := Default()
	first := r.Resolve("qld", "family-law")
	second := r.Resolve("qld", "family-law")
	require.NotNil(t, first)
	assert.Equal(t, first, second)

	first.Title = "mutated"
	assert.NotEqual(t, "mutated", r.Resolve("qld", "family-law").Title)
}

func TestResolver_SwapIsolatedFromCaller(t *testing.T) {
	table := Table{"qld": {"family-law": {Title: "v1"}}}
	r := NewResolver(table)

	table["qld"]["family-law"] = models.ContentBlock{Title: "changed"}
	assert.Equal(t, "v1", r.Resolve("qld", "family-law").Title)

	r.Swap(Table{"qld": {"family-law": {Title: "v2"}}})
	assert.Equal(t, "v2", r.Resolve("qld", "family-law").Title)
	assert.Equal(t, 1, r.Len())

	snap := r.Snapshot()
	snap["qld"]["family-law"] = models.ContentBlock{Title: "changed"}
	assert.Equal(t, "v2", r.Resolve("qld", "family-law").Title)
}

func TestResolver_ReturnedBlocksDoNotAlias(t *testing.T) {
	base := Default()
	r := NewResolver(base.Snapshot())

	block := r.Resolve("qld", "family-law")
	require.NotNil(t, block)
	require.NotEmpty(t, block.Sections)
	heading := block.Sections[0].Heading

	block.Sections[0].Heading = "changed"
	if len(block.Sections[0].Paragraphs) > 0 {
		block.Sections[0].Paragraphs[0] = "changed"
	}
	if len(block.Legislation) > 0 {
		block.Legislation[0] = "changed"
	}

	again := r.Resolve("qld", "family-law")
	assert.Equal(t, heading, again.Sections[0].Heading)
	assert.NotContains(t, again.Sections[0].Paragraphs, "changed")
	assert.NotContains(t, again.Legislation, "changed")
	assert.Equal(t, heading, base.Resolve("qld", "family-law").Sections[0].Heading)
}

func TestResolver_SnapshotDoesNotAliasSections(t *testing.T) {
	src := Table{"vic": {"family-law": {
		Title:       "Family Law in Victoria",
		Sections:    []models.ContentSection{{Heading: "Parenting", Items: []string{"mediation"}}},
		Legislation: []string{"Family Law Act 1975 (Cth)"},
	}}}
	r := NewResolver(src)

	src["vic"]["family-law"].Sections[0].Items[0] = "changed"
	snap := r.Snapshot()
	snap["vic"]["family-law"].Sections[0].Heading = "changed"
	snap["vic"]["family-law"].Legislation[0] = "changed"

	got := r.Resolve("vic", "family-law")
	assert.Equal(t, "Parenting", got.Sections[0].Heading)
	assert.Equal(t, []string{"mediation"}, got.Sections[0].Items)
	assert.Equal(t, []string{"Family Law Act 1975 (Cth)"}, got.Legislation)
}

func TestGetPracticeAreaContent(t *testing.T) {
	qld := GetPracticeAreaContent("qld", "family-law")
	require.NotNil(t, qld)
	assert.Equal(t, "Family Law in Queensland", qld.Title)

	act := GetPracticeAreaContent("act", "litigation")
	require.NotNil(t, act)
	assert.NotEmpty(t, act.Sections)

	// valid pair without content
	assert.Nil(t, GetPracticeAreaContent("nt", "tax-law"))
	// unknown state table
	assert.Nil(t, GetPracticeAreaContent("xx", "family-law"))
}

func TestCheck(t *testing.T) {
	cov := Check(Table{
		"qld": {"family-law": {Title: "x"}, "made-up": {Title: "y"}},
		"zz":  {"family-law": {Title: "z"}},
	})

	assert.Equal(t, 112, cov.Total)
	assert.Equal(t, 1, cov.Covered)
	assert.Len(t, cov.Missing, 111)
	assert.Equal(t, []string{"zz"}, cov.UnknownStates)
	assert.Equal(t, []models.RouteParams{{State: "qld", PracticeArea: "made-up"}}, cov.UnknownSlugs)
	assert.False(t, cov.Complete())

	full := Table{}
	for _, p := range directory.StaticParams() {
		if full[p.State] == nil {
			full[p.State] = map[string]models.ContentBlock{}
		}
		full[p.State][p.PracticeArea] = models.ContentBlock{Title: p.PracticeArea}
	}
	cov = Check(full)
	assert.True(t, cov.Complete())
	assert.Equal(t, 112, cov.Covered)
	assert.Empty(t, cov.Missing)
}

func TestStorageSource(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	src := StorageSource{Store: store, Prefix: "content"}
	assert.Equal(t, "content/qld.yaml", src.Key("qld"))

	table, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, table)

	require.NoError(t, store.Put(ctx, src.Key("qld"), "", strings.NewReader(qldYAML)))
	table, err = src.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, table, 1)
	assert.NotNil(t, NewResolver(table).Resolve("qld", "family-law"))

	// a document filed under the wrong state is rejected
	require.NoError(t, store.Put(ctx, src.Key("nsw"), "", strings.NewReader(qldYAML)))
	_, err = src.Load(ctx)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

type failingStore struct{ storage.Storage }

func (failingStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, errors.New("bucket unavailable")
}

func TestStorageSource_Errors(t *testing.T) {
	_, err := StorageSource{}.Load(context.Background())
	assert.Error(t, err)

	_, err = StorageSource{Store: failingStore{}}.Load(context.Background())
	assert.ErrorContains(t, err, "bucket unavailable")
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "qld.yaml"), []byte(qldYAML), 0o644))

	src := DirSource{Dir: dir}
	table, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "dir:"+dir, src.Name())

	table, err = EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 0)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, zap.NewNop(), func() { calls.Add(1) })
	}()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "qld.yaml"), []byte(qldYAML), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 400*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
