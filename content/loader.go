package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"ausverity-backend/models"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported content format")
	ErrInvalidDocument   = errors.New("invalid content document")
)

// document is the on-disk shape of one state's content
type document struct {
	State         string                         `yaml:"state" json:"state"`
	PracticeAreas map[string]models.ContentBlock `yaml:"practice_areas" json:"practice_areas"`
}

// Supported reports whether name has an extension Decode understands
func Supported(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Decode parses one state document. The codec is chosen from name's extension.
func Decode(name string, r io.Reader) (string, map[string]models.ContentBlock, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", name, err)
	}

	var doc document
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return "", nil, fmt.Errorf("decode %s: %w", name, err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return "", nil, fmt.Errorf("%w: %s holds more than one document", ErrInvalidDocument, name)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return "", nil, fmt.Errorf("decode %s: %w", name, err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return "", nil, fmt.Errorf("%w: %s holds more than one document", ErrInvalidDocument, name)
		}
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	if doc.State == "" {
		return "", nil, fmt.Errorf("%w: %s has no state", ErrInvalidDocument, name)
	}
	for slug, block := range doc.PracticeAreas {
		if strings.TrimSpace(block.Title) == "" {
			return "", nil, fmt.Errorf("%w: %s/%s has no title", ErrInvalidDocument, doc.State, slug)
		}
	}
	if doc.PracticeAreas == nil {
		doc.PracticeAreas = map[string]models.ContentBlock{}
	}

	return doc.State, doc.PracticeAreas, nil
}

// LoadFS loads every supported document in dir. Two documents for the same
// state are an error.
func LoadFS(fsys fs.FS, dir string) (Table, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	table := make(Table)
	for _, entry := range entries {
		if entry.IsDir() || !Supported(entry.Name()) {
			continue
		}

		name := path.Join(dir, entry.Name())
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		state, areas, err := Decode(name, f)
		f.Close()
		if err != nil {
			return nil, err
		}

		if _, dup := table[state]; dup {
			return nil, fmt.Errorf("%w: state %s defined more than once", ErrInvalidDocument, state)
		}
		table[state] = areas
	}

	return table, nil
}

// Encode writes one state's blocks as a YAML document
func Encode(w io.Writer, state string, areas map[string]models.ContentBlock) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{State: state, PracticeAreas: areas}); err != nil {
		return fmt.Errorf("encode %s: %w", state, err)
	}
	return enc.Close()
}
