package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"ausverity-backend/directory"
	"ausverity-backend/storage"
)

// Source loads a complete content table
type Source interface {
	Load(ctx context.Context) (Table, error)
	Name() string
}

// EmbeddedSource loads the content compiled into the binary
type EmbeddedSource struct{}

func (EmbeddedSource) Load(ctx context.Context) (Table, error) { return Embedded() }
func (EmbeddedSource) Name() string                            { return "embedded" }

// DirSource loads content documents from a local directory
type DirSource struct {
	Dir string
}

func (s DirSource) Load(ctx context.Context) (Table, error) {
	return LoadFS(os.DirFS(s.Dir), ".")
}

func (s DirSource) Name() string { return "dir:" + s.Dir }

// StorageSource loads {Prefix}/{state}.yaml for every known state from
// object storage. A missing object means the state has no content.
type StorageSource struct {
	Store  storage.Storage
	Prefix string
}

// Key returns the object key holding a state's document
func (s StorageSource) Key(stateCode string) string {
	return path.Join(s.Prefix, stateCode+".yaml")
}

func (s StorageSource) Load(ctx context.Context) (Table, error) {
	if s.Store == nil {
		return nil, errors.New("content storage not set")
	}

	table := make(Table)
	for _, st := range directory.States() {
		key := s.Key(st.Code)
		rc, err := s.Store.Get(ctx, key)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", key, err)
		}

		state, areas, err := Decode(key, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		if state != st.Code {
			return nil, fmt.Errorf("%w: %s declares state %q", ErrInvalidDocument, key, state)
		}
		table[state] = areas
	}

	return table, nil
}

func (s StorageSource) Name() string { return "storage:" + s.Prefix }
