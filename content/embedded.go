package content

import (
	"embed"
	"sync"

	"ausverity-backend/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Embedded loads the content compiled into the binary
func Embedded() (Table, error) {
	return LoadFS(dataFS, "data")
}

// Default returns a process-wide resolver over the embedded content. If the
// embedded content fails to load the resolver is empty.
func Default() *Resolver {
	defaultOnce.Do(func() {
		t, err := Embedded()
		if err != nil {
			t = Table{}
		}
		defaultResolver = NewResolver(t)
	})
	return defaultResolver
}

// GetPracticeAreaContent resolves (stateCode, slug) against the embedded content
func GetPracticeAreaContent(stateCode, slug string) *models.ContentBlock {
	return Default().Resolve(stateCode, slug)
}
