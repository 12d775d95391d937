package osfile

import (
	"context"
	"net/url"
	"os"

	"github.com/datatug/filtertug/pkg/files"
)

var osReadDir = os.ReadDir
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store reads directories from the local filesystem.
type Store struct {
	title string
	root  string
}

func NewStore(root string) *Store {
	if root == "" {
		root = "/"
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = "local"
	}
	return &store
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) RootURL() url.URL {
	return url.URL{Scheme: "file", Path: s.root}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}
