package files

import (
	"context"
	"net/url"
	"os"
)

// Store abstracts the filesystem the explorer browses, so panels can be
// tested against fake stores and remote stores can be added later.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
