package files

import (
	"os"
	"path"
	"strings"
)

// DirContext is a directory plus its listed children, as shown by one
// explorer panel.
type DirContext struct {
	Store    Store
	Path     string
	children []os.DirEntry
}

func NewDirContext(store Store, dirPath string, children []os.DirEntry) *DirContext {
	if dirPath != "/" {
		dirPath = strings.TrimSuffix(dirPath, "/")
	}
	return &DirContext{
		Store:    store,
		Path:     dirPath,
		children: children,
	}
}

func (c *DirContext) SetChildren(entries []os.DirEntry) {
	c.children = entries
}

func (c *DirContext) Children() []os.DirEntry {
	return c.children
}

// Entries returns the children annotated with this directory's path.
func (c *DirContext) Entries() []EntryWithDirPath {
	entries := make([]EntryWithDirPath, len(c.children))
	for i, child := range c.children {
		entries[i] = NewEntryWithDirPath(child, c.Path)
	}
	return entries
}

func (c *DirContext) Name() string {
	switch c.Path {
	case "":
		return ""
	case "/":
		return "/"
	}
	return path.Base(c.Path)
}

func (c *DirContext) String() string {
	return c.Path
}
