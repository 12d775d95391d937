package files

import (
	"os"
	"path"
)

// EntryWithDirPath pairs a directory entry with the directory it lives in,
// which is what filtering and display need: a full path plus the entry kind.
type EntryWithDirPath struct {
	os.DirEntry
	Dir string
}

func NewEntryWithDirPath(entry os.DirEntry, dir string) EntryWithDirPath {
	return EntryWithDirPath{
		DirEntry: entry,
		Dir:      dir,
	}
}

// FullName returns the slash-joined path of the entry.
func (e EntryWithDirPath) FullName() string {
	return path.Join(e.Dir, e.Name())
}

func (e EntryWithDirPath) String() string {
	return e.FullName()
}
