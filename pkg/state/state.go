package state

import (
	"os"
	"path/filepath"

	"github.com/datatug/filtertug/pkg/filtering"
	"github.com/datatug/filtertug/pkg/fsutils"
)

const defaultSettingsDir = "~/.filtertug"
const stateFileName = "state.json"
const maxRecentFilters = 10

var settingsDirPath = fsutils.ExpandHome(defaultSettingsDir)

// State is what survives between explorer sessions.
type State struct {
	CurrentDir    string         `json:"current_dir,omitempty"`
	LastFilter    *StoredFilter  `json:"last_filter,omitempty"`
	RecentFilters []StoredFilter `json:"recent_filters,omitempty"`
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func stateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

// MasksFilePath is where user mask definitions live.
func MasksFilePath() string {
	return filepath.Join(settingsDirPath, "masks.yaml")
}

func Load() (*State, error) {
	var s State
	return &s, readJSON(stateFilePath(), false, &s)
}

func Save(s *State) error {
	if err := ensureSettingsDir(); err != nil {
		return err
	}
	return writeJSON(stateFilePath(), s)
}

// SaveLastFilter records r as the active filter and pushes it onto the
// recent list, most recent first, deduplicated, capped.
func SaveLastFilter(r filtering.Request) error {
	s, err := Load()
	if err != nil {
		return err
	}
	stored := FromRequest(r)
	s.LastFilter = &stored
	recents := []StoredFilter{stored}
	for _, old := range s.RecentFilters {
		if old == stored {
			continue
		}
		recents = append(recents, old)
		if len(recents) == maxRecentFilters {
			break
		}
	}
	s.RecentFilters = recents
	return Save(s)
}

func SaveCurrentDir(dir string) error {
	s, err := Load()
	if err != nil {
		return err
	}
	s.CurrentDir = dir
	return Save(s)
}

func ensureSettingsDir() error {
	info, err := os.Stat(settingsDirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(settingsDirPath, 0755)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return os.ErrInvalid
	}
	return nil
}
