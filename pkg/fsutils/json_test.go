package fsutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestJSONFileRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	filePath := filepath.Join(t.TempDir(), "state.json")

	t.Run("missing_not_required", func(t *testing.T) {
		var p payload
		assert.NoError(t, ReadJSONFile(filePath, false, &p))
		assert.Equal(t, payload{}, p)
	})

	t.Run("missing_required", func(t *testing.T) {
		var p payload
		assert.Error(t, ReadJSONFile(filePath, true, &p))
	})

	t.Run("write_then_read", func(t *testing.T) {
		want := payload{Name: "filters", Count: 3}
		assert.NoError(t, WriteJSONFile(filePath, want))
		var got payload
		assert.NoError(t, ReadJSONFile(filePath, true, &got))
		assert.Equal(t, want, got)
	})

	t.Run("invalid_json", func(t *testing.T) {
		badPath := filepath.Join(t.TempDir(), "bad.json")
		assert.NoError(t, os.WriteFile(badPath, []byte("{invalid}"), 0644))
		var p payload
		assert.Error(t, ReadJSONFile(badPath, true, &p))
	})
}
