package helpers

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	type payload struct {
		Name  string `json:"name"`
		Hours int    `json:"hours"`
	}

	require.NoError(t, SaveJSON(payload{Name: "Acme Portal", Hours: 240}, path))

	var loaded payload
	require.NoError(t, LoadJSON(path, &loaded))
	assert.Equal(t, payload{Name: "Acme Portal", Hours: 240}, loaded)
}

func TestLoadJSONMissingFile(t *testing.T) {
	var target map[string]interface{}
	err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &target)

	assert.Error(t, err)
}

func TestLoadJSONInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var target map[string]interface{}
	assert.Error(t, LoadJSON(path, &target))
}

func TestSaveText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")

	require.NoError(t, SaveText("# Summary\n", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Summary\n", string(content))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on existing directories.
	assert.NoError(t, EnsureDir(dir))
}

func TestGenerateOutputFilename(t *testing.T) {
	filename := GenerateOutputFilename("estimate", "json")

	assert.Regexp(t, regexp.MustCompile(`^estimate-\d{8}-\d{6}\.json$`), filename)
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("output: {}"), 0644))
	assert.True(t, FileExists(path))
}
