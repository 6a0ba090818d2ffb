package moderator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moderators.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	id := uuid.New()
	path := writeRoster(t, `{
		"moderators": [
			{"user_id": "`+id.String()+`", "email": "mod@test.com", "note": "lead"},
			{"email": "second@test.com"}
		]
	}`)

	roster, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, roster.Len())
	assert.True(t, roster.ContainsID(id))
	assert.True(t, roster.ContainsEmail("mod@test.com"))
	assert.True(t, roster.ContainsEmail("second@test.com"))
	assert.False(t, roster.ContainsID(uuid.New()))
	assert.False(t, roster.ContainsEmail("nobody@test.com"))
}

func TestLoadFromFileEmptyPath(t *testing.T) {
	roster, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, 0, roster.Len())
	assert.False(t, roster.ContainsEmail("anyone@test.com"))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFromFileBadJSON(t *testing.T) {
	path := writeRoster(t, `{"moderators": [`)
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileEmptyEntry(t *testing.T) {
	path := writeRoster(t, `{"moderators": [{"note": "who is this"}]}`)
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestContainsEmailEmptyString(t *testing.T) {
	roster := NewRoster()
	assert.False(t, roster.ContainsEmail(""))
}

func TestAll(t *testing.T) {
	path := writeRoster(t, `{"moderators": [{"email": "a@test.com"}, {"email": "b@test.com"}]}`)
	roster, err := LoadFromFile(path)
	require.NoError(t, err)

	entries := roster.All()
	require.Len(t, entries, 2)

	// Mutating the copy leaves the roster untouched.
	entries[0].Email = "changed@test.com"
	assert.True(t, roster.ContainsEmail("a@test.com"))
}
