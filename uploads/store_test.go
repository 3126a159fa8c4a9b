package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cantina-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceGivesUniqueNames(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, err)

	first, disk, err := s.Place("empanada.PNG")
	require.NoError(t, err)
	second, _, err := s.Place("empanada.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "/uploads/"))
	assert.True(t, strings.HasSuffix(first, ".png"))
	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(s.Dir(), filepath.Base(first)), disk)
}

func TestPlaceRejectsExtension(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.Place("script.sh")
	assert.ErrorIs(t, err, models.ErrValidation)
	_, _, err = s.Place("noext")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRemove(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	path, disk, err := s.Place("a.jpg")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(disk, []byte("x"), 0o644))

	require.NoError(t, s.Remove(path))
	_, err = os.Stat(disk)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Remove(path), "already removed")
	assert.NoError(t, s.Remove("https://cdn.example.com/a.jpg"))
	assert.NoError(t, s.Remove("/uploads/../../etc/passwd"))
}
