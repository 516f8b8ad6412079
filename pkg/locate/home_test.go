package locate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kralicky/zazus/pkg/locate"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0o644))
}

func TestFindPathIgnoreCase(t *testing.T) {
	home := t.TempDir()
	want := filepath.Join(home, ".local", "share", "Steam", "steamapps", "common", "Save the Dodos", "package.nw")
	mkfile(t, want)

	fs := afero.NewOsFs()
	for _, rel := range []string{
		".local/share/Steam/SteamApps/common/Save the Dodos/package.nw",
		".LOCAL/SHARE/steam/STEAMAPPS/Common/save THE dodos/Package.NW",
		".local/share/steam/steamapps/common/save the dodos/package.nw",
	} {
		path, ok := locate.FindPathIgnoreCase(fs, home, rel)
		assert.True(t, ok, rel)
		assert.Equal(t, want, path, rel)
	}

	_, ok := locate.FindPathIgnoreCase(fs, home, ".local/share/Steam/SteamApps/common/Save the Zazus/package.nw")
	assert.False(t, ok)

	_, ok = locate.FindPathIgnoreCase(fs, home, ".local/share/Steam/SteamApps/common/Save the Dodos/package.nw/extra")
	assert.False(t, ok)
}

func TestFindPathIgnoreCaseMemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/u/Games", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/home/u/Games/Data.ZIP", []byte("PK"), 0o644))

	path, ok := locate.FindPathIgnoreCase(fs, "/home/u", "games/data.zip")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/home/u", "Games", "Data.ZIP"), path)

	_, ok = locate.FindPathIgnoreCase(fs, "/home/u", "games/other.zip")
	assert.False(t, ok)
}

func TestHomeLocatorOrder(t *testing.T) {
	home := t.TempDir()
	second := filepath.Join(home, ".steam", "steam", "SteamApps", "common", "Save the Dodos", "package.nw")
	mkfile(t, second)

	l := locate.NewHomeLocator(afero.NewOsFs(), home, locate.SteamLibraryPaths)
	path, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, second, path)

	first := filepath.Join(home, ".local", "share", "Steam", "SteamApps", "common", "Save the Dodos", "package.nw")
	mkfile(t, first)

	path, err = l.Locate()
	require.NoError(t, err)
	assert.Equal(t, first, path)
}

func TestHomeLocatorNotFound(t *testing.T) {
	l := locate.NewHomeLocator(afero.NewOsFs(), t.TempDir(), locate.SteamLibraryPaths)
	_, err := l.Locate()
	assert.ErrorIs(t, err, locate.ErrNotFound)
}

func TestHomeLocatorExtraPaths(t *testing.T) {
	home := t.TempDir()
	custom := filepath.Join(home, "games", "dodos", "package.nw")
	mkfile(t, custom)

	l, err := locate.ForPlatform("linux", locate.Options{
		HomeDir:    home,
		ExtraPaths: []string{"Games/Dodos/package.nw"},
	})
	require.NoError(t, err)
	path, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, custom, path)
}
