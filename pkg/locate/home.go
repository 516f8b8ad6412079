package locate

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Steam library locations relative to the user's home directory, in search
// order.
var SteamLibraryPaths = []string{
	".local/share/Steam/SteamApps/common/Save the Dodos/" + ArchiveName,
	".steam/Steam/SteamApps/common/Save the Dodos/" + ArchiveName,
}

// HomeLocator searches a list of home-relative paths, ignoring case.
type HomeLocator struct {
	fs      afero.Fs
	homeDir string
	paths   []string
}

func NewHomeLocator(fs afero.Fs, homeDir string, paths []string) *HomeLocator {
	return &HomeLocator{
		fs:      fs,
		homeDir: homeDir,
		paths:   paths,
	}
}

func (l *HomeLocator) Locate() (string, error) {
	home := l.homeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return "", err
		}
	}

	for _, path := range l.paths {
		if archive, ok := FindPathIgnoreCase(l.fs, home, path); ok {
			log.Debugf("found archive at %s", archive)
			return archive, nil
		}
		log.Debugf("no archive at ~/%s", path)
	}
	return "", ErrNotFound
}

// FindPathIgnoreCase resolves the slash-separated relative path under
// baseDir, matching each segment case-insensitively against the real
// directory entries. It returns false if any segment does not exist.
func FindPathIgnoreCase(fs afero.Fs, baseDir, relPath string) (string, bool) {
	path := baseDir
	for _, name := range strings.Split(relPath, "/") {
		if name == "" {
			continue
		}
		names, err := afero.ReadDir(fs, path)
		if err != nil {
			return "", false
		}
		nameMap := make(map[string]string, len(names))
		for _, fi := range names {
			nameMap[strings.ToLower(fi.Name())] = fi.Name()
		}
		actual, ok := nameMap[strings.ToLower(name)]
		if !ok {
			return "", false
		}
		path = filepath.Join(path, actual)
	}
	return path, true
}
