package commands

import (
	"errors"

	"github.com/kralicky/zazus/pkg/config"
	"github.com/kralicky/zazus/pkg/locate"
	"github.com/kralicky/zazus/pkg/patch"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const locatorAnnotation = "zazus/locator"

// LocatorAnnotations marks a command that has to find the game archive.
var LocatorAnnotations = map[string]string{locatorAnnotation: "true"}

func NeedsLocator(cmd *cobra.Command) bool {
	return cmd.Annotations[locatorAnnotation] == "true"
}

// Options carries the platform the commands run on. It is chosen once in
// main and handed down; nothing below inspects runtime.GOOS.
type Options struct {
	GOOS string
	Fs   afero.Fs

	// Locator is set by SelectLocator. It stays nil when an archive path is
	// configured.
	Locator locate.Locator
}

// SelectLocator picks the platform locator, unless an archive path is
// configured, in which case no discovery is needed.
func (o *Options) SelectLocator() error {
	if config.ArchivePath() != "" {
		return nil
	}
	l, err := locate.ForPlatform(o.GOOS, locate.Options{
		Fs:         o.Fs,
		ExtraPaths: config.SearchPaths(),
	})
	if err != nil {
		return err
	}
	o.Locator = l
	return nil
}

// findArchive returns the configured archive path if there is one, otherwise
// asks the platform locator.
func (o *Options) findArchive() (string, error) {
	if archive := config.ArchivePath(); archive != "" {
		log.Debugf("using configured archive %s", archive)
		return archive, nil
	}
	if o.Locator == nil {
		return "", errors.New("no archive locator selected")
	}
	return o.Locator.Locate()
}

func (o *Options) fileMap() (*patch.FileMap, error) {
	pkgDir, err := config.PackageDir()
	if err != nil {
		return nil, err
	}
	log.Debugf("reading package directory %s", pkgDir)
	return patch.BuildFileMap(o.Fs, pkgDir)
}
