package locate

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

const ArchiveName = "package.nw"

var ErrNotFound = errors.New(ArchiveName + " not found")

var ErrUnsupportedPlatform = errors.New("system not supported")

// UnsupportedPlatformError is returned by ForPlatform for any OS family
// without a Locator. NotYet is set for platforms that are planned.
type UnsupportedPlatformError struct {
	GOOS   string
	NotYet bool
}

func (e *UnsupportedPlatformError) Error() string {
	if e.NotYet {
		return fmt.Sprintf("%s not yet supported", e.GOOS)
	}
	return fmt.Sprintf("system not supported: %s", e.GOOS)
}

func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// Locator finds the absolute path of the game archive.
type Locator interface {
	Locate() (string, error)
}

type Options struct {
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// HomeDir defaults to os.UserHomeDir.
	HomeDir string
	// ExtraPaths are searched after the built-in home-relative candidates.
	ExtraPaths []string
	// Registry defaults to the system registry.
	Registry ValueReader
}

// ForPlatform returns the Locator for the given GOOS value.
func ForPlatform(goos string, opts Options) (Locator, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	switch goos {
	case "linux":
		paths := append(append([]string{}, SteamLibraryPaths...), opts.ExtraPaths...)
		return NewHomeLocator(opts.Fs, opts.HomeDir, paths), nil
	case "windows":
		reg := opts.Registry
		if reg == nil {
			reg = SystemRegistry()
		}
		return NewRegistryLocator(reg, SteamRegistryKeys), nil
	case "darwin":
		return nil, &UnsupportedPlatformError{GOOS: "Mac OS X", NotYet: true}
	default:
		return nil, &UnsupportedPlatformError{GOOS: goos}
	}
}
