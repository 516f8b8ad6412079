package locate

import (
	"errors"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

var ErrWrongValueType = errors.New("registry key has wrong type")

type RootKey int

const (
	LocalMachine RootKey = iota
	CurrentUser
)

func (k RootKey) String() string {
	switch k {
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	default:
		return "HKEY_UNKNOWN"
	}
}

type RegistryKey struct {
	Root  RootKey
	Path  string
	Value string
}

// ValueReader reads string values from the system configuration store.
// Implementations must return an error if the value is not a plain string.
type ValueReader interface {
	ReadString(root RootKey, path, value string) (string, error)
}

var SteamRegistryKeys = []RegistryKey{
	// confirmed sightings
	{LocalMachine, `Software\Valve\Steam`, "InstallPath"},
	{LocalMachine, `Software\Wow6432node\Valve\Steam`, "InstallPath"},
	{CurrentUser, `Software\Valve\Steam`, "SteamPath"},

	// remaining combinations
	{CurrentUser, `Software\Wow6432node\Valve\Steam`, "SteamPath"},
	{LocalMachine, `Software\Valve\Steam`, "SteamPath"},
	{LocalMachine, `Software\Wow6432node\Valve\Steam`, "SteamPath"},
	{CurrentUser, `Software\Valve\Steam`, "InstallPath"},
	{CurrentUser, `Software\Wow6432node\Valve\Steam`, "InstallPath"},
}

// RegistryLocator derives the archive path from the Steam install directory
// stored in the registry.
type RegistryLocator struct {
	reader ValueReader
	keys   []RegistryKey
}

func NewRegistryLocator(reader ValueReader, keys []RegistryKey) *RegistryLocator {
	return &RegistryLocator{
		reader: reader,
		keys:   keys,
	}
}

func (l *RegistryLocator) Locate() (string, error) {
	for _, key := range l.keys {
		installDir, err := l.reader.ReadString(key.Root, key.Path, key.Value)
		if err != nil {
			log.Debugf(`skipping %s\%s\%s: %v`, key.Root, key.Path, key.Value, err)
			continue
		}
		return SteamArchivePath(installDir), nil
	}
	return "", ErrNotFound
}

func SteamArchivePath(installDir string) string {
	return filepath.Join(installDir, "steamapps", "common", "Save the Dodos", ArchiveName)
}
