package locate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kralicky/zazus/pkg/locate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistry struct {
	values map[string]string
	reads  []string
}

func (r *fakeRegistry) ReadString(root locate.RootKey, path, value string) (string, error) {
	k := fmt.Sprintf(`%s\%s\%s`, root, path, value)
	r.reads = append(r.reads, k)
	switch v, ok := r.values[k]; {
	case !ok:
		return "", errors.New("the system cannot find the file specified")
	case v == "":
		return "", locate.ErrWrongValueType
	default:
		return v, nil
	}
}

func TestRegistryLocatorFallback(t *testing.T) {
	keys := locate.SteamRegistryKeys
	reg := &fakeRegistry{
		values: map[string]string{
			// present, but not a string value
			fmt.Sprintf(`%s\%s\%s`, keys[1].Root, keys[1].Path, keys[1].Value): "",
			fmt.Sprintf(`%s\%s\%s`, keys[2].Root, keys[2].Path, keys[2].Value): `C:\Program Files (x86)\Steam`,
			fmt.Sprintf(`%s\%s\%s`, keys[4].Root, keys[4].Path, keys[4].Value): `D:\Steam`,
		},
	}

	l := locate.NewRegistryLocator(reg, keys)
	path, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, locate.SteamArchivePath(`C:\Program Files (x86)\Steam`), path)
	assert.Len(t, reg.reads, 3)
}

func TestRegistryLocatorNotFound(t *testing.T) {
	reg := &fakeRegistry{}
	l := locate.NewRegistryLocator(reg, locate.SteamRegistryKeys)
	_, err := l.Locate()
	assert.ErrorIs(t, err, locate.ErrNotFound)
	assert.Len(t, reg.reads, len(locate.SteamRegistryKeys))
}

func TestForPlatform(t *testing.T) {
	l, err := locate.ForPlatform("linux", locate.Options{})
	require.NoError(t, err)
	assert.IsType(t, &locate.HomeLocator{}, l)

	l, err = locate.ForPlatform("windows", locate.Options{Registry: &fakeRegistry{}})
	require.NoError(t, err)
	assert.IsType(t, &locate.RegistryLocator{}, l)

	_, err = locate.ForPlatform("darwin", locate.Options{})
	require.ErrorIs(t, err, locate.ErrUnsupportedPlatform)
	var perr *locate.UnsupportedPlatformError
	require.ErrorAs(t, err, &perr)
	assert.True(t, perr.NotYet)
	assert.Equal(t, "Mac OS X not yet supported", err.Error())

	_, err = locate.ForPlatform("plan9", locate.Options{})
	require.ErrorIs(t, err, locate.ErrUnsupportedPlatform)
	require.ErrorAs(t, err, &perr)
	assert.False(t, perr.NotYet)
	assert.Equal(t, "system not supported: plan9", err.Error())
}
