//go:build !windows

package locate

import "runtime"

type systemRegistry struct{}

// SystemRegistry returns a reader that fails every lookup; there is no
// registry outside of windows.
func SystemRegistry() ValueReader {
	return systemRegistry{}
}

func (systemRegistry) ReadString(RootKey, string, string) (string, error) {
	return "", &UnsupportedPlatformError{GOOS: runtime.GOOS}
}
