//go:build windows

package locate

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

type systemRegistry struct{}

func SystemRegistry() ValueReader {
	return systemRegistry{}
}

func (systemRegistry) ReadString(root RootKey, path, value string) (string, error) {
	var hKey registry.Key
	switch root {
	case LocalMachine:
		hKey = registry.LOCAL_MACHINE
	case CurrentUser:
		hKey = registry.CURRENT_USER
	default:
		return "", fmt.Errorf("unknown root key: %d", root)
	}

	key, err := registry.OpenKey(hKey, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	val, valType, err := key.GetStringValue(value)
	if err != nil {
		return "", err
	}
	if valType != registry.SZ {
		return "", ErrWrongValueType
	}
	return val, nil
}
