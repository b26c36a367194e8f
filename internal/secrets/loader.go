// Package secrets loads credential values referenced from the configuration.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a secret from the given file and trims surrounding
// whitespace. The name is only used to give errors context.
func LoadFile(name, file string) (string, error) {
	if name = strings.TrimSpace(name); name == "" {
		name = "secret"
	}

	file = strings.TrimSpace(file)
	if file == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	return secret, nil
}
