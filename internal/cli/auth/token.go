package auth

import (
	"errors"
	"os"
	"path/filepath"
)

// SaveToken writes the bearer token to the given file.
func SaveToken(path, token string) error {
	if path == "" {
		return errors.New("empty token file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

// LoadToken reads the bearer token from the given file.
func LoadToken(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty token file path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	// Trim any trailing newlines/spaces
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	return string(b), nil
}
