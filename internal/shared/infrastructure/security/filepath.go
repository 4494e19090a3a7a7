// Package security validates user-supplied file paths before they are
// opened for reading or writing.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyPath          = errors.New("file path cannot be empty")
	ErrForbiddenCharacter = errors.New("file path contains forbidden character")
	ErrIsDirectory        = errors.New("file path is a directory")
)

// dangerousChars are shell metacharacters that never belong in a task file name.
var dangerousChars = []string{";", "&", "|", "$", "`", "(", ")", "{", "}", "<", ">", "!", "\n", "\r"}

// ValidateFilePath cleans path, makes it absolute, and resolves symlinks when
// the file already exists. A path that does not exist yet is returned cleaned.
func ValidateFilePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}

	for _, char := range dangerousChars {
		if strings.Contains(path, char) {
			return "", fmt.Errorf("%w %q: %s", ErrForbiddenCharacter, char, path)
		}
	}

	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cleanPath, nil
		}
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}

	return resolvedPath, nil
}

// ValidateStoragePath validates a path that will be replaced wholesale on
// every save. Besides ValidateFilePath's checks it rejects directories.
func ValidateStoragePath(path string) (string, error) {
	cleanPath, err := ValidateFilePath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(cleanPath)
	if err == nil && info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, cleanPath)
	}
	return cleanPath, nil
}
