package errors

import (
	"strings"
	"unicode"
)

// ValidateItemID validates an item identifier for safety and correctness.
// Item IDs are opaque strings, but a few structural rules keep them usable
// as cache keys and file names:
//   - No empty IDs
//   - No control characters or null bytes
//   - Maximum length of 512 characters
//
// Synthetic prefixes ("tag:", "header:") are allowed; everything after the
// prefix follows the same rules.
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}

	if len(id) > 512 {
		return New(ErrCodeInvalidItem, "item id too long (max 512 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id contains invalid control characters")
		}
	}

	if strings.Contains(id, "\x00") {
		return New(ErrCodeInvalidItem, "item id contains null bytes")
	}

	return nil
}

// ValidateLibraryPath validates a library root path before scanning.
// It rejects paths that could be used for traversal tricks when the path is
// later joined with item-relative names.
func ValidateLibraryPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "library path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "library path contains invalid control characters")
		}
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "library path contains null bytes")
	}

	return nil
}
