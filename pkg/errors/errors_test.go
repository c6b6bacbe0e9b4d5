package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidMode, "unknown layout mode: %s", "spiral")

	if err.Code != ErrCodeInvalidMode {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidMode)
	}

	if err.Message != "unknown layout mode: spiral" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown layout mode: spiral")
	}

	expected := "INVALID_MODE: unknown layout mode: spiral"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidLibrary, cause, "scan failed")

	if err.Code != ErrCodeInvalidLibrary {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidLibrary)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidMode,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidView, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidView,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "structured error",
			err:      New(ErrCodeItemNotFound, "missing"),
			expected: ErrCodeItemNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "structured error strips code",
			err:      New(ErrCodeInvalidView, "unknown view kind"),
			expected: "unknown view kind",
		},
		{
			name:     "plain error as-is",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidateItemID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple id", id: "img-0001", wantErr: false},
		{name: "tag id", id: "tag:sunset", wantErr: false},
		{name: "header id", id: "header:A", wantErr: false},
		{name: "path-like id", id: "photos/2024/beach.jpg", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "control character", id: "img\x01", wantErr: true},
		{name: "too long", id: string(make([]byte, 600)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLibraryPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "absolute path", path: "/home/user/Pictures", wantErr: false},
		{name: "relative path", path: "./photos", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "null byte", path: "/tmp/\x00evil", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLibraryPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLibraryPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
