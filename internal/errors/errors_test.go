package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndWrap(t *testing.T) {
	err := New("nothing to confirm")
	assert.Equal(t, "nothing to confirm", err.Error())
	assert.Equal(t, Unknown, KindOf(err))

	wrapped := Wrap(err, "confirm")
	assert.Equal(t, "confirm: nothing to confirm", wrapped.Error())
	assert.Equal(t, err, Unwrap(wrapped))
	assert.True(t, Is(Wrap(wrapped, "dialog"), err))
	assert.Nil(t, Wrap(nil, "confirm"))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("already exists", "/sdcard/New", FileExists, nil)
	assert.Equal(t, "already exists: /sdcard/New", fileErr.Error())
	assert.Equal(t, "/sdcard/New", fileErr.Path())
	assert.Equal(t, FileExists, fileErr.Kind())
	assert.True(t, IsFileExists(fileErr))
	assert.False(t, IsFileNotFound(fileErr))

	cause := fmt.Errorf("permission denied")
	fileErr = NewFileError("failed to create folder", "/sdcard/New", FileCreateFailed, cause)
	assert.Equal(t, "failed to create folder: /sdcard/New: permission denied", fileErr.Error())
	assert.Equal(t, cause, Unwrap(fileErr))

	var target *FileError
	assert.True(t, As(fmt.Errorf("save: %w", fileErr), &target))
	assert.Equal(t, "/sdcard/New", target.Path())
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "Config.Detail", InvalidConfig, nil)
	assert.Equal(t, "invalid value: Config.Detail", configErr.Error())
	assert.Equal(t, "Config.Detail", configErr.Param())
	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("other")))

	configErr = NewConfigError("error parsing config file", "", InvalidConfig, fmt.Errorf("line 3"))
	assert.Equal(t, "error parsing config file: line 3", configErr.Error())
}

func TestFilterError(t *testing.T) {
	filterErr := NewFilterError("filter has no extensions", "Text", InvalidFilter, nil)
	assert.Equal(t, "filter has no extensions: Text", filterErr.Error())
	assert.Equal(t, "Text", filterErr.FilterName())
	assert.True(t, IsInvalidFilter(filterErr))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, Unknown},
		{"plain", errors.New("plain"), Unknown},
		{"file", NewFileError("x", "/p", FileNotFound, nil), FileNotFound},
		{"config", NewConfigError("x", "p", ConfigNotFound, nil), ConfigNotFound},
		{"filter", NewFilterError("x", "f", InvalidFilter, nil), InvalidFilter},
		{"fmt wrapped", fmt.Errorf("mkdir: %w", NewFileError("x", "a:b", InvalidFilename, nil)), InvalidFilename},
		{"Wrap wrapped", Wrap(NewFileError("x", "/p", FileAccessDenied, nil), "open"), FileAccessDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "storage_unavailable", StorageUnavailable.String())
	assert.Equal(t, "invalid_filename", InvalidFilename.String())
	assert.Equal(t, "kind(99)", ErrorKind(99).String())
}
