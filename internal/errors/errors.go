// Package errors holds the typed errors of the chooser. Core operations
// recover from bad paths and failed enumeration on their own; these types
// surface only for user actions such as creating a folder, parsing a filter
// or loading the config file.
package errors

import (
	"errors"
	"fmt"
)

// Re-exported from the standard errors package so callers need one import.
var (
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// ErrorKind classifies an ApplicationError.
type ErrorKind int

const (
	Unknown ErrorKind = iota

	FileNotFound
	FileAccessDenied
	InvalidPath
	FileExists
	FileCreateFailed
	InvalidFilename

	InvalidConfig
	ConfigNotFound

	InvalidFilter

	StorageUnavailable
)

var kindNames = map[ErrorKind]string{
	Unknown:            "unknown",
	FileNotFound:       "file_not_found",
	FileAccessDenied:   "file_access_denied",
	InvalidPath:        "invalid_path",
	FileExists:         "file_exists",
	FileCreateFailed:   "file_create_failed",
	InvalidFilename:    "invalid_filename",
	InvalidConfig:      "invalid_config",
	ConfigNotFound:     "config_not_found",
	InvalidFilter:      "invalid_filter",
	StorageUnavailable: "storage_unavailable",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ApplicationError is a message with a kind, an optional subject (a path,
// config key or filter name) and an optional cause.
type ApplicationError struct {
	msg     string
	subject string
	err     error
	kind    ErrorKind
}

func (e *ApplicationError) Error() string {
	msg := e.msg
	if e.subject != "" {
		msg += ": " + e.subject
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *ApplicationError) Unwrap() error { return e.err }

// Kind returns the error kind.
func (e *ApplicationError) Kind() ErrorKind { return e.kind }

func (e *ApplicationError) appError() *ApplicationError { return e }

// FileError is raised by filesystem actions on a path.
type FileError struct{ ApplicationError }

// NewFileError returns a FileError about path.
func NewFileError(msg, path string, kind ErrorKind, err error) *FileError {
	return &FileError{ApplicationError{msg: msg, subject: path, err: err, kind: kind}}
}

// Path returns the path the error is about.
func (e *FileError) Path() string { return e.subject }

// ConfigError is raised while loading or validating configuration.
type ConfigError struct{ ApplicationError }

// NewConfigError returns a ConfigError about the config key param.
func NewConfigError(msg, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{ApplicationError{msg: msg, subject: param, err: err, kind: kind}}
}

// Param returns the offending config key.
func (e *ConfigError) Param() string { return e.subject }

// FilterError is raised for a malformed filter definition.
type FilterError struct{ ApplicationError }

// NewFilterError returns a FilterError about the filter filterName.
func NewFilterError(msg, filterName string, kind ErrorKind, err error) *FilterError {
	return &FilterError{ApplicationError{msg: msg, subject: filterName, err: err, kind: kind}}
}

// FilterName returns the name of the offending filter.
func (e *FilterError) FilterName() string { return e.subject }

// New returns an error of kind Unknown.
func New(msg string) error {
	return &ApplicationError{msg: msg}
}

// Wrap adds msg in front of err. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err}
}

type kinded interface {
	appError() *ApplicationError
}

// KindOf returns the kind of the first typed error in err's chain.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinded); ok {
			if kind := k.appError().kind; kind != Unknown {
				return kind
			}
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

func IsFileNotFound(err error) bool    { return KindOf(err) == FileNotFound }
func IsFileExists(err error) bool      { return KindOf(err) == FileExists }
func IsInvalidFilename(err error) bool { return KindOf(err) == InvalidFilename }
func IsInvalidConfig(err error) bool   { return KindOf(err) == InvalidConfig }
func IsInvalidFilter(err error) bool   { return KindOf(err) == InvalidFilter }
