package model

import "errors"

// Validation errors returned while building a ConversionRequest.
var (
	ErrMissingInput   = errors.New("no project file selected")
	ErrMissingVersion = errors.New("no target version selected")
	ErrUnknownVersion = errors.New("version is not in the catalog")
	ErrUnknownFormat  = errors.New("unknown project format")
	ErrInputNotFound  = errors.New("project file does not exist")
)
