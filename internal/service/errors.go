package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// configured version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
