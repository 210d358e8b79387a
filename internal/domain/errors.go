package domain

import "errors"

var (
	ErrHookNotFound             = errors.New("hook not found")
	ErrUnsupportedCatalogFormat = errors.New("unsupported catalog format")
	ErrUnknownTheme             = errors.New("unknown theme")
)
