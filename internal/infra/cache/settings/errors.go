package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the user has never saved settings
	ErrSettingsNotFound = errors.New("settings.cache: settings not found")

	// ErrCacheGet is returned when the cache read fails
	ErrCacheGet = errors.New("settings.cache: failed to get value")

	// ErrCacheSet is returned when the cache write fails
	ErrCacheSet = errors.New("settings.cache: failed to set value")

	// ErrEncode is returned when settings cannot be (de)serialized
	ErrEncode = errors.New("settings.cache: failed to encode value")
)
