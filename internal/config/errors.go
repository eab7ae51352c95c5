package config

import "errors"

// Errors returned while building the configuration.
var (
	// ErrNoConfigFiles indicates that neither CONFIG nor -c/-config named a
	// bundle configuration file.
	ErrNoConfigFiles = errors.New("no config file specified")
	// ErrInvalidServerConfigs indicates that only one of the server address
	// and request timeout is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrUnsupportedConfigFormat indicates a config file extension other than
	// .yaml, .yml or .json.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
