package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrClientNotFound    = errors.New("client not found")
	ErrRegistryNotLoaded = errors.New("client registry is not loaded")
	ErrNotAPIClient      = errors.New("registered service is not an api client")

	ErrValidationNoServiceKey  = errors.New("no service key was given")
	ErrValidationInvalidPath   = errors.New("probe path must start with /")
	ErrValidationNoBundleGiven = errors.New("no bundle configuration was given")
)
