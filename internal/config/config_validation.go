// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] can be used at
// startup: at least one config file is named, and the inspection server has
// either both an address and a request timeout or neither.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.ConfigFilePaths) == 0 {
		return ErrNoConfigFiles
	}

	if (cfg.Server.HTTPAddress == "") != (cfg.Server.RequestTimeout == 0) {
		return ErrInvalidServerConfigs
	}

	return nil
}
