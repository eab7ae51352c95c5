// Package config provides configuration loading, merging, and validation
// facilities for sdkctl.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. YAML / JSON config files
//
// Config files carry the bundle tree ("transport" and "endpoints"), either at
// the top level or under the root key (nab_web_api_base_sdk by default).
// Several files are deep-merged in the order given.
//
// The main entry point is [GetStructuredConfig].
package config
