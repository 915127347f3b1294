// Package file provides a file-based implementation of the config
// store port. Configuration persists as TOML on the local filesystem.
package file
