// Package config provides the configuration of tagbalance: built-in
// defaults, the optional configuration file, and validation of the merged
// result before any file is scanned.
package config
