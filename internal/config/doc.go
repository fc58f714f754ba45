// Package config loads, merges and validates the go-time-keeper client
// configuration.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source setting a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point for the client is [GetClientConfig].
package config
