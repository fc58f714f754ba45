// Package utils provides small helpers shared across the client: the
// preconfigured resty HTTP client and local identifier generation.
package utils
