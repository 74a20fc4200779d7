// Package config provides configuration loading, merging, and validation
// facilities for the corb3d server.
//
// Configuration is assembled from multiple sources in decreasing priority:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
